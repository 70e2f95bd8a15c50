package docforge

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:  "basic heading",
			input: "# Hello World",
			wantContains: []string{
				"<h1",
				"Hello World",
				"</h1>",
			},
		},
		{
			name:  "paragraph with hard breaks",
			input: "Line one\nLine two",
			wantContains: []string{
				"<p>",
				"Line one",
				"<br",
				"Line two",
			},
		},
		{
			name:  "GFM table",
			input: "| A | B |\n|---|---|\n| 1 | 2 |",
			wantContains: []string{
				"<table>",
				"<thead>",
				"<tbody>",
				"<th>",
				"<td>",
			},
		},
		{
			name:  "fenced code block",
			input: "```go\nfmt.Println(\"hi\")\n```",
			wantContains: []string{
				"<pre",
				"Println",
			},
		},
		{
			name:  "emphasis",
			input: "Hello **world**",
			wantContains: []string{
				"<strong>world</strong>",
			},
		},
		{
			name:  "strikethrough",
			input: "~~gone~~",
			wantContains: []string{
				"<del>gone</del>",
			},
		},
		{
			name:  "raw HTML is not passed through",
			input: "<script>alert(1)</script>",
			wantNot: []string{
				"<script>alert(1)</script>",
			},
		},
	}

	conv := newGoldmarkConverter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := conv.ToHTML(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(got, not) {
					t.Errorf("output should not contain %q:\n%s", not, got)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ReturnsFragment(t *testing.T) {
	t.Parallel()

	conv := newGoldmarkConverter()
	got, err := conv.ToHTML(context.Background(), "# Title")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if strings.Contains(got, "<!DOCTYPE") || strings.Contains(got, "<body") {
		t.Errorf("expected bare fragment, got full document:\n%s", got)
	}
}

func TestGoldmarkConverter_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := newGoldmarkConverter()
	if _, err := conv.ToHTML(ctx, "# Hello"); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestGoldmarkConverter_DeadlineExceeded(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	conv := newGoldmarkConverter()
	if _, err := conv.ToHTML(ctx, "# Hello"); err == nil {
		t.Error("expected error for expired deadline")
	}
}
