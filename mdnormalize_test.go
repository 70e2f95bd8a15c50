package docforge

import (
	"context"
	"testing"
)

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"crlf", "a\r\nb", "a\nb"},
		{"bare cr", "a\rb", "a\nb"},
		{"mixed", "a\r\nb\rc\nd", "a\nb\nc\nd"},
		{"already lf", "a\nb", "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeLineEndings(tt.input); got != tt.want {
				t.Errorf("normalizeLineEndings(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompressBlankLines(t *testing.T) {
	t.Parallel()

	got := compressBlankLines("a\n\n\n\n\nb")
	if got != "a\n\nb" {
		t.Errorf("compressBlankLines = %q, want %q", got, "a\n\nb")
	}
}

func TestEnsureBlankBeforeLists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "list after text gets blank line",
			input: "Some text\n- item one\n- item two",
			want:  "Some text\n\n- item one\n- item two",
		},
		{
			name:  "list after blank line unchanged",
			input: "Some text\n\n- item",
			want:  "Some text\n\n- item",
		},
		{
			name:  "ordered list after text",
			input: "Intro:\n1. first\n2. second",
			want:  "Intro:\n\n1. first\n2. second",
		},
		{
			name:  "list marker inside fenced code untouched",
			input: "```\ntext\n- not a list\n```",
			want:  "```\ntext\n- not a list\n```",
		},
		{
			name:  "consecutive items untouched",
			input: "- one\n- two\n- three",
			want:  "- one\n- two\n- three",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ensureBlankBeforeLists(tt.input); got != tt.want {
				t.Errorf("ensureBlankBeforeLists(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEnsureBlankBeforeHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "header after text gets blank line",
			input: "text\n## Header",
			want:  "text\n\n## Header",
		},
		{
			name:  "header after blank unchanged",
			input: "text\n\n## Header",
			want:  "text\n\n## Header",
		},
		{
			name:  "hash inside code block untouched",
			input: "```\n# comment\n```",
			want:  "```\n# comment\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ensureBlankBeforeHeaders(tt.input); got != tt.want {
				t.Errorf("ensureBlankBeforeHeaders(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestListAwareNormalizer_FullPass(t *testing.T) {
	t.Parallel()

	n := &listAwareNormalizer{}
	input := "Title\r\n- a\r\n- b\r\n\r\n\r\n\r\nEnd"
	want := "Title\n\n- a\n- b\n\nEnd"

	if got := n.Normalize(context.Background(), input); got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestListAwareNormalizer_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n := &listAwareNormalizer{}
	input := "unchanged\r\ninput"
	if got := n.Normalize(ctx, input); got != input {
		t.Errorf("cancelled Normalize = %q, want input unchanged", got)
	}
}
