package docforge

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled patterns for markdown normalization.
var (
	crlfOrCR           = regexp.MustCompile(`\r\n?`)
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
	fencedCodeBlock    = regexp.MustCompile("^(```|~~~)")
	headerPattern      = regexp.MustCompile(`^#{1,6}\s`)
	unorderedList      = regexp.MustCompile(`^[-*+]\s`)
	orderedList        = regexp.MustCompile(`^[0-9]+\.\s`)
	indentedCodeBlock  = regexp.MustCompile(`^(    |\t)`)
)

// markdownNormalizer defines the contract for markdown normalization.
type markdownNormalizer interface {
	Normalize(ctx context.Context, content string) string
}

// listAwareNormalizer fixes loose markdown before it reaches Goldmark:
// CommonMark requires a blank line between a paragraph and a following
// list or header, which hand-written input frequently omits.
type listAwareNormalizer struct{}

// Normalize applies all transformations. Order matters: line endings first,
// then structural spacing, then blank-line compression.
func (n *listAwareNormalizer) Normalize(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	content = normalizeLineEndings(content)
	content = ensureBlankBeforeHeaders(content)
	content = ensureBlankBeforeLists(content)
	content = compressBlankLines(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to one.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// ensureBlankBeforeHeaders inserts a blank line before ATX headers that
// directly follow text. Content inside code blocks is left untouched.
func ensureBlankBeforeHeaders(content string) string {
	return processOutsideCodeBlocks(content, func(prev, current string) bool {
		return headerPattern.MatchString(current) && !isBlankLine(prev)
	})
}

// ensureBlankBeforeLists inserts a blank line before a list item that
// directly follows plain text. Consecutive list items and items after
// headers are left alone. Content inside code blocks is left untouched.
func ensureBlankBeforeLists(content string) string {
	return processOutsideCodeBlocks(content, func(prev, current string) bool {
		return isListItem(current) &&
			!isBlankLine(prev) &&
			!isListItem(prev) &&
			!headerPattern.MatchString(prev)
	})
}

// processOutsideCodeBlocks walks lines and inserts a blank line before any
// line for which needsBlank(prev, current) is true, skipping fenced and
// indented code blocks.
func processOutsideCodeBlocks(content string, needsBlank func(prev, current string) bool) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	inCodeBlock := false
	var previous string

	for i, line := range lines {
		if fencedCodeBlock.MatchString(line) {
			inCodeBlock = !inCodeBlock
		}

		if i == 0 || inCodeBlock || indentedCodeBlock.MatchString(line) {
			result = append(result, line)
			previous = line
			continue
		}

		if needsBlank(previous, line) {
			result = append(result, "")
		}
		result = append(result, line)

		// Match against the original line next iteration, not inserted blanks.
		previous = line
	}

	return strings.Join(result, "\n")
}

func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isListItem(line string) bool {
	return unorderedList.MatchString(line) || orderedList.MatchString(line)
}
