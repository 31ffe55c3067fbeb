package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// SubstitutionPreprocessor prepares content for engines other than the line
// engine: it normalizes line endings and applies the [[...]] and ((...))
// substitutions up front.
type SubstitutionPreprocessor struct{}

// PreprocessMarkdown applies line ending normalization and content substitutions.
func (p *SubstitutionPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}
	return ApplySubstitutions(normalizeLineEndings(content))
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// SplitLines normalizes line endings and splits content into lines.
// A trailing newline terminates the last line rather than starting a new one.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = normalizeLineEndings(content)
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}
