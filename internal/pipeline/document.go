package pipeline

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"
)

// DefaultTitle is used when no title can be resolved for a standalone document.
const DefaultTitle = "Document"

// MaxTitleLength bounds an explicit standalone document title, in bytes.
const MaxTitleLength = 200

// htmlTemplate wraps converted fragments in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s</body>
</html>
`

// firstH1Pattern matches the first h1 element.
// Captures: 1=inner HTML (may contain inline tags)
var firstH1Pattern = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)

// htmlTagPattern matches HTML tags for stripping from heading text.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// DocumentWrapper defines the contract for standalone document wrapping.
type DocumentWrapper interface {
	WrapDocument(ctx context.Context, body, title string) string
}

// HTML5Document wraps fragments in the HTML5 template.
type HTML5Document struct{}

// WrapDocument embeds body in a full HTML5 document with the given title.
// An empty title falls back to the first h1 of body, then DefaultTitle.
func (d *HTML5Document) WrapDocument(ctx context.Context, body, title string) string {
	if ctx.Err() != nil {
		return body
	}
	if title == "" {
		title = ExtractTitle(body)
	}
	if title == "" {
		title = DefaultTitle
	}
	return fmt.Sprintf(htmlTemplate, html.EscapeString(title), ensureTrailingNewline(body))
}

// ExtractTitle returns the text of the first h1 in htmlContent, or "".
func ExtractTitle(htmlContent string) string {
	m := firstH1Pattern.FindStringSubmatch(htmlContent)
	if m == nil {
		return ""
	}
	return stripHTMLTags(m[1])
}

// stripHTMLTags removes HTML tags from a string, decodes HTML entities,
// and trims whitespace. Decoding avoids double-encoding when the text is
// escaped again for the <title> element.
func stripHTMLTags(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}
