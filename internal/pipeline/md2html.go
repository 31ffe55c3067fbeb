package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	mdparser "github.com/gomarkdown/markdown/parser"
	"github.com/russross/blackfriday/v2"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Sentinel errors for HTML conversion.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrUnknownEngine  = errors.New("unknown rendering engine")
)

// Engine names accepted by NewHTMLConverter.
const (
	EngineLine        = "line"
	EngineGoldmark    = "goldmark"
	EngineGomarkdown  = "gomarkdown"
	EngineBlackfriday = "blackfriday"
)

// Engines lists every supported engine, default first.
var Engines = []string{EngineLine, EngineGoldmark, EngineGomarkdown, EngineBlackfriday}

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// IsValidEngine reports whether name is a supported engine (case-insensitive).
// The empty name selects the default engine and is valid.
func IsValidEngine(name string) bool {
	if name == "" {
		return true
	}
	for _, e := range Engines {
		if strings.EqualFold(name, e) {
			return true
		}
	}
	return false
}

// NewHTMLConverter returns the converter for the named engine.
// An empty name selects the line engine.
func NewHTMLConverter(name string, opts ClassifierOptions) (HTMLConverter, error) {
	switch strings.ToLower(name) {
	case "", EngineLine:
		return NewLineConverter(opts), nil
	case EngineGoldmark:
		return NewGoldmarkConverter(), nil
	case EngineGomarkdown:
		return &GomarkdownConverter{}, nil
	case EngineBlackfriday:
		return &BlackfridayConverter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownEngine, name, strings.Join(Engines, ", "))
	}
}

// LineConverter is the line classifier engine: one HTML fragment per line.
type LineConverter struct {
	opts ClassifierOptions
}

// NewLineConverter creates a LineConverter.
func NewLineConverter(opts ClassifierOptions) *LineConverter {
	return &LineConverter{opts: opts}
}

// Fragments converts content into ordered HTML fragments.
func (c *LineConverter) Fragments(content string) []string {
	return Classify(SplitLines(content), c.opts)
}

// ToHTML converts content to newline-terminated fragments.
func (c *LineConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return JoinFragments(c.Fragments(content)), nil
}

// JoinFragments writes one fragment per line, each newline-terminated.
func JoinFragments(fragments []string) string {
	if len(fragments) == 0 {
		return ""
	}
	return strings.Join(fragments, "\n") + "\n"
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and syntax highlighting.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br/>, like the line engine
			html.WithXHTML(),
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return ensureTrailingNewline(buf.String()), nil
}

// GomarkdownConverter converts Markdown to HTML using gomarkdown.
// The parser is stateful, so a new one is built per call.
type GomarkdownConverter struct{}

// ToHTML converts Markdown content to an HTML fragment.
func (c *GomarkdownConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p := mdparser.NewWithExtensions(mdparser.CommonExtensions | mdparser.AutoHeadingIDs)
	doc := p.Parse(markdown.NormalizeNewlines([]byte(content)))

	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	return ensureTrailingNewline(string(markdown.Render(doc, renderer))), nil
}

// BlackfridayConverter converts Markdown to HTML using blackfriday.
type BlackfridayConverter struct{}

// ToHTML converts Markdown content to an HTML fragment.
func (c *BlackfridayConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	out := blackfriday.Run([]byte(content), blackfriday.WithExtensions(blackfriday.CommonExtensions))
	return ensureTrailingNewline(string(out)), nil
}

func ensureTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
