package md2html

import (
	"github.com/alnah/go-md2html/internal/logging"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Engine names. EngineLine is the default.
const (
	EngineLine        = pipeline.EngineLine
	EngineGoldmark    = pipeline.EngineGoldmark
	EngineGomarkdown  = pipeline.EngineGomarkdown
	EngineBlackfriday = pipeline.EngineBlackfriday
)

// Logger receives conversion diagnostics as a message plus key/value pairs.
type Logger = logging.Logger

// MaxTitleLength bounds WithTitle.
const MaxTitleLength = pipeline.MaxTitleLength

// Input is the content of one conversion.
type Input struct {
	Markdown string
}

// Result holds the output of one conversion.
type Result struct {
	HTML   string // newline-terminated; one fragment per line for the line engine
	Title  string // resolved document title, set only in standalone mode
	Engine string // engine that produced HTML
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds options applied by NewConverter.
type converterConfig struct {
	engine      string
	closeLists  bool
	frontMatter bool
	standalone  bool
	title       string
}

// WithEngine selects the rendering engine by name (see Engines).
func WithEngine(name string) Option {
	return func(c *Converter) {
		c.cfg.engine = name
	}
}

// WithCloseLists closes an open list before any block that leaves it.
// By default a list replaced by another block is left unclosed.
func WithCloseLists(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.closeLists = enabled
	}
}

// WithFrontMatter strips a leading front matter block before conversion.
func WithFrontMatter(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.frontMatter = enabled
	}
}

// WithStandalone wraps output in a complete HTML5 document.
func WithStandalone(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.standalone = enabled
	}
}

// WithTitle sets the standalone document title, overriding front matter and h1.
func WithTitle(title string) Option {
	return func(c *Converter) {
		c.cfg.title = title
	}
}

// WithLogger sets the logger used for conversion diagnostics.
// A nil logger is ignored.
func WithLogger(l Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// Engines returns the supported engine names, default first.
func Engines() []string {
	return append([]string(nil), pipeline.Engines...)
}
