package md2html

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/logging"
	"github.com/alnah/go-md2html/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SubstitutionPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.LineConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GomarkdownConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.BlackfridayConverter)(nil)
	_ pipeline.DocumentWrapper      = (*pipeline.HTML5Document)(nil)
)

// outputPermissions is rw-r--r--: owner read+write, others read.
const outputPermissions = 0o644

// Converter orchestrates the markdown-to-HTML pipeline.
// A Converter holds no per-document state and may be reused.
type Converter struct {
	cfg           converterConfig
	logger        logging.Logger
	preprocessor  pipeline.MarkdownPreprocessor // nil for the line engine
	htmlConverter pipeline.HTMLConverter
	wrapper       pipeline.DocumentWrapper
}

// NewConverter creates a Converter. With no options it uses the line engine
// and emits bare fragments.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:     converterConfig{engine: EngineLine},
		logger:  logging.NoOp(),
		wrapper: &pipeline.HTML5Document{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if len(c.cfg.title) > MaxTitleLength {
		return nil, fmt.Errorf("%w: %d chars, max %d", ErrTitleTooLong, len(c.cfg.title), MaxTitleLength)
	}

	htmlConverter, err := pipeline.NewHTMLConverter(c.cfg.engine, pipeline.ClassifierOptions{
		CloseLists: c.cfg.closeLists,
	})
	if err != nil {
		return nil, err
	}
	c.htmlConverter = htmlConverter

	// The line engine applies inline substitutions per line itself.
	if _, ok := htmlConverter.(*pipeline.LineConverter); !ok {
		c.preprocessor = &pipeline.SubstitutionPreprocessor{}
	}

	return c, nil
}

// Engine returns the name of the engine this Converter uses.
func (c *Converter) Engine() string {
	if c.cfg.engine == "" {
		return EngineLine
	}
	return strings.ToLower(c.cfg.engine)
}

// Convert runs the pipeline over input.Markdown.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	content := input.Markdown

	var meta pipeline.FrontMatter
	if c.cfg.frontMatter {
		meta, content, err = pipeline.ExtractFrontMatter(content)
		if err != nil {
			return nil, err
		}
	}

	if c.preprocessor != nil {
		content = c.preprocessor.PreprocessMarkdown(ctx, content)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	htmlContent, err := c.htmlConverter.ToHTML(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	res := &Result{Engine: c.Engine()}

	if c.cfg.standalone {
		res.Title = c.resolveTitle(meta, htmlContent)
		htmlContent = c.wrapper.WrapDocument(ctx, htmlContent, res.Title)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	res.HTML = htmlContent

	c.logger.Debug("conversion complete",
		"engine", res.Engine,
		"input_bytes", len(input.Markdown),
		"output_bytes", len(res.HTML),
		"duration", time.Since(start),
	)

	return res, nil
}

// resolveTitle picks the standalone title: explicit option, then front
// matter, then the first h1, then the default.
func (c *Converter) resolveTitle(meta pipeline.FrontMatter, htmlContent string) string {
	if c.cfg.title != "" {
		return c.cfg.title
	}
	if meta.Title != "" {
		return meta.Title
	}
	if t := pipeline.ExtractTitle(htmlContent); t != "" {
		return t
	}
	return pipeline.DefaultTitle
}

// ConvertFile reads inputPath, converts it, and writes the result to outputPath.
// A missing input is reported before any output I/O, so outputPath is never
// created or modified in that case. The output is written atomically.
func (c *Converter) ConvertFile(ctx context.Context, inputPath, outputPath string) error {
	if !fileutil.FileExists(inputPath) {
		return fmt.Errorf("%w: %s", ErrMissingInput, inputPath)
	}

	data, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	c.logger.Debug("read input", "path", inputPath, "bytes", len(data))

	res, err := c.Convert(ctx, Input{Markdown: string(data)})
	if err != nil {
		return err
	}

	if err := fileutil.WriteFileAtomic(outputPath, res.HTML, outputPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}

	c.logger.Info("wrote output", "path", outputPath, "bytes", len(res.HTML))
	return nil
}
