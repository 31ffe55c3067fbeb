package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrMissingInput = errors.New("input file does not exist")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML file")

	// Conversion errors, re-exported from the pipeline.
	ErrUnknownEngine  = pipeline.ErrUnknownEngine
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrFrontMatter    = pipeline.ErrFrontMatter

	// Option validation errors.
	ErrTitleTooLong = errors.New("title exceeds maximum length")
)
