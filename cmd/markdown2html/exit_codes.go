package main

import (
	"errors"
	"os"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
)

// Exit codes for the markdown2html CLI.
// Usage and missing-input failures share the general code 1.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // Usage error, missing input, or unexpected error
	ExitConfig  = 2 // Invalid config file, flag value, or option
	ExitIO      = 3 // Read or write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Checked first: a missing input is a general failure, not an I/O one.
	if errors.Is(err, ErrUsage) || errors.Is(err, md2html.ErrMissingInput) {
		return ExitGeneral
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrPermission) ||
		errors.Is(err, md2html.ErrReadMarkdown) ||
		errors.Is(err, md2html.ErrWriteHTML) {
		return ExitIO
	}

	// Config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, md2html.ErrUnknownEngine) ||
		errors.Is(err, md2html.ErrTitleTooLong) {
		return ExitConfig
	}

	return ExitGeneral
}
