package main

import (
	"context"
	"io"
	"os"
	"time"
)

// Dependencies holds injectable dependencies for testability.
type Dependencies struct {
	Context context.Context
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
}

// DefaultDeps returns production dependencies.
func DefaultDeps() *Dependencies {
	return &Dependencies{
		Context: context.Background(),
		Now:     time.Now,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}
