package md2html

// Notes:
// - Converter is tested through the public options; pipeline stages are
//   swapped directly on the struct to reach error and panic paths.
// - ConvertFile tests use t.TempDir and check that the output file is left
//   alone when the input is missing.
// - Engine-specific rendering is covered in internal/pipeline; here we only
//   check that the right engine is wired and that substitutions reach it.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// Test doubles
// ---------------------------------------------------------------------------

type panickingConverter struct{}

func (panickingConverter) ToHTML(context.Context, string) (string, error) {
	panic("boom")
}

type failingConverter struct{ err error }

func (f failingConverter) ToHTML(context.Context, string) (string, error) {
	return "", f.err
}

type recordingLogger struct {
	messages []string
}

func (r *recordingLogger) Debug(msg string, _ ...any) { r.messages = append(r.messages, msg) }
func (r *recordingLogger) Info(msg string, _ ...any)  { r.messages = append(r.messages, msg) }
func (r *recordingLogger) Warn(msg string, _ ...any)  { r.messages = append(r.messages, msg) }
func (r *recordingLogger) Error(msg string, _ ...any) { r.messages = append(r.messages, msg) }

func mustConverter(t *testing.T, opts ...Option) *Converter {
	t.Helper()
	conv, err := NewConverter(opts...)
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}
	return conv
}

// ---------------------------------------------------------------------------
// NewConverter
// ---------------------------------------------------------------------------

func TestNewConverter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		opts       []Option
		wantEngine string
		wantErr    error
	}{
		{"defaults to line engine", nil, EngineLine, nil},
		{"goldmark", []Option{WithEngine("goldmark")}, EngineGoldmark, nil},
		{"engine name is case-insensitive", []Option{WithEngine("BlackFriday")}, EngineBlackfriday, nil},
		{"gomarkdown", []Option{WithEngine(EngineGomarkdown)}, EngineGomarkdown, nil},
		{"unknown engine", []Option{WithEngine("pandoc")}, "", ErrUnknownEngine},
		{"title at limit", []Option{WithTitle(strings.Repeat("t", MaxTitleLength))}, EngineLine, nil},
		{"title too long", []Option{WithTitle(strings.Repeat("t", MaxTitleLength+1))}, "", ErrTitleTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, err := NewConverter(tt.opts...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := conv.Engine(); got != tt.wantEngine {
				t.Errorf("Engine() = %q, want %q", got, tt.wantEngine)
			}
		})
	}
}

func TestWithLogger_NilIgnored(t *testing.T) {
	t.Parallel()

	conv := mustConverter(t, WithLogger(nil))
	if conv.logger == nil {
		t.Fatal("logger is nil after WithLogger(nil)")
	}
}

// ---------------------------------------------------------------------------
// Convert
// ---------------------------------------------------------------------------

func TestConvert_LineEngine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     []Option
		markdown string
		want     string
	}{
		{
			name:     "empty input gives empty output",
			markdown: "",
			want:     "",
		},
		{
			name:     "header, paragraph and list",
			markdown: "# Title\nLine one\nLine two\n\n- item1\n- item2\n",
			want:     "<h1>Title</h1>\n<p>Line one<br/>Line two</p>\n<ul>\n<li>item1</li>\n<li>item2</li>\n</ul>\n",
		},
		{
			name:     "CRLF line endings",
			markdown: "a\r\nb\r\n",
			want:     "<p>a<br/>b</p>\n",
		},
		{
			name:     "inline substitutions",
			markdown: "**[[abc]]** ((Cocoa))",
			want:     "<p><b>900150983cd24fb0d6963f7d28e17f72<b> ooa</p>\n",
		},
		{
			name:     "lists stay open by default",
			markdown: "- a\n* b\n",
			want:     "<ul>\n<li>a</li>\n<ol>\n<li>b</li>\n</ol>\n",
		},
		{
			name:     "close lists option",
			opts:     []Option{WithCloseLists(true)},
			markdown: "- a\n* b\n",
			want:     "<ul>\n<li>a</li>\n</ul>\n<ol>\n<li>b</li>\n</ol>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv := mustConverter(t, tt.opts...)
			res, err := conv.Convert(context.Background(), Input{Markdown: tt.markdown})
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, res.HTML); diff != "" {
				t.Errorf("HTML mismatch (-want +got):\n%s", diff)
			}
			if res.Engine != EngineLine {
				t.Errorf("Engine = %q, want %q", res.Engine, EngineLine)
			}
			if res.Title != "" {
				t.Errorf("Title = %q, want empty outside standalone mode", res.Title)
			}
		})
	}
}

func TestConvert_MarkdownEnginesApplySubstitutions(t *testing.T) {
	t.Parallel()

	for _, engine := range []string{EngineGoldmark, EngineGomarkdown, EngineBlackfriday} {
		t.Run(engine, func(t *testing.T) {
			t.Parallel()

			conv := mustConverter(t, WithEngine(engine))
			res, err := conv.Convert(context.Background(), Input{Markdown: "# [[abc]]\n\n((Chocolate))\n"})
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if !strings.Contains(res.HTML, "900150983cd24fb0d6963f7d28e17f72") {
				t.Errorf("HTML missing hash substitution:\n%s", res.HTML)
			}
			if !strings.Contains(res.HTML, "hoolate") {
				t.Errorf("HTML missing strip substitution:\n%s", res.HTML)
			}
			if !strings.Contains(res.HTML, "<h1") {
				t.Errorf("HTML missing header:\n%s", res.HTML)
			}
		})
	}
}

func TestConvert_Standalone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		opts      []Option
		markdown  string
		wantTitle string
	}{
		{
			name:      "title from first h1",
			markdown:  "# Report\nbody",
			wantTitle: "Report",
		},
		{
			name:      "default title without h1",
			markdown:  "just text",
			wantTitle: "Document",
		},
		{
			name:      "explicit title wins",
			opts:      []Option{WithTitle("Chosen"), WithFrontMatter(true)},
			markdown:  "---\ntitle: Meta\n---\n# Heading\n",
			wantTitle: "Chosen",
		},
		{
			name:      "front matter title beats h1",
			opts:      []Option{WithFrontMatter(true)},
			markdown:  "---\ntitle: Meta\n---\n# Heading\n",
			wantTitle: "Meta",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := append([]Option{WithStandalone(true)}, tt.opts...)
			conv := mustConverter(t, opts...)
			res, err := conv.Convert(context.Background(), Input{Markdown: tt.markdown})
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if res.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", res.Title, tt.wantTitle)
			}
			if !strings.HasPrefix(res.HTML, "<!DOCTYPE html>") {
				t.Errorf("HTML does not start with doctype:\n%s", res.HTML)
			}
			if !strings.Contains(res.HTML, "<title>"+tt.wantTitle+"</title>") {
				t.Errorf("HTML missing <title>%s</title>:\n%s", tt.wantTitle, res.HTML)
			}
		})
	}
}

func TestConvert_FrontMatterStripped(t *testing.T) {
	t.Parallel()

	conv := mustConverter(t, WithFrontMatter(true))
	res, err := conv.Convert(context.Background(), Input{Markdown: "---\ntitle: Meta\n---\ntext\n"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if strings.Contains(res.HTML, "title") || strings.Contains(res.HTML, "---") {
		t.Errorf("front matter leaked into HTML:\n%s", res.HTML)
	}
	if !strings.Contains(res.HTML, "<p>text</p>") {
		t.Errorf("HTML missing body paragraph:\n%s", res.HTML)
	}
}

func TestConvert_FrontMatterError(t *testing.T) {
	t.Parallel()

	conv := mustConverter(t, WithFrontMatter(true))
	_, err := conv.Convert(context.Background(), Input{Markdown: "---\ntitle: [unclosed\n---\ntext\n"})
	if !errors.Is(err, ErrFrontMatter) {
		t.Errorf("error = %v, want ErrFrontMatter", err)
	}
}

func TestConvert_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := mustConverter(t)
	_, err := conv.Convert(ctx, Input{Markdown: "text"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestConvert_RecoversPanic(t *testing.T) {
	t.Parallel()

	conv := mustConverter(t)
	conv.htmlConverter = panickingConverter{}

	res, err := conv.Convert(context.Background(), Input{Markdown: "text"})
	if err == nil {
		t.Fatal("expected error from panicking converter")
	}
	if res != nil {
		t.Errorf("result = %+v, want nil", res)
	}
	if !strings.Contains(err.Error(), "internal error") {
		t.Errorf("error = %v, want internal error", err)
	}
}

func TestConvert_WrapsConverterError(t *testing.T) {
	t.Parallel()

	conv := mustConverter(t)
	conv.htmlConverter = failingConverter{err: ErrHTMLConversion}

	_, err := conv.Convert(context.Background(), Input{Markdown: "text"})
	if !errors.Is(err, ErrHTMLConversion) {
		t.Errorf("error = %v, want ErrHTMLConversion", err)
	}
}

func TestConvert_LogsCompletion(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}
	conv := mustConverter(t, WithLogger(logger))

	if _, err := conv.Convert(context.Background(), Input{Markdown: "text"}); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if diff := cmp.Diff([]string{"conversion complete"}, logger.messages); diff != "" {
		t.Errorf("logged messages mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// ConvertFile
// ---------------------------------------------------------------------------

func TestConvertFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "README.md")
	out := filepath.Join(dir, "README.html")
	if err := os.WriteFile(in, []byte("# Title\n- item\n"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	conv := mustConverter(t)
	if err := conv.ConvertFile(context.Background(), in, out); err != nil {
		t.Fatalf("ConvertFile() error = %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want := "<h1>Title</h1>\n<ul>\n<li>item</li>\n</ul>\n"
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertFile_OverwritesOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.md")
	out := filepath.Join(dir, "out.html")
	if err := os.WriteFile(in, []byte(""), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(out, []byte("stale content"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	conv := mustConverter(t)
	if err := conv.ConvertFile(context.Background(), in, out); err != nil {
		t.Fatalf("ConvertFile() error = %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("output = %q, want empty file", got)
	}
}

func TestConvertFile_MissingInputLeavesOutputUntouched(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input func(dir string) string
	}{
		{"nonexistent file", func(dir string) string { return filepath.Join(dir, "nope.md") }},
		{"directory", func(dir string) string { return dir }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			out := filepath.Join(dir, "out.html")
			if err := os.WriteFile(out, []byte("keep me"), 0o600); err != nil {
				t.Fatalf("setup: %v", err)
			}

			conv := mustConverter(t)
			err := conv.ConvertFile(context.Background(), tt.input(dir), out)
			if !errors.Is(err, ErrMissingInput) {
				t.Fatalf("error = %v, want ErrMissingInput", err)
			}

			got, err := os.ReadFile(out)
			if err != nil {
				t.Fatalf("reading output: %v", err)
			}
			if string(got) != "keep me" {
				t.Errorf("output = %q, want untouched", got)
			}
		})
	}
}

func TestConvertFile_MissingInputDoesNotCreateOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "out.html")

	conv := mustConverter(t)
	err := conv.ConvertFile(context.Background(), filepath.Join(dir, "nope.md"), out)
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("error = %v, want ErrMissingInput", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output file exists after missing input, stat err = %v", err)
	}
}

func TestConvertFile_WriteError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.md")
	if err := os.WriteFile(in, []byte("text"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	conv := mustConverter(t)
	err := conv.ConvertFile(context.Background(), in, filepath.Join(dir, "missing-dir", "out.html"))
	if !errors.Is(err, ErrWriteHTML) {
		t.Errorf("error = %v, want ErrWriteHTML", err)
	}
}
