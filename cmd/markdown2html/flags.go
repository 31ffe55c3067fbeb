package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line flags.
type cliFlags struct {
	config      string
	engine      string
	closeLists  bool
	frontMatter bool
	standalone  bool
	title       string
	verbose     bool
	logFormat   string
	version     bool
	help        bool

	// changed records flags set explicitly, so false can override a config value.
	changed map[string]bool
}

// parseFlags parses args (without the program name) and returns positional args.
// Parse errors are returned, never printed.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("markdown2html", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &cliFlags{changed: make(map[string]bool)}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.engine, "engine", "e", "", "rendering engine: line, goldmark, gomarkdown, blackfriday")
	fs.BoolVar(&f.closeLists, "close-lists", false, "close open lists before other blocks")
	fs.BoolVar(&f.frontMatter, "front-matter", false, "strip a leading front matter block")
	fs.BoolVar(&f.standalone, "standalone", false, "wrap output in a complete HTML5 document")
	fs.StringVar(&f.title, "title", "", "standalone document title (\"\" = auto)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log details and report the conversion")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: console, json, pretty")
	fs.BoolVar(&f.version, "version", false, "show version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	fs.Visit(func(fl *flag.Flag) {
		f.changed[fl.Name] = true
	})

	return f, fs.Args(), nil
}
