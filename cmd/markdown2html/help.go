package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: markdown2html [flags] README.md README.html")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a markdown file to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input     Markdown file to read")
	fmt.Fprintln(w, "  output    HTML file to write (created or overwritten)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintln(w, "  -e, --engine <name>       Engine: line (default), goldmark, gomarkdown, blackfriday")
	fmt.Fprintln(w, "      --close-lists         Close open lists before headers and paragraphs")
	fmt.Fprintln(w, "      --front-matter        Strip a leading YAML/TOML/JSON front matter block")
	fmt.Fprintln(w, "      --standalone          Wrap output in a complete HTML5 document")
	fmt.Fprintln(w, "      --title <s>           Document title (\"\" = front matter, then first H1)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "General:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -v, --verbose             Debug logging and a summary on stdout")
	fmt.Fprintln(w, "      --log-format <s>      Log format: console, json, pretty")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  success")
	fmt.Fprintln(w, "  1  usage error, missing input, or unexpected error")
	fmt.Fprintln(w, "  2  invalid config or option")
	fmt.Fprintln(w, "  3  read or write failure")
}
