// Package md2html converts a small Markdown dialect to HTML fragments.
//
// # Quick Start
//
//	conv, err := md2html.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, md2html.Input{
//	    Markdown: "# Hello\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.HTML) // <h1>Hello</h1>\n<p>World</p>\n
//
// ConvertFile does the same between two files and never touches the
// output file when the input does not exist.
//
// # Line Engine
//
// The default engine classifies each input line on its own:
//
//   - 1 to 6 leading '#' make a header (<h1> to <h6>)
//   - "- " opens or continues an unordered list, "* " an ordered list
//   - other non-blank lines accumulate into a paragraph joined by <br/>
//   - a blank line ends a paragraph but leaves an open list open
//
// Before classification every line gets the inline substitutions, in order:
// [[text]] becomes the MD5 hex digest of text, ((text)) becomes text without
// 'c' or 'C', then every "**" becomes <b> and every "__" becomes <em>.
// Markers never toggle, so "**x**" yields "<b>x<b>".
//
// A list is closed at end of input only if it is still the open block. A
// header, paragraph or list of the other kind replaces it and the list is
// left unclosed. WithCloseLists closes it as soon as another block starts.
//
// # Other Engines
//
// WithEngine selects goldmark, gomarkdown or blackfriday for full Markdown.
// The [[ ]] and (( )) substitutions still apply; emphasis and lists follow
// the chosen engine.
//
// # Documents
//
// WithStandalone wraps the fragments in an HTML5 page. The title comes from
// WithTitle, then front matter (see WithFrontMatter), then the first <h1>,
// then "Document".
//
// # Error Handling
//
// Errors can be checked with errors.Is:
//
//	if errors.Is(err, md2html.ErrMissingInput) {
//	    // input path is not an existing regular file
//	}
package md2html
