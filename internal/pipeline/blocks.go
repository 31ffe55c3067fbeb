package pipeline

import (
	"fmt"
	"slices"
	"strings"
)

// BlockState tracks the HTML container currently open.
type BlockState int

// Block states. Exactly one is active at a time.
const (
	StateNone BlockState = iota
	StateParagraph
	StateUnorderedList
	StateOrderedList
)

// String returns the state name, for logging.
func (s BlockState) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateParagraph:
		return "paragraph"
	case StateUnorderedList:
		return "unordered-list"
	case StateOrderedList:
		return "ordered-list"
	default:
		return fmt.Sprintf("BlockState(%d)", int(s))
	}
}

// Line classification markers.
const (
	headerMarker        = '#'
	maxHeaderLevel      = 6
	unorderedItemPrefix = "- "
	orderedItemPrefix   = "* "
	lineBreakTag        = "<br/>"
)

// ClassifierOptions tunes the block classifier.
type ClassifierOptions struct {
	// CloseLists closes an open list before any block that leaves it
	// (header, paragraph, or the other list kind). When false, such a block
	// replaces the list without closing it; only a list still open at end
	// of input gets its closing tag.
	CloseLists bool
}

// Classifier turns transformed lines into HTML fragments.
// A Classifier holds per-document state; use one per conversion.
type Classifier struct {
	opts      ClassifierOptions
	state     BlockState
	paragraph []string
	out       []string
}

// NewClassifier creates a Classifier in the None state.
func NewClassifier(opts ClassifierOptions) *Classifier {
	return &Classifier{opts: opts}
}

// State returns the currently open block.
func (c *Classifier) State() BlockState {
	return c.state
}

// Feed classifies one line. The line must already be inline-transformed;
// trailing whitespace is ignored.
func (c *Classifier) Feed(line string) {
	line = strings.TrimRight(line, " \t\r\n\f\v")

	if level := headerLevel(line); level > 0 {
		c.flushParagraph()
		c.closeList()
		content := strings.TrimSpace(strings.TrimLeft(line, "# \t"))
		c.emit(fmt.Sprintf("<h%d>%s</h%d>", level, content, level))
		c.state = StateNone
		return
	}

	if strings.HasPrefix(line, unorderedItemPrefix) {
		c.listItem(StateUnorderedList, "<ul>", strings.TrimPrefix(line, unorderedItemPrefix))
		return
	}

	if strings.HasPrefix(line, orderedItemPrefix) {
		c.listItem(StateOrderedList, "<ol>", strings.TrimPrefix(line, orderedItemPrefix))
		return
	}

	if line == "" {
		if c.state == StateParagraph {
			c.flushParagraph()
		}
		return
	}

	if c.state != StateParagraph {
		c.closeList()
		c.state = StateParagraph
	}
	c.paragraph = append(c.paragraph, line)
}

// Finish flushes any open paragraph and closes an open list.
// It returns a copy of every fragment emitted so far, in input order.
func (c *Classifier) Finish() []string {
	c.flushParagraph()
	switch c.state {
	case StateUnorderedList:
		c.emit("</ul>")
	case StateOrderedList:
		c.emit("</ol>")
	}
	c.state = StateNone
	return slices.Clone(c.out)
}

func (c *Classifier) listItem(kind BlockState, openTag, content string) {
	c.flushParagraph()
	if c.state != kind {
		c.closeList()
		c.emit(openTag)
		c.state = kind
	}
	c.emit("<li>" + strings.TrimSpace(content) + "</li>")
}

// flushParagraph emits the buffered paragraph and returns to None.
// It is a no-op outside the Paragraph state.
func (c *Classifier) flushParagraph() {
	if c.state != StateParagraph {
		return
	}
	c.emit("<p>" + strings.Join(c.paragraph, lineBreakTag) + "</p>")
	c.paragraph = c.paragraph[:0]
	c.state = StateNone
}

// closeList emits the closing tag of an open list when CloseLists is set.
func (c *Classifier) closeList() {
	if !c.opts.CloseLists {
		return
	}
	switch c.state {
	case StateUnorderedList:
		c.emit("</ul>")
		c.state = StateNone
	case StateOrderedList:
		c.emit("</ol>")
		c.state = StateNone
	}
}

func (c *Classifier) emit(fragment string) {
	c.out = append(c.out, fragment)
}

// headerLevel returns the number of leading '#' characters when it is
// between 1 and 6, or 0 when the line is not a header.
func headerLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == headerMarker {
		n++
	}
	if n > maxHeaderLevel {
		return 0
	}
	return n
}

// Classify runs the inline stage and the block classifier over lines.
func Classify(lines []string, opts ClassifierOptions) []string {
	c := NewClassifier(opts)
	for _, line := range lines {
		c.Feed(TransformInline(line))
	}
	return c.Finish()
}
