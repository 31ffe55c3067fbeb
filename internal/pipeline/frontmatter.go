package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// ErrFrontMatter indicates a front matter block could not be parsed.
var ErrFrontMatter = errors.New("invalid front matter")

// FrontMatter holds the metadata read from a document header.
type FrontMatter struct {
	Title string `yaml:"title" toml:"title" json:"title"`
}

// ExtractFrontMatter separates a leading YAML, TOML or JSON front matter
// block from the Markdown body. Content without front matter is returned
// unchanged with a zero FrontMatter.
func ExtractFrontMatter(content string) (FrontMatter, string, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		return FrontMatter{}, "", fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	meta.Title = strings.TrimSpace(meta.Title)
	return meta, string(body), nil
}
