package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

type frontMatter struct {
	Title string `yaml:"title" toml:"title" json:"title"`
}

// FrontMatterTitle returns the "title" front matter field, if any, and the
// body without the front matter block.
func FrontMatterTitle(src []byte) (string, []byte, error) {
	var meta frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(src), &meta)
	if err != nil {
		return "", nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return strings.TrimSpace(meta.Title), body, nil
}

// StripFrontMatter returns src without its front matter block. Malformed
// front matter is left in place.
func StripFrontMatter(src []byte) []byte {
	_, body, err := FrontMatterTitle(src)
	if err != nil {
		return src
	}
	return body
}
