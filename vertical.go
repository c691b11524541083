package vertigo

import (
	"fmt"
	"os"
)

// ParseFunc turns one content line into a Position. Formats override it to
// post-process fields, e.g. decomposing a positional tag.
type ParseFunc func(*Schema, string) (Position, error)

// Vertical describes one corpus in the vertical format: its structural tag
// vocabulary, its position schema and how its file is opened.
type Vertical struct {
	Path    string
	schema  *Schema
	matcher *StructTagMatcher
	open    OpenFunc
	parse   ParseFunc
}

type VerticalOption func(*Vertical)

// WithOpenFunc replaces the plain-file opener, e.g. with OpenGzipLineSource or
// an accelerated backend.
func WithOpenFunc(open OpenFunc) VerticalOption {
	return func(v *Vertical) {
		v.open = open
	}
}

func WithParseFunc(parse ParseFunc) VerticalOption {
	return func(v *Vertical) {
		v.parse = parse
	}
}

// NewVertical validates the format declarations and the corpus path. Both the
// structural tag set and the position attribute list must be non-empty.
func NewVertical(path string, structNames, posAttrs []string, options ...VerticalOption) (*Vertical, error) {
	matcher, err := NewStructTagMatcher(structNames)
	if err != nil {
		return nil, err
	}
	schema, err := NewSchema(posAttrs)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("vertigo: corpus file %q: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("vertigo: corpus file %q is a directory", path)
	}
	v := &Vertical{
		Path:    path,
		schema:  schema,
		matcher: matcher,
		open:    OpenFileLineSource,
		parse:   defaultParse,
	}
	for _, option := range options {
		option(v)
	}
	return v, nil
}

func (v *Vertical) Schema() *Schema {
	return v.schema
}

func defaultParse(schema *Schema, line string) (Position, error) {
	return schema.Parse(line)
}
