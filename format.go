package vertigo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FormatDecl is a corpus format declaration loadable from YAML, the
// data-driven alternative to code-defined formats like SYN2015:
//
//	name: syn2015
//	structures: [doc, text, p, s, hi, lb]
//	posattrs: [word, lemma, tag]
//	gzip: true
type FormatDecl struct {
	Name       string   `yaml:"name"`
	Structures []string `yaml:"structures"`
	PosAttrs   []string `yaml:"posattrs"`
	Gzip       bool     `yaml:"gzip"`
}

// LoadFormat reads a format declaration from a YAML file.
func LoadFormat(path string) (*FormatDecl, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vertigo: reading format declaration: %w", err)
	}
	var decl FormatDecl
	if err := yaml.Unmarshal(raw, &decl); err != nil {
		return nil, fmt.Errorf("vertigo: parsing format declaration: %w", err)
	}
	return &decl, nil
}

// Vertical builds the corpus handle this declaration describes for the given
// path. Declaration errors (empty structures or posattrs) surface here.
func (d *FormatDecl) Vertical(path string) (*Vertical, error) {
	var options []VerticalOption
	if d.Gzip {
		options = append(options, WithOpenFunc(OpenGzipLineSource))
	}
	return NewVertical(path, d.Structures, d.PosAttrs, options...)
}
