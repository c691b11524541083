package vertigo

import (
	"fmt"
	"strings"
)

// Schema declares the ordered annotation fields of one corpus format. A content
// line must carry exactly Arity() tab-separated fields.
type Schema struct {
	names []string
	index map[string]int
}

func NewSchema(names []string) (*Schema, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("vertigo: at least one position attribute must be declared")
	}
	index := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("vertigo: empty position attribute name")
		}
		if _, ok := index[name]; ok {
			return nil, fmt.Errorf("vertigo: duplicate position attribute %q", name)
		}
		index[name] = i
	}
	return &Schema{
		names: names,
		index: index,
	}, nil
}

func (s *Schema) Arity() int {
	return len(s.names)
}

func (s *Schema) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Parse splits one content line into a Position. A field count other than the
// declared arity is an error.
func (s *Schema) Parse(line string) (Position, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != s.Arity() {
		return Position{}, fmt.Errorf("vertigo: %d fields in %q, schema wants %d", len(fields), line, s.Arity())
	}
	return Position{
		schema: s,
		fields: fields,
	}, nil
}

// Position is one token line: a fixed-arity record over its format's schema.
// Tag is set only by formats that decompose their positional tag field.
type Position struct {
	schema *Schema
	fields []string
	Tag    *UtklTag
}

// Field returns the value of the named annotation field, or "" when the schema
// does not declare it.
func (p Position) Field(name string) string {
	i, ok := p.schema.index[name]
	if !ok {
		return ""
	}
	return p.fields[i]
}

func (p Position) Fields() []string {
	fields := make([]string, len(p.fields))
	copy(fields, p.fields)
	return fields
}

// UtklTag is a positional morphological tag decomposed into its sixteen
// single-character attributes.
type UtklTag struct {
	Pos   string
	Sub   string
	Gen   string
	Num   string
	Case  string
	PGen  string
	PNum  string
	Pers  string
	Tense string
	Grad  string
	Neg   string
	Act   string
	P13   string
	P14   string
	Var   string
	Asp   string
}

// ParseUtklTag splits a sixteen-character positional tag into its attributes.
func ParseUtklTag(tag string) (UtklTag, error) {
	runes := []rune(tag)
	if len(runes) != 16 {
		return UtklTag{}, fmt.Errorf("vertigo: positional tag %q has %d characters, want 16", tag, len(runes))
	}
	chars := make([]string, 16)
	for i, r := range runes {
		chars[i] = string(r)
	}
	return UtklTag{
		Pos:   chars[0],
		Sub:   chars[1],
		Gen:   chars[2],
		Num:   chars[3],
		Case:  chars[4],
		PGen:  chars[5],
		PNum:  chars[6],
		Pers:  chars[7],
		Tense: chars[8],
		Grad:  chars[9],
		Neg:   chars[10],
		Act:   chars[11],
		P13:   chars[12],
		P14:   chars[13],
		Var:   chars[14],
		Asp:   chars[15],
	}, nil
}
