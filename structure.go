package vertigo

import (
	"fmt"
	"regexp"
	"strings"
)

// Structure is one structural markup tag instance, e.g. <doc id="d1">.
// Attrs is filled only when attribute parsing is enabled on the stream;
// Raw always holds the unparsed attribute text.
type Structure struct {
	Name  string
	Attrs map[string]string
	Raw   string
}

func NewStructure(name string, attrs map[string]string) Structure {
	return Structure{
		Name:  name,
		Attrs: attrs,
	}
}

// Sattrs maps each currently open structural tag name to its Structure.
// It is owned by one PositionScanner; hooks and predicates receive it for
// inspection and must not mutate it.
type Sattrs map[string]Structure

type TagKind int

const (
	TagOpen TagKind = iota
	TagClose
	TagSelfClose
)

// TagMatch is the classification of one structural tag line.
type TagMatch struct {
	Kind     TagKind
	Name     string
	RawAttrs string
}

// StructTagMatcher recognizes structural tag lines for a declared tag set.
// Any line that is not a well-formed tag over that set is content, even if it
// happens to contain angle brackets.
type StructTagMatcher struct {
	re *regexp.Regexp
}

func NewStructTagMatcher(structNames []string) (*StructTagMatcher, error) {
	if len(structNames) == 0 {
		return nil, fmt.Errorf("vertigo: at least one structure name must be declared")
	}
	quoted := make([]string, len(structNames))
	for i, name := range structNames {
		if name == "" {
			return nil, fmt.Errorf("vertigo: empty structure name")
		}
		quoted[i] = regexp.QuoteMeta(name)
	}
	re, err := regexp.Compile(
		fmt.Sprintf(`^<\s*?(/?)\s*?(%s)(?:\s*?(/?)\s*?| (.*?))>$`, strings.Join(quoted, "|")),
	)
	if err != nil {
		return nil, fmt.Errorf("vertigo: compiling structure pattern: %w", err)
	}
	return &StructTagMatcher{re: re}, nil
}

// Match classifies line as a structural tag. The second return value is false
// for content lines.
func (m *StructTagMatcher) Match(line string) (TagMatch, bool) {
	groups := m.re.FindStringSubmatch(line)
	if groups == nil {
		return TagMatch{}, false
	}
	closing, name, selfClosing, rawAttrs := groups[1], groups[2], groups[3], groups[4]
	kind := TagOpen
	switch {
	case closing != "":
		kind = TagClose
	case selfClosing != "":
		kind = TagSelfClose
	}
	return TagMatch{
		Kind:     kind,
		Name:     name,
		RawAttrs: rawAttrs,
	}, true
}

var attrPattern = regexp.MustCompile(`\s*?(\S+?)="([^"]*?)"`)

// ParseAttrs scans raw attribute text for key="value" pairs. A value ends at
// the first `"`; escaped quotes are unsupported.
func ParseAttrs(raw string) map[string]string {
	attrs := map[string]string{}
	for _, groups := range attrPattern.FindAllStringSubmatch(raw, -1) {
		attrs[groups[1]] = groups[2]
	}
	return attrs
}
