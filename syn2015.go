package vertigo

// SYN2015 format declarations, per the corpus documentation.
var (
	Syn2015StructNames = []string{"doc", "text", "p", "s", "hi", "lb"}
	Syn2015PosAttrs    = []string{
		"word", "lemma", "tag", "proc", "afun", "parent", "eparent", "prep",
		"p_lemma", "p_tag", "p_afun", "ep_lemma", "ep_tag", "ep_afun",
	}
)

// NewSyn2015Vertical opens a gzip-compressed SYN2015 corpus. The positional
// tag field of every position is decomposed into a UtklTag.
func NewSyn2015Vertical(path string) (*Vertical, error) {
	return NewVertical(path, Syn2015StructNames, Syn2015PosAttrs,
		WithOpenFunc(OpenGzipLineSource),
		WithParseFunc(parseSyn2015Position),
	)
}

// NewShuffledSyn2015Vertical opens the shuffled SYN2015 distribution, which
// wraps blocks of sentences in an extra <block> structure.
func NewShuffledSyn2015Vertical(path string) (*Vertical, error) {
	structNames := append([]string{"block"}, Syn2015StructNames...)
	return NewVertical(path, structNames, Syn2015PosAttrs,
		WithOpenFunc(OpenGzipLineSource),
		WithParseFunc(parseSyn2015Position),
	)
}

func parseSyn2015Position(schema *Schema, line string) (Position, error) {
	position, err := schema.Parse(line)
	if err != nil {
		return Position{}, err
	}
	tag, err := ParseUtklTag(position.Field("tag"))
	if err != nil {
		return Position{}, err
	}
	position.Tag = &tag
	return position, nil
}
