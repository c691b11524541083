package vertigo

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
	"github.com/kotaroooo0/gojaconv/jaconv"

	"github.com/kotaroooo0/vertigo/morphology"
)

// Prose format declarations: what the verticalizers emit and what
// NewProseVertical expects to read back.
var (
	ProseStructNames = []string{"doc", "s"}
	ProsePosAttrs    = []string{"word", "lemma", "tag"}
)

// NewProseVertical opens a plain-text corpus produced by a Verticalizer.
func NewProseVertical(path string) (*Vertical, error) {
	return NewVertical(path, ProseStructNames, ProsePosAttrs)
}

// Verticalizer turns one raw document into vertical-format text: a <doc>
// structure wrapping <s> sentences, one word\tlemma\ttag line per token.
type Verticalizer interface {
	Verticalize(docID, text string) string
}

// StandardVerticalizer splits words on non-letter/non-number runes and uses
// the lowercased English snowball stem as the lemma. The tag field is not
// derivable without a morphological backend and stays "-".
type StandardVerticalizer struct{}

func NewStandardVerticalizer() StandardVerticalizer {
	return StandardVerticalizer{}
}

func (v StandardVerticalizer) Verticalize(docID, text string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<doc id=%q>\n", docID)
	for _, sentence := range splitSentences(text) {
		words := strings.FieldsFunc(sentence, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if len(words) == 0 {
			continue
		}
		b.WriteString("<s>\n")
		for _, word := range words {
			lemma := english.Stem(strings.ToLower(word), false)
			writePosition(&b, word, lemma, "-")
		}
		b.WriteString("</s>\n")
	}
	b.WriteString("</doc>\n")
	return b.String()
}

// MorphologicalVerticalizer tokenizes with a morphological analyzer. The lemma
// field is the token reading normalized to hiragana, the tag field is the
// analyzer's part-of-speech feature.
type MorphologicalVerticalizer struct {
	morphology morphology.Morphology
}

func NewMorphologicalVerticalizer(morphology morphology.Morphology) *MorphologicalVerticalizer {
	return &MorphologicalVerticalizer{
		morphology: morphology,
	}
}

func (v *MorphologicalVerticalizer) Verticalize(docID, text string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<doc id=%q>\n", docID)
	for _, sentence := range splitSentences(text) {
		tokens := v.morphology.Analyze(sentence)
		if len(tokens) == 0 {
			continue
		}
		b.WriteString("<s>\n")
		for _, token := range tokens {
			lemma := jaconv.KatakanaToHiragana(token.Kana)
			tag := token.Feature
			if tag == "" {
				tag = "-"
			}
			writePosition(&b, token.Term, lemma, tag)
		}
		b.WriteString("</s>\n")
	}
	b.WriteString("</doc>\n")
	return b.String()
}

func writePosition(b *strings.Builder, word, lemma, tag string) {
	b.WriteString(word)
	b.WriteByte('\t')
	b.WriteString(lemma)
	b.WriteByte('\t')
	b.WriteString(tag)
	b.WriteByte('\n')
}

func splitSentences(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case '.', '!', '?', '。', '！', '？':
			return true
		}
		return false
	})
}
