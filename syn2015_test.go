package vertigo

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func syn2015Line(word, lemma, tag string) string {
	fields := []string{word, lemma, tag}
	for len(fields) < len(Syn2015PosAttrs) {
		fields = append(fields, "-")
	}
	return strings.Join(fields, "\t")
}

func TestSyn2015Vertical(t *testing.T) {
	corpus := strings.Join([]string{
		`<doc id="d1">`,
		"<text>",
		"<p>",
		"<s>",
		syn2015Line("pes", "pes", "NNMS1-----A----1"),
		syn2015Line("běží", "běžet", "VB-S---3P-AAI--1"),
		"</s>",
		"</p>",
		"</text>",
		"</doc>",
		"",
	}, "\n")
	path := writeGzipCorpus(t, corpus)
	v, err := NewSyn2015Vertical(path)
	if err != nil {
		t.Fatal(err)
	}
	scanner, err := v.Positions()
	if err != nil {
		t.Fatal(err)
	}
	var words []string
	var tags []UtklTag
	for scanner.Next() {
		words = append(words, scanner.Position().Field("word"))
		tags = append(tags, *scanner.Position().Tag)
	}
	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(words, []string{"pes", "běží"}); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
	if tags[0].Pos != "N" || tags[0].Case != "1" {
		t.Errorf("decomposed tag = %+v, expected Pos N Case 1", tags[0])
	}
	if tags[1].Pos != "V" || tags[1].Pers != "3" {
		t.Errorf("decomposed tag = %+v, expected Pos V Pers 3", tags[1])
	}
}

func TestShuffledSyn2015VerticalAcceptsBlocks(t *testing.T) {
	corpus := strings.Join([]string{
		"<block>",
		`<doc id="d1">`,
		"<s>",
		syn2015Line("pes", "pes", "NNMS1-----A----1"),
		"</s>",
		"</doc>",
		"</block>",
		"",
	}, "\n")
	path := writeGzipCorpus(t, corpus)
	v, err := NewShuffledSyn2015Vertical(path)
	if err != nil {
		t.Fatal(err)
	}
	index, n, err := v.Search(matchAll, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("n = %d, expected 1", n)
	}
	if diff := cmp.Diff(index, Index{MatchKey: {0}}); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestParseSyn2015PositionBadTag(t *testing.T) {
	schema, err := NewSchema(Syn2015PosAttrs)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := parseSyn2015Position(schema, syn2015Line("pes", "pes", "short")); err == nil {
		t.Error("expected an error for a malformed positional tag")
	}
}
