package vertigo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func matchAll(Position, Sattrs) bool { return true }

func TestSearchMatchAllConstantKey(t *testing.T) {
	v := newTestVertical(t, sampleCorpus)
	index, n, err := v.Search(matchAll, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("n = %d, expected 3", n)
	}
	expected := Index{MatchKey: {0, 1, 2}}
	if diff := cmp.Diff(index, expected); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestSearchCountKeys(t *testing.T) {
	v := newTestVertical(t, sampleCorpus)
	cases := []struct {
		name     string
		match    MatchFunc
		count    CountFunc
		expected Index
	}{
		{
			name:  "count by word",
			match: matchAll,
			count: func(p Position, _ Sattrs) []string {
				return []string{p.Field("word")}
			},
			expected: Index{"Dogs": {0}, "run": {1}, "fast": {2}},
		},
		{
			name:  "multiple keys per position",
			match: matchAll,
			count: func(p Position, _ Sattrs) []string {
				return []string{p.Field("word"), "tag:" + p.Field("tag")}
			},
			expected: Index{
				"Dogs": {0}, "run": {1}, "fast": {2},
				"tag:N": {0}, "tag:V": {1}, "tag:A": {2},
			},
		},
		{
			name:  "zero keys drop the hit",
			match: matchAll,
			count: func(p Position, _ Sattrs) []string {
				if p.Field("tag") == "V" {
					return nil
				}
				return []string{p.Field("word")}
			},
			expected: Index{"Dogs": {0}, "fast": {2}},
		},
		{
			name: "match gated by sattrs",
			match: func(_ Position, sattrs Sattrs) bool {
				doc, ok := sattrs["doc"]
				return ok && doc.Attrs["id"] == "d1"
			},
			count: func(p Position, _ Sattrs) []string {
				return []string{p.Field("lemma")}
			},
			expected: Index{"dog": {0}, "run": {1}, "fast": {2}},
		},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			index, n, err := v.Search(tt.match, tt.count)
			if err != nil {
				t.Fatal(err)
			}
			if n != 3 {
				t.Errorf("n = %d, expected 3", n)
			}
			if diff := cmp.Diff(index, tt.expected); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestSearchOffsetsCountProducedPositionsOnly(t *testing.T) {
	v := newTestVertical(t, sampleCorpus)
	index, n, err := v.Search(matchAll, nil,
		WithIgnoreFunc(func(p Position, _ Sattrs) bool { return p.Field("tag") == "V" }),
	)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("n = %d, expected 2", n)
	}
	expected := Index{MatchKey: {0, 1}}
	if diff := cmp.Diff(index, expected); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
}

func TestSearchNilMatch(t *testing.T) {
	v := newTestVertical(t, sampleCorpus)
	if _, _, err := v.Search(nil, nil); err == nil {
		t.Error("expected an error for a nil match function")
	}
}

func TestSearchPropagatesStreamErrors(t *testing.T) {
	v := newTestVertical(t, "<s>\na\tb\tc\n</p>\n")
	if _, _, err := v.Search(matchAll, nil); err == nil {
		t.Error("expected the structural error to surface")
	}
}
