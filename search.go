package vertigo

import "fmt"

// MatchFunc decides whether a position is a hit, based on the position and the
// structural tags currently enclosing it.
type MatchFunc func(Position, Sattrs) bool

// CountFunc derives zero or more count keys from a matched position.
type CountFunc func(Position, Sattrs) []string

// MatchKey is the bucket used when Search runs without a CountFunc: every hit
// counts under the match predicate's own (always true) result.
const MatchKey = "true"

// Index maps a count key to the ascending 0-based content offsets where it
// occurred. Offsets count produced positions only, never tag lines.
type Index map[string][]int

// Search streams the corpus once, applies match to every position and appends
// the position's offset under each key derived by count. It returns the index
// together with n, the total number of content positions scanned, which is the
// denominator expected by IPM and ARF (offsets lie in [0, n)).
func (v *Vertical) Search(match MatchFunc, count CountFunc, options ...StreamOption) (Index, int, error) {
	if match == nil {
		return nil, 0, fmt.Errorf("vertigo: match function must not be nil")
	}
	if count == nil {
		count = func(Position, Sattrs) []string {
			return []string{MatchKey}
		}
	}
	scanner, err := v.Positions(options...)
	if err != nil {
		return nil, 0, err
	}
	defer scanner.Close()

	index := Index{}
	n := 0
	for scanner.Next() {
		position, sattrs := scanner.Position(), scanner.Sattrs()
		if match(position, sattrs) {
			for _, key := range count(position, sattrs) {
				index[key] = append(index[key], n)
			}
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return index, n, nil
}
