package vertigo

import (
	"fmt"
	"testing"
)

func TestIPM(t *testing.T) {
	cases := []struct {
		occurrences []int
		n           int
		expected    float64
	}{
		{
			occurrences: []int{10, 20, 30},
			n:           1000000,
			expected:    3.0,
		},
		{
			occurrences: []int{},
			n:           100,
			expected:    0.0,
		},
		{
			occurrences: []int{0, 50},
			n:           100,
			expected:    20000.0,
		},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("occurrences = %v, n = %v", tt.occurrences, tt.n), func(t *testing.T) {
			actual, err := IPM(tt.occurrences, tt.n)
			if err != nil {
				t.Fatal(err)
			}
			if actual != tt.expected {
				t.Errorf("IPM() = %v, expected %v", actual, tt.expected)
			}
		})
	}
}

func TestIPMZeroCorpusSize(t *testing.T) {
	if _, err := IPM([]int{1, 2}, 0); err == nil {
		t.Error("expected an error for n = 0")
	}
	if _, err := IPM(nil, -5); err == nil {
		t.Error("expected an error for negative n")
	}
}

func TestARF(t *testing.T) {
	cases := []struct {
		occurrences []int
		n           int
		expected    float64
	}{
		{
			// Perfectly uniform dispersion: every circular gap equals the
			// average gap, so ARF equals the raw frequency.
			occurrences: []int{0, 25, 50, 75},
			n:           100,
			expected:    4.0,
		},
		{
			// Maximal clustering: only the wraparound gap saturates, ARF is
			// driven towards 1.
			occurrences: []int{0, 1, 2, 3},
			n:           100,
			expected:    1.12,
		},
		{
			occurrences: []int{},
			n:           100,
			expected:    0.0,
		},
		{
			// A single occurrence has a zero circular gap to itself.
			occurrences: []int{42},
			n:           100,
			expected:    0.0,
		},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("occurrences = %v, n = %v", tt.occurrences, tt.n), func(t *testing.T) {
			actual, err := ARF(tt.occurrences, tt.n)
			if err != nil {
				t.Fatal(err)
			}
			if actual != tt.expected {
				t.Errorf("ARF() = %v, expected %v", actual, tt.expected)
			}
		})
	}
}

func TestARFZeroCorpusSize(t *testing.T) {
	if _, err := ARF([]int{1}, 0); err == nil {
		t.Error("expected an error for n = 0")
	}
}
