package vertigo

import (
	"fmt"
	"math"
)

// IPM returns the frequency of the occurrences normalized to instances per
// million corpus positions. n is the total number of content positions.
func IPM(occurrences []int, n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("vertigo: corpus size must be positive, got %d", n)
	}
	return 1e6 * float64(len(occurrences)) / float64(n), nil
}

// ARF returns the Average Reduced Frequency of the occurrences: each gap
// between neighbouring occurrences (circular, so the first wraps around to the
// last) is capped at the uniform gap n/freq, and the capped gaps are summed and
// renormalized by that uniform gap. Evenly dispersed occurrences give back the
// raw frequency, clustered ones are discounted towards 1.
//
// occurrences must be ascending offsets in [0, n), as produced by Search.
func ARF(occurrences []int, n int) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("vertigo: corpus size must be positive, got %d", n)
	}
	freq := len(occurrences)
	if freq == 0 {
		return 0, nil
	}
	avgDist := float64(n) / float64(freq)
	previous := occurrences[freq-1]
	var sum float64
	for _, occurrence := range occurrences {
		distance := (occurrence - previous) % n
		if distance < 0 {
			distance += n
		}
		sum += math.Min(float64(distance), avgDist)
		previous = occurrence
	}
	return sum / avgDist, nil
}
