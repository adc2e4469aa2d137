package sim

import "math"

// Exponential draws a sample from an exponential distribution with the given
// mean, using stream 0 of s.
func (s *Streams) Exponential(mean float64) float64 {
	return -mean * math.Log(s.Random(0))
}

// Uniform draws a sample uniformly distributed in [a, b] (swapping a and b if
// a > b), using stream 0 of s.
func (s *Streams) Uniform(a, b float64) float64 {
	if a > b {
		a, b = b, a
	}
	return a + (b-a)*s.Random(0)
}
