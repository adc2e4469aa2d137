// Package stats implements the batch-means output-analysis method: an
// online estimator that consumes a stream of scalar observations, discards a
// transient prefix, groups the remainder into fixed-size batches, and
// signals when a Student-t confidence half-width (relative to the grand
// mean) falls below a target precision.
package stats

import "math"

// Z computes the upper p-quantile of the standard normal distribution: the
// value z for which the area under the curve from z to +infinity equals p.
// Uses the Hastings (1955) rational approximation transcribed from
// _examples/original_source/batch-means.c, which is itself a transliteration
// of the STDZ function in Fishman's "Principles of Discrete Event
// Simulation" (Wiley, 1978). These coefficients are part of the numerical
// contract and are not replaced by a library quantile function.
func Z(p float64) float64 {
	q := p
	if p > 0.5 {
		q = 1 - p
	}
	z1 := math.Sqrt(-2.0 * math.Log(q))
	n := (0.010328*z1+0.802853)*z1 + 2.515517
	d := ((0.001308*z1+0.189269)*z1+1.43278)*z1 + 1
	z1 -= n / d
	if p > 0.5 {
		z1 = -z1
	}
	return z1
}

// T computes the upper p-quantile of the Student's t distribution with ndf
// degrees of freedom: the value t for which the area under the curve from t
// to +infinity equals p. Transliterated from
// _examples/original_source/batch-means.c's T, itself derived from the
// STUDTP function in Fishman (1978), applying a Cornish-Fisher correction on
// top of Z. See the Z doc comment re: numerical contract.
func T(p float64, ndf int) float64 {
	z1 := math.Abs(Z(p))
	z2 := z1 * z1

	h0 := 0.25 * z1 * (z2 + 1.0)
	h1 := 0.010416667 * z1 * ((5.0*z2+16.0)*z2 + 3.0)
	h2 := 0.002604167 * z1 * (((3.0*z2+19.0)*z2+17.0)*z2 - 15.0)
	h3 := 0.000010851 * z1 * ((((79.0*z2+776.0)*z2+1482.0)*z2-1920.0)*z2 - 945.0)

	h := [4]float64{h0, h1, h2, h3}
	x := 0.0
	for i := 3; i >= 0; i-- {
		x = (x + h[i]) / float64(ndf)
	}
	z1 += x
	if p > 0.5 {
		z1 = -z1
	}
	return z1
}
