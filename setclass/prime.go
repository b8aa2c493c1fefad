// Package setclass classifies pitch-class sets: canonical prime forms, the
// Forte catalog, the cluster-free predicate and an evenness metric.
//
// The catalog tables are built once at init and only read afterwards, so
// every function here is safe for concurrent use.
package setclass

import (
	"github.com/jsphweid/musictheory/constants"
	"github.com/jsphweid/musictheory/pcs"
)

// morePacked reports whether candidate a beats b. Masks compare their highest
// pitch class first, so the smaller mask is the one packed towards 0.
func morePacked(a, b pcs.Set) bool {
	return a < b
}

// bestRotation returns the most packed of the 12 transpositions of s.
func bestRotation(s pcs.Set) pcs.Set {
	best := s.Valid()
	for n := 1; n < constants.NumPitchClasses; n++ {
		if c := s.Transpose(n); morePacked(c, best) {
			best = c
		}
	}
	return best
}

// PrimeForm returns the canonical member of the transposition class of s:
// the transposition most packed towards pitch class 0. It is idempotent and
// invariant under transposition of s; the major triad 0x091 is its own prime.
func PrimeForm(s pcs.Set) pcs.Set {
	return bestRotation(s)
}

// TnIPrimeForm searches the 24 transpositions of s and of its inversion.
// On a tie the non-inverted candidate is kept.
func TnIPrimeForm(s pcs.Set) pcs.Set {
	best := bestRotation(s)
	if inv := bestRotation(s.Invert()); morePacked(inv, best) {
		best = inv
	}
	return best
}

// IsSymmetric reports whether some inversion maps s onto itself.
func IsSymmetric(s pcs.Set) bool {
	return PrimeForm(s) == PrimeForm(s.Invert())
}

// Degeneracy counts the transpositions that map s onto itself, 1 for
// most sets and 12 for the empty and chromatic sets.
func Degeneracy(s pcs.Set) int {
	count := 0
	for n := 0; n < constants.NumPitchClasses; n++ {
		if s.Transpose(n) == s.Valid() {
			count++
		}
	}
	return count
}
