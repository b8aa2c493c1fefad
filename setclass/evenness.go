package setclass

import (
	"math"

	"github.com/jsphweid/musictheory/constants"
	"github.com/jsphweid/musictheory/pcs"
)

// EvennessDistance measures how far s is from a maximally even set of the
// same cardinality. Members sit on the circle at p*2π/12 and are paired in
// order with a reference of n points spaced 2π/n apart; the result is the sum
// of squared angular deviations, minimised over every rotation of the
// reference.
//
// The optimal rotation is the mean offset, so the minimum is n times the
// variance of angle(p_k) - 2πk/n. It is 0 for the empty and chromatic sets
// and for periodic sets such as the whole-tone scale or the augmented triad.
func EvennessDistance(s pcs.Set) float64 {
	list := s.List()
	n := len(list)
	if n < 2 {
		return 0
	}

	offsets := make([]float64, n)
	var mean float64
	for k, p := range list {
		pos := float64(p) * 2 * math.Pi / constants.NumPitchClasses
		ideal := float64(k) * 2 * math.Pi / float64(n)
		offsets[k] = pos - ideal
		mean += offsets[k]
	}
	mean /= float64(n)

	var total float64
	for _, o := range offsets {
		d := o - mean
		total += d * d
	}
	// rounding noise on periodic sets
	if total < 1e-12 {
		return 0
	}
	return total
}
