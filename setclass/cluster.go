package setclass

import "github.com/jsphweid/musictheory/pcs"

// IsClusterFree reports whether no three chromatically adjacent pitch classes
// {p, p+1, p+2} (mod 12) are all members of s. Rotating the mask wraps the
// window across B-C, so all 12 positions are checked at once.
func IsClusterFree(s pcs.Set) bool {
	return s.Valid()&s.Transpose(-1)&s.Transpose(-2) == 0
}

// Clusters returns the lowest pitch class of every three-semitone window
// contained in s.
func Clusters(s pcs.Set) []pcs.PitchClass {
	return (s.Valid() & s.Transpose(-1) & s.Transpose(-2)).List()
}
