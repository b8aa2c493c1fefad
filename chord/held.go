package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/musictheory/pcs"
	"github.com/jsphweid/musictheory/util"
)

// OnNotes holds the MIDI keys currently pressed.
type OnNotes = map[uint8]bool

// CreateChordKey renders notes in ascending order joined by dashes, e.g.
// "60-64-67". The input slice is left untouched.
func CreateChordKey(notes []uint8) string {
	sorted := append([]uint8(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, note := range sorted {
		res += fmt.Sprintf("%v", note)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

// HeldNotes returns the pressed keys in ascending order.
func HeldNotes(on OnNotes) []uint8 {
	var res []uint8
	for _, note := range util.SortedKeys(on) {
		if on[note] {
			res = append(res, note)
		}
	}
	return res
}

func SetOf(on OnNotes) pcs.Set {
	return pcs.FromMidi(HeldNotes(on))
}

// BassRoot picks the root of the triad sounding in notes. For the augmented
// triad, whose root is ambiguous, the lowest sounding note decides.
func BassRoot(notes []uint8) (pcs.PitchClass, Type, bool) {
	s := pcs.FromMidi(notes)
	root, t, ok := Root(s)
	if !ok || t != Augmented || len(notes) == 0 {
		return root, t, ok
	}
	lowest := notes[0]
	for _, n := range notes {
		lowest = util.Min(lowest, n)
	}
	return lowest % 12, t, true
}
