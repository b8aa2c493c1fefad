package key

import (
	"strings"

	"github.com/jsphweid/musictheory/chord"
	"github.com/jsphweid/musictheory/constants"
	"github.com/jsphweid/musictheory/pcs"
	"github.com/jsphweid/musictheory/util"
)

const letters = "CDEFGAB"

var naturals = [7]int{0, 2, 4, 5, 7, 9, 11}

var (
	sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	flatNames  = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
)

// spellings that need a letter notation rarely uses on its own
var awkward = map[string]bool{"E#": true, "B#": true, "Cb": true, "Fb": true}

// SpellNote names pc in the key ctx. Members of the key's diatonic collection
// take the letter of their scale degree; in minor keys the raised seventh
// takes the seventh degree's letter. Anything else, and any degree spelling
// that would need E#, B#, Cb, Fb or a double accidental, comes from the sharp
// table in sharp keys and the flat table in flat keys. A diatonic note that
// falls back can land on a neighbouring degree's letter, so a spelled scale
// may repeat a letter: the seventh of F# major comes out as "F", not "E#".
//
// SpellNote(1, C major) is "C#"; SpellNote(1, Ab major) is "Db".
func SpellNote(pc pcs.PitchClass, ctx Context) string {
	pc %= constants.NumPitchClasses
	fallback := sharpNames[pc]
	if ctx.PrefersFlats() {
		fallback = flatNames[pc]
	}

	tonicLetter := ctx.tonicLetter()
	degree, ok := ctx.Degree(pc)
	if !ok && ctx.isLeadingTone(pc) {
		degree, ok = 6, true
	}
	if !ok {
		return fallback
	}

	letter := (tonicLetter + degree) % len(letters)
	name, ok := withAccidental(letter, int(pc))
	if !ok || awkward[name] {
		return fallback
	}
	return name
}

// SpellSet names every member of s in ascending pitch-class order.
func SpellSet(s pcs.Set, ctx Context) []string {
	res := make([]string, 0, s.Cardinality())
	s.Each(func(pc pcs.PitchClass) {
		res = append(res, SpellNote(pc, ctx))
	})
	return res
}

func (c Context) tonicLetter() int {
	name := sharpNames[c.Tonic%constants.NumPitchClasses]
	if c.PrefersFlats() {
		name = flatNames[c.Tonic%constants.NumPitchClasses]
	}
	return strings.IndexByte(letters, name[0])
}

// withAccidental spells pc on the given letter with at most one accidental.
func withAccidental(letter int, pc int) (string, bool) {
	name := string(letters[letter])
	switch util.Mod(pc-naturals[letter], constants.NumPitchClasses) {
	case 0:
		return name, true
	case 1:
		return name + "#", true
	case 11:
		return name + "b", true
	}
	return "", false
}

// Spelling is a note name broken into a letter (0 = C through 6 = B) and a
// count of sharps (positive) or flats (negative).
type Spelling struct {
	Letter     int
	Accidental int
}

func (s Spelling) String() string {
	name := string(letters[s.Letter])
	switch {
	case s.Accidental > 0:
		name += strings.Repeat("#", s.Accidental)
	case s.Accidental < 0:
		name += strings.Repeat("b", -s.Accidental)
	}
	return name
}

// SpellChord spells a triad in stacked thirds on the letter of its root. The
// root is spelled in the key the triad is the tonic of, so the upper notes
// may need double accidentals (F# augmented has C##).
func SpellChord(t chord.Type, root pcs.PitchClass) []Spelling {
	ctx := Context{Tonic: root % constants.NumPitchClasses, Quality: Major}
	if t == chord.Minor || t == chord.Diminished {
		ctx.Quality = Minor
	}
	rootLetter := strings.IndexByte(letters, SpellNote(ctx.Tonic, ctx)[0])

	intervals := t.Intervals()
	res := make([]Spelling, 0, len(intervals))
	for i, step := range intervals {
		letter := (rootLetter + 2*i) % len(letters)
		pc := int(ctx.Tonic) + step
		accidental := util.Mod(pc-naturals[letter]+6, constants.NumPitchClasses) - 6
		res = append(res, Spelling{Letter: letter, Accidental: accidental})
	}
	return res
}
