package key

import (
	"strings"

	"github.com/jsphweid/musictheory/chord"
	"github.com/jsphweid/musictheory/constants"
	"github.com/jsphweid/musictheory/pcs"
	"github.com/jsphweid/musictheory/util"
)

var numerals = [7]string{"I", "II", "III", "IV", "V", "VI", "VII"}

// triad quality built on each degree of the diatonic collection
var diatonicTriads = map[Quality][7]chord.Type{
	Major: {chord.Major, chord.Minor, chord.Minor, chord.Major, chord.Major, chord.Minor, chord.Diminished},
	Minor: {chord.Minor, chord.Diminished, chord.Major, chord.Minor, chord.Minor, chord.Major, chord.Major},
}

var qualityMarks = map[chord.Type]string{
	chord.Diminished: "°",
	chord.Augmented:  "+",
}

// RomanNumeral names a triad by the scale degree of its root in ctx. The
// numeral is upper case for major triads and lower case otherwise. A root
// outside the key takes the degree of the letter SpellNote gives it, with
// "#" or "b" for the difference, so the numeral agrees with ChordSymbol:
// C# major in A minor is "#III", Db major in F major is "bVI". The one
// exception is the diminished triad on the seventh of a minor key, which is
// measured from the leading tone: G#° in A minor is "vii°" and G° is
// "bvii°". The quality mark ("°" or "+") is
// appended when the triad is not the one the key builds on that degree.
//
// Sets that are not triads give "".
func RomanNumeral(chordSet pcs.Set, ctx Context) string {
	root, typ, ok := chord.Root(chordSet)
	if !ok {
		return ""
	}
	if typ == chord.Augmented {
		root = augmentedRoot(chordSet, ctx)
	}
	return numeral(root, typ, ctx)
}

// augmentedRoot prefers a member that is a degree of the key, closest above
// the tonic.
func augmentedRoot(s pcs.Set, ctx Context) pcs.PitchClass {
	roots := chord.Roots(s)
	best := roots[0]
	bestDiatonic := false
	bestDistance := constants.NumPitchClasses
	for _, r := range roots {
		_, diatonic := ctx.Degree(r)
		distance := util.Mod(int(r)-int(ctx.Tonic), constants.NumPitchClasses)
		if (diatonic && !bestDiatonic) || (diatonic == bestDiatonic && distance < bestDistance) {
			best, bestDiatonic, bestDistance = r, diatonic, distance
		}
	}
	return best
}

func numeral(root pcs.PitchClass, typ chord.Type, ctx Context) string {
	prefix := ""
	degree, ok := ctx.Degree(root)
	switch {
	case ok && typ == chord.Diminished && ctx.Quality == Minor && degree == 6:
		// measured against the leading tone, which owns vii°
		prefix = "b"
	case ok:
	case typ == chord.Diminished && ctx.isLeadingTone(root):
		degree = 6
	default:
		prefix, degree = chromaticDegree(root, ctx)
	}

	res := numerals[degree]
	if typ != chord.Major {
		res = strings.ToLower(res)
	}
	if !ok || diatonicTriads[ctx.Quality][degree] != typ {
		res += qualityMarks[typ]
	}
	return prefix + res
}

// isLeadingTone reports whether pc is the raised seventh of a minor key.
func (c Context) isLeadingTone(pc pcs.PitchClass) bool {
	return c.Quality == Minor && util.Mod(int(pc)-int(c.Tonic), constants.NumPitchClasses) == 11
}

// chromaticDegree finds the degree whose letter SpellNote uses for root and
// the accidental that separates root from that degree.
func chromaticDegree(root pcs.PitchClass, ctx Context) (string, int) {
	letter := strings.IndexByte(letters, SpellNote(root, ctx)[0])
	degree := util.Mod(letter-ctx.tonicLetter(), len(letters))
	step := ctx.Mode().Intervals()[degree]
	switch util.Mod(int(root)-int(ctx.Tonic)-step, constants.NumPitchClasses) {
	case 1:
		return "#", degree
	case 11:
		return "b", degree
	}

	// spelled a whole tone off its letter's degree; name it from the degree above
	if d, above := ctx.Degree((root + 1) % constants.NumPitchClasses); above {
		return "b", d
	}
	d, _ := ctx.Degree((root + constants.NumPitchClasses - 1) % constants.NumPitchClasses)
	return "#", d
}
