package svg

import (
	"strings"

	"github.com/jsphweid/musictheory/chord"
	"github.com/jsphweid/musictheory/key"
	"github.com/jsphweid/musictheory/pcs"
)

const (
	staffWidth   = 160
	staffHeight  = 160
	staffLeft    = 10.0
	staffBottom  = 100.0
	staffLineGap = 10.0
	noteX        = 100.0

	// E4, the bottom line of the treble staff, counted in letters from C0
	bottomLineStep = 2 + 7*4
	topLineStep    = bottomLineStep + 8
)

// ChordStaff draws the triad t on root as stacked note heads on a treble
// staff, root in the fourth octave, spelled in thirds.
func ChordStaff(t chord.Type, root pcs.PitchClass) string {
	spelled := key.SpellChord(t, root)

	names := make([]string, 0, len(spelled))
	for _, sp := range spelled {
		names = append(names, sp.String())
	}

	doc := newDocument(staffWidth, staffHeight)
	doc.title(strings.Join(names, " "))
	for i := 0; i < 5; i++ {
		y := staffBottom - float64(i)*staffLineGap
		doc.line(staffLeft, y, staffWidth-staffLeft, y, stroke, 1)
	}
	doc.text(staffLeft+18, staffBottom+6, 52, "𝄞")
	if len(spelled) == 0 {
		return doc.String()
	}

	step := 7*4 + spelled[0].Letter
	prev := spelled[0].Letter
	for i, sp := range spelled {
		if i > 0 {
			step += (sp.Letter - prev + 7) % 7
			prev = sp.Letter
		}
		y := stepY(step)
		ledgerLines(doc, step)
		doc.ellipse(noteX, y, 6.5, 4.5)
		if sp.Accidental != 0 {
			doc.text(noteX-16, y+4, 14, accidentalGlyph(sp.Accidental))
		}
	}
	return doc.String()
}

func WriteChordStaff(t chord.Type, root pcs.PitchClass, buf []byte) (int, error) {
	return write(ChordStaff(t, root), buf)
}

func stepY(step int) float64 {
	return staffBottom - float64(step-bottomLineStep)*staffLineGap/2
}

func ledgerLines(doc *document, step int) {
	for s := bottomLineStep - 2; s >= step; s -= 2 {
		doc.line(noteX-11, stepY(s), noteX+11, stepY(s), stroke, 1)
	}
	for s := topLineStep + 2; s <= step; s += 2 {
		doc.line(noteX-11, stepY(s), noteX+11, stepY(s), stroke, 1)
	}
}

func accidentalGlyph(n int) string {
	if n > 0 {
		return strings.Repeat("♯", n)
	}
	return strings.Repeat("♭", -n)
}
