package svg

import (
	"strconv"
	"strings"

	"github.com/jsphweid/musictheory/constants"
	"github.com/jsphweid/musictheory/fret"
	"github.com/jsphweid/musictheory/util"
)

const (
	fretWidth     = 160
	fretHeight    = 200
	fretMarginX   = 30.0
	fretMarginTop = 40.0
	fretSpacing   = 30.0
	fretsShown    = 5
)

// Fret draws a chord box for a fingering given low string first, one entry
// per string: fret.Muted, 0 for open, or the fretted position. Strings past
// the sixth are ignored and missing strings are drawn muted.
func Fret(frets []int8) string {
	shown := make([]int8, constants.NumStrings)
	for i := range shown {
		shown[i] = fret.Muted
		if i < len(frets) {
			shown[i] = frets[i]
		}
	}

	base := lowestFret(shown)
	stringGap := (fretWidth - 2*fretMarginX) / float64(constants.NumStrings-1)

	doc := newDocument(fretWidth, fretHeight)
	doc.title(fingering(shown))

	nutWidth := 1.0
	if base == 1 {
		nutWidth = 4
	}
	doc.line(fretMarginX, fretMarginTop, fretWidth-fretMarginX, fretMarginTop, stroke, nutWidth)
	for f := 1; f <= fretsShown; f++ {
		y := fretMarginTop + float64(f)*fretSpacing
		doc.line(fretMarginX, y, fretWidth-fretMarginX, y, stroke, 1)
	}
	if base > 1 {
		doc.text(fretMarginX/2, fretMarginTop+fretSpacing*0.6, 11, strconv.Itoa(base)+"fr")
	}

	for str, f := range shown {
		x := fretMarginX + float64(str)*stringGap
		doc.line(x, fretMarginTop, x, fretMarginTop+fretsShown*fretSpacing, stroke, 1)
		switch {
		case f == fret.Muted:
			doc.text(x, fretMarginTop-10, 12, "x")
		case f == 0:
			doc.circle(x, fretMarginTop-14, 5, fill, stroke)
		case f > 0 && int(f)-base < fretsShown:
			y := fretMarginTop + (float64(int(f)-base)+0.5)*fretSpacing
			doc.circle(x, y, 9, stroke, stroke)
		}
	}
	return doc.String()
}

func WriteFret(frets []int8, buf []byte) (int, error) {
	return write(Fret(frets), buf)
}

// lowestFret is the first fret in the box: 1 when the fingering fits in the
// first five frets, otherwise the lowest fretted position.
func lowestFret(frets []int8) int {
	lo, hi := constants.MaxFret+1, 0
	for _, f := range frets {
		if f <= 0 {
			continue
		}
		lo, hi = util.Min(lo, int(f)), util.Max(hi, int(f))
	}
	if hi <= fretsShown {
		return 1
	}
	return lo
}

func fingering(frets []int8) string {
	parts := make([]string, 0, len(frets))
	for _, f := range frets {
		if f == fret.Muted {
			parts = append(parts, "x")
			continue
		}
		parts = append(parts, strconv.Itoa(int(f)))
	}
	return strings.Join(parts, "-")
}
