package svg

import (
	"math"
	"strconv"

	"github.com/jsphweid/musictheory/constants"
	"github.com/jsphweid/musictheory/pcs"
)

const (
	clockSize   = 200
	clockRadius = 70.0
	labelRadius = 88.0
	dotRadius   = 8.0
)

// ClockOPTC draws s on a pitch-class clock: C at twelve o'clock, members as
// filled dots joined in order.
func ClockOPTC(s pcs.Set) string {
	center := clockSize / 2.0
	doc := newDocument(clockSize, clockSize)
	doc.title(s.String())
	doc.circle(center, center, clockRadius, "none", faint)

	var members [][2]float64
	for pc := 0; pc < constants.NumPitchClasses; pc++ {
		x, y := clockPoint(center, clockRadius, pc)
		lx, ly := clockPoint(center, labelRadius, pc)
		doc.text(lx, ly+4, 11, strconv.Itoa(pc))

		if s.Has(pcs.PitchClass(pc)) {
			members = append(members, [2]float64{x, y})
			continue
		}
		doc.circle(x, y, dotRadius/2, fill, faint)
	}
	doc.polygon(members)
	for _, p := range members {
		doc.circle(p[0], p[1], dotRadius, stroke, stroke)
	}
	return doc.String()
}

func WriteClockOPTC(s pcs.Set, buf []byte) (int, error) {
	return write(ClockOPTC(s), buf)
}

func clockPoint(center, radius float64, pc int) (float64, float64) {
	angle := 2 * math.Pi * float64(pc) / constants.NumPitchClasses
	return center + radius*math.Sin(angle), center - radius*math.Cos(angle)
}
