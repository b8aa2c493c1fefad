// Package svg renders pitch-class clocks, fretboard fingerings and triads on
// a staff as standalone SVG documents.
//
// Every diagram has a string form and a Write form that fills a caller
// buffer. The Write forms never write a partial document: when buf is too
// small they return ErrBufferTooSmall and leave buf untouched.
package svg

import (
	"errors"
	"fmt"
	"strings"
)

var ErrBufferTooSmall = errors.New("svg buffer too small")

const (
	stroke = "#222"
	faint  = "#bbb"
	fill   = "#fff"
)

type document struct {
	b strings.Builder
}

func newDocument(width, height int) *document {
	d := &document{}
	fmt.Fprintf(&d.b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		width, height, width, height)
	return d
}

func (d *document) title(s string) {
	fmt.Fprintf(&d.b, `<title>%s</title>`, escape(s))
}

func (d *document) line(x1, y1, x2, y2 float64, color string, width float64) {
	fmt.Fprintf(&d.b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>`,
		x1, y1, x2, y2, color, width)
}

func (d *document) circle(cx, cy, r float64, fillColor, strokeColor string) {
	fmt.Fprintf(&d.b, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s"/>`,
		cx, cy, r, fillColor, strokeColor)
}

func (d *document) ellipse(cx, cy, rx, ry float64) {
	fmt.Fprintf(&d.b, `<ellipse cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f" fill="%s" transform="rotate(-20 %.1f %.1f)"/>`,
		cx, cy, rx, ry, stroke, cx, cy)
}

func (d *document) text(x, y float64, size int, s string) {
	fmt.Fprintf(&d.b, `<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%d" text-anchor="middle">%s</text>`,
		x, y, size, escape(s))
}

func (d *document) polygon(points [][2]float64) {
	if len(points) < 2 {
		return
	}
	coords := make([]string, 0, len(points))
	for _, p := range points {
		coords = append(coords, fmt.Sprintf("%.1f,%.1f", p[0], p[1]))
	}
	fmt.Fprintf(&d.b, `<polygon points="%s" fill="none" stroke="%s" stroke-width="1.5"/>`,
		strings.Join(coords, " "), stroke)
}

func (d *document) String() string {
	return d.b.String() + "</svg>"
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escape(s string) string {
	return escaper.Replace(s)
}

// write copies a whole document into buf, or nothing when it does not fit.
func write(doc string, buf []byte) (int, error) {
	if len(doc) > len(buf) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, len(doc), len(buf))
	}
	return copy(buf, doc), nil
}
