// Package render draws the per-genre charts with gonum/plot.
package render

import "image/color"

// Fixed palette for the impact-type hue.
var impactTypePalette = map[string]color.RGBA{
	"affect":     {R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	"style":      {R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	"narrative":  {R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	"reflection": {R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	"unknown":    {R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
}

// Binary hue pair for "stronger in target" vs "stronger in others", and for
// the two sides of a diff plot.
var (
	hueFirst  = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	hueSecond = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	hueShape  = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0x60}
	hueGrid   = color.RGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
)

// colorFor picks a deterministic color for a label: palette entry when the
// label is a known impact type, otherwise the binary pair by first-seen rank.
func colorFor(label string, rank int) color.RGBA {
	if c, ok := impactTypePalette[label]; ok {
		return c
	}
	if rank == 0 {
		return hueFirst
	}
	return hueSecond
}
