package chart

import "image/color"

// Palette is the visual style shared by every chart in a run. It is
// passed to the renderer explicitly so a styling change never touches
// extraction code.
type Palette struct {
	Primary    color.Color
	Secondary  color.Color
	Tertiary   color.Color
	Quaternary color.Color
	Series     []color.Color // Cycled by grouped and stacked charts
}

// DefaultPalette mirrors the report's house colors.
func DefaultPalette() Palette {
	return Palette{
		Primary:    rgb(0x2C, 0x3E, 0x50),
		Secondary:  rgb(0xE7, 0x4C, 0x3C),
		Tertiary:   rgb(0x34, 0x98, 0xDB),
		Quaternary: rgb(0x27, 0xAE, 0x60),
		Series: []color.Color{
			rgb(0x27, 0xAE, 0x60),
			rgb(0x34, 0x98, 0xDB),
			rgb(0xF3, 0x9C, 0x12),
			rgb(0xC0, 0x39, 0x2B),
			rgb(0x80, 0x80, 0x00),
			rgb(0x87, 0xCE, 0xEB),
		},
	}
}

// SeriesColor returns the i-th series color, cycling past the end.
func (p Palette) SeriesColor(i int) color.Color {
	if len(p.Series) == 0 {
		return p.Primary
	}
	return p.Series[i%len(p.Series)]
}

func rgb(r, g, b uint8) color.Color {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
