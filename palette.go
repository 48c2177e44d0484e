package famdash

import "image/color"

// The render palette. Spectra E6 panels reproduce these without dithering;
// everything drawn by the layout stays inside this set.
var (
	// White is the background color.
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// Black is the primary text color.
	Black = color.RGBA{A: 255}
	// Red is the accent/highlight color.
	Red = color.RGBA{R: 255, A: 255}
	// Gray is the secondary text and border color.
	Gray = color.RGBA{R: 128, G: 128, B: 128, A: 255}

	// Yellow, Green and Blue complete the six-color Spectra E6 gamut. The
	// dashboard layout never uses them; they exist for dithering photo-like
	// content.
	Yellow = color.RGBA{R: 255, G: 255, A: 255}
	Green  = color.RGBA{G: 255, A: 255}
	Blue   = color.RGBA{B: 255, A: 255}
)

// Palette is an ordered set of permitted display colors.
type Palette []color.RGBA

// Palette4 is the dashboard render palette: white background, black primary
// text, red accent, gray secondary.
var Palette4 = Palette{White, Black, Red, Gray}

// PaletteE6 is the full six-color Spectra E6 palette for photo-like inputs.
var PaletteE6 = Palette{White, Black, Red, Yellow, Green, Blue}

// Names returns human-readable names aligned with the palette entries.
// Unknown colors are reported as hex.
func (p Palette) Names() []string {
	names := make([]string, len(p))
	for i, c := range p {
		names[i] = colorName(c)
	}
	return names
}

// Contains reports whether c is exactly one of the palette entries.
func (p Palette) Contains(c color.Color) bool {
	r, g, b, a := c.RGBA()
	for _, pc := range p {
		pr, pg, pb, pa := pc.RGBA()
		if r == pr && g == pg && b == pb && a == pa {
			return true
		}
	}
	return false
}

// Nearest returns the palette entry closest to c by squared Euclidean
// distance in RGB space, along with its index.
func (p Palette) Nearest(c color.Color) (int, color.RGBA) {
	r, g, b, _ := c.RGBA()
	cr, cg, cb := int32(r>>8), int32(g>>8), int32(b>>8)

	bestIdx := 0
	bestDist := int32(1<<31 - 1)
	for i, pc := range p {
		dr := cr - int32(pc.R)
		dg := cg - int32(pc.G)
		db := cb - int32(pc.B)
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			bestIdx = i
		}
	}
	return bestIdx, p[bestIdx]
}

func colorName(c color.RGBA) string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case Red:
		return "red"
	case Gray:
		return "gray"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	const hex = "0123456789abcdef"
	return string([]byte{
		'#',
		hex[c.R>>4], hex[c.R&0xf],
		hex[c.G>>4], hex[c.G&0xf],
		hex[c.B>>4], hex[c.B&0xf],
	})
}
