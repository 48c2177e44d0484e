package famdash

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas wraps an RGBA image with the small set of drawing primitives the
// layout needs: filled and stroked rectangles, lines, and anchored text.
// Coordinates are in pixels with the origin at the top-left.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a w×h canvas filled with the background color.
func NewCanvas(w, h int, bg color.RGBA) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// Image exposes the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Fill paints the rectangle r with col.
func (c *Canvas) Fill(r image.Rectangle, col color.RGBA) {
	draw.Draw(c.img, r.Intersect(c.img.Bounds()), image.NewUniform(col), image.Point{}, draw.Src)
}

// StrokeRect draws the border of r with the given stroke width, inset so
// the stroke stays inside r.
func (c *Canvas) StrokeRect(r image.Rectangle, col color.RGBA, width int) {
	if width <= 0 {
		return
	}
	c.Fill(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), col)
	c.Fill(image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), col)
	c.Fill(image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y), col)
	c.Fill(image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y), col)
}

// Line draws a straight segment from (x0,y0) to (x1,y1) with the given
// stroke width, plotted as width×width squares along a Bresenham walk so
// the result stays hard-edged (no anti-aliasing to dither away later).
func (c *Canvas) Line(x0, y0, x1, y1 int, col color.RGBA, width int) {
	if width < 1 {
		width = 1
	}
	half := width / 2

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		c.Fill(image.Rect(x-half, y-half, x-half+width, y-half+width), col)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// FillCircle paints a filled disc centered at (cx,cy).
func (c *Canvas) FillCircle(cx, cy, radius int, col color.RGBA) {
	rr := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= rr {
				c.img.SetRGBA(cx+dx, cy+dy, col)
			}
		}
	}
}

// DrawText draws s with its top-left corner at (x,y). The baseline is
// derived from the face ascent so consecutive calls with the same face
// stack predictably.
//
// Glyph masks are applied as a hard stencil (coverage ≥ 50% paints the text
// color, anything less leaves the pixel untouched) rather than alpha
// blended. Blending would smear out-of-palette edge colors that the
// palette snap then turns into halos; thresholding keeps text crisp on the
// panel. Glyphs extending past the canvas edge are clipped.
func (c *Canvas) DrawText(x, y int, s string, face font.Face, col color.RGBA) {
	dot := fixed.Point26_6{
		X: fixed.I(x),
		Y: fixed.I(y) + face.Metrics().Ascent,
	}
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			dot.X += face.Kern(prev, r)
		}
		dr, mask, maskp, advance, ok := face.Glyph(dot, r)
		if !ok {
			prev = r
			continue
		}
		for yy := dr.Min.Y; yy < dr.Max.Y; yy++ {
			for xx := dr.Min.X; xx < dr.Max.X; xx++ {
				_, _, _, a := mask.At(maskp.X+xx-dr.Min.X, maskp.Y+yy-dr.Min.Y).RGBA()
				if a >= 0x8000 {
					c.img.SetRGBA(xx, yy, col)
				}
			}
		}
		dot.X += advance
		prev = r
	}
}

// TextWidth measures the horizontal advance of s in pixels.
func (c *Canvas) TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// LineHeight returns the face's natural line height in pixels.
func (c *Canvas) LineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
