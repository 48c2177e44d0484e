package famdash

import (
	"fmt"
	"image"
	"image/color"
	"strings"
)

// DitherType selects the palette reduction strategy.
type DitherType string

const (
	// DitherNone disables dithering; each pixel maps to its nearest palette
	// color. Right choice for text and line art, posterizes gradients.
	DitherNone DitherType = "NONE"
	// DitherDiffusion enables error diffusion: each pixel's quantization
	// error is spread to unprocessed neighbors per the selected kernel.
	// Good general-purpose choice for photo-like content.
	DitherDiffusion DitherType = "DIFFUSION"
	// DitherOrdered applies a Bayer threshold matrix. Produces a regular
	// halftone pattern that keeps uniform regions stable but can show grid
	// artifacts in smooth gradients.
	DitherOrdered DitherType = "ORDERED"
)

// DitherKernel selects the error-diffusion kernel when DitherType is
// DIFFUSION. KernelThreshold belongs to ORDERED and is accepted there only.
type DitherKernel string

const (
	// KernelFloydSteinberg is the classic 7/16, 3/16, 5/16, 1/16 diffusion.
	// Balanced detail and smoothness; the default.
	KernelFloydSteinberg DitherKernel = "FLOYD_STEINBERG"
	// KernelAtkinson diffuses only 6/8 of the error over a compact
	// footprint; preserves micro-detail and text, renders slightly lighter.
	KernelAtkinson DitherKernel = "ATKINSON"
	// KernelBurkes is row-oriented with emphasis on immediate neighbors;
	// sharp edges, fine detail.
	KernelBurkes DitherKernel = "BURKES"
	// KernelSierra2 is the two-row Sierra variant; smooth gradients with
	// moderate grain.
	KernelSierra2 DitherKernel = "SIERRA2"
	// KernelStucki uses a large three-row footprint; crisp edges, can be
	// grainier.
	KernelStucki DitherKernel = "STUCKI"
	// KernelJarvisJudiceNinke has the largest footprint; very smooth
	// gradients, may soften fine detail.
	KernelJarvisJudiceNinke DitherKernel = "JARVIS_JUDICE_NINKE"
	// KernelThreshold is the ordered (Bayer) threshold matrix without any
	// diffusion.
	KernelThreshold DitherKernel = "THRESHOLD"
)

// ParseDitherType normalizes s (case-insensitive) into a DitherType.
func ParseDitherType(s string) (DitherType, error) {
	switch t := DitherType(strings.ToUpper(strings.TrimSpace(s))); t {
	case DitherNone, DitherDiffusion, DitherOrdered:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDitherType, s)
}

// ParseDitherKernel normalizes s (case-insensitive) into a DitherKernel.
func ParseDitherKernel(s string) (DitherKernel, error) {
	switch k := DitherKernel(strings.ToUpper(strings.TrimSpace(s))); k {
	case KernelFloydSteinberg, KernelAtkinson, KernelBurkes, KernelSierra2,
		KernelStucki, KernelJarvisJudiceNinke, KernelThreshold:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDitherKernel, s)
}

// diffusionTap spreads numerator/denominator of the error to the pixel at
// (dx,dy) relative to the one being quantized.
type diffusionTap struct {
	dx, dy int
	num    int
}

type diffusionKernel struct {
	taps []diffusionTap
	den  int
}

var diffusionKernels = map[DitherKernel]diffusionKernel{
	KernelFloydSteinberg: {den: 16, taps: []diffusionTap{
		{1, 0, 7}, {-1, 1, 3}, {0, 1, 5}, {1, 1, 1},
	}},
	KernelAtkinson: {den: 8, taps: []diffusionTap{
		{1, 0, 1}, {2, 0, 1}, {-1, 1, 1}, {0, 1, 1}, {1, 1, 1}, {0, 2, 1},
	}},
	KernelBurkes: {den: 32, taps: []diffusionTap{
		{1, 0, 8}, {2, 0, 4}, {-2, 1, 2}, {-1, 1, 4}, {0, 1, 8}, {1, 1, 4}, {2, 1, 2},
	}},
	KernelSierra2: {den: 16, taps: []diffusionTap{
		{1, 0, 4}, {2, 0, 3}, {-2, 1, 1}, {-1, 1, 2}, {0, 1, 3}, {1, 1, 2}, {2, 1, 1},
	}},
	KernelStucki: {den: 42, taps: []diffusionTap{
		{1, 0, 8}, {2, 0, 4},
		{-2, 1, 2}, {-1, 1, 4}, {0, 1, 8}, {1, 1, 4}, {2, 1, 2},
		{-2, 2, 1}, {-1, 2, 2}, {0, 2, 4}, {1, 2, 2}, {2, 2, 1},
	}},
	KernelJarvisJudiceNinke: {den: 48, taps: []diffusionTap{
		{1, 0, 7}, {2, 0, 5},
		{-2, 1, 3}, {-1, 1, 5}, {0, 1, 7}, {1, 1, 5}, {2, 1, 3},
		{-2, 2, 1}, {-1, 2, 3}, {0, 2, 5}, {1, 2, 3}, {2, 2, 1},
	}},
}

// bayer4 is the 4×4 ordered dithering threshold matrix, values 0–15.
var bayer4 = [4][4]int{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// Ditherer reduces an arbitrary image to a display palette. Near-black and
// near-white pixels can be preserved as-is with no error diffusion so that
// rendered text and backgrounds stay clean while photos still dither.
type Ditherer struct {
	Palette Palette
	Type    DitherType
	Kernel  DitherKernel
	// PreserveBW keeps pixels darker than BlackThreshold pure black and
	// pixels brighter than WhiteThreshold pure white, without diffusing
	// error into them or out of them.
	PreserveBW     bool
	BlackThreshold uint8
	WhiteThreshold uint8
}

// NewDitherer returns a ditherer over the given palette with
// Floyd-Steinberg diffusion and aggressive black/white preservation for
// text. Set Type to DitherNone for plain nearest-color quantization (what
// the dashboard render path uses as its palette guard).
func NewDitherer(palette Palette) *Ditherer {
	return &Ditherer{
		Palette:        palette,
		Type:           DitherDiffusion,
		Kernel:         KernelFloydSteinberg,
		PreserveBW:     true,
		BlackThreshold: 40,
		WhiteThreshold: 215,
	}
}

// Apply quantizes src to the ditherer's palette and returns a new image.
// src is not modified.
func (d *Ditherer) Apply(src image.Image) (*image.RGBA, error) {
	if src == nil {
		return nil, ErrNilImage
	}
	if len(d.Palette) == 0 {
		return nil, ErrEmptyPalette
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	// Working buffer in float32 so diffusion error can go negative.
	buf := make([]float32, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := (y*w + x) * 3
			buf[i] = float32(r >> 8)
			buf[i+1] = float32(g >> 8)
			buf[i+2] = float32(bl >> 8)
		}
	}

	switch d.Type {
	case DitherNone, DitherDiffusion, DitherOrdered:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDitherType, d.Type)
	}
	kern, ok := diffusionKernels[d.Kernel]
	if d.Type == DitherDiffusion && !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDitherKernel, d.Kernel)
	}

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 3
			pr := clampF(buf[i])
			pg := clampF(buf[i+1])
			pb := clampF(buf[i+2])

			if preserved, pc := d.preserve(pr, pg, pb); preserved {
				out.SetRGBA(x, y, pc)
				continue
			}

			switch d.Type {
			case DitherOrdered:
				// Bias each channel by the threshold matrix before the
				// nearest-color lookup; the bias spans roughly one
				// quantization step of the palette.
				bias := (float32(bayer4[y%4][x%4]) - 7.5) * (255.0 / 16.0)
				pr = clampF(pr + bias)
				pg = clampF(pg + bias)
				pb = clampF(pb + bias)
				fallthrough
			case DitherNone:
				_, nc := d.Palette.Nearest(color.RGBA{R: uint8(pr), G: uint8(pg), B: uint8(pb), A: 255})
				out.SetRGBA(x, y, nc)
			default: // DitherDiffusion
				_, nc := d.Palette.Nearest(color.RGBA{R: uint8(pr), G: uint8(pg), B: uint8(pb), A: 255})
				out.SetRGBA(x, y, nc)
				er := pr - float32(nc.R)
				eg := pg - float32(nc.G)
				eb := pb - float32(nc.B)
				for _, tap := range kern.taps {
					nx, ny := x+tap.dx, y+tap.dy
					if nx < 0 || nx >= w || ny >= h {
						continue
					}
					f := float32(tap.num) / float32(kern.den)
					j := (ny*w + nx) * 3
					buf[j] += er * f
					buf[j+1] += eg * f
					buf[j+2] += eb * f
				}
			}
		}
	}
	return out, nil
}

// preserve reports whether the pixel should bypass dithering, and with
// which palette color.
func (d *Ditherer) preserve(r, g, b float32) (bool, color.RGBA) {
	if !d.PreserveBW {
		return false, color.RGBA{}
	}
	bt := float32(d.BlackThreshold)
	wt := float32(d.WhiteThreshold)
	if r <= bt && g <= bt && b <= bt {
		return true, Black
	}
	if r >= wt && g >= wt && b >= wt {
		return true, White
	}
	// Exact palette colors (small tolerance for rounding) pass through so
	// already-clean renders are untouched.
	for _, pc := range d.Palette {
		if absF(r-float32(pc.R)) <= 5 && absF(g-float32(pc.G)) <= 5 && absF(b-float32(pc.B)) <= 5 {
			return true, pc
		}
	}
	return false, color.RGBA{}
}

// ColorCount is one palette color's share of an image.
type ColorCount struct {
	Color   color.RGBA
	Name    string
	Pixels  int
	Percent float64
}

// ColorDistribution maps every pixel of img to its nearest color in the
// palette and reports per-color usage, ordered like the palette.
func ColorDistribution(img image.Image, palette Palette) []ColorCount {
	counts := make([]int, len(palette))
	b := img.Bounds()
	total := b.Dx() * b.Dy()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			idx, _ := palette.Nearest(img.At(x, y))
			counts[idx]++
		}
	}

	out := make([]ColorCount, len(palette))
	for i, c := range palette {
		pct := 0.0
		if total > 0 {
			pct = float64(counts[i]) / float64(total) * 100
		}
		out[i] = ColorCount{Color: c, Name: colorName(c), Pixels: counts[i], Percent: pct}
	}
	return out
}

func clampF(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func absF(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
