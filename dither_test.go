package famdash

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

// testGradient builds a small image with gray and color ramps, the worst
// case for palette reduction.
func testGradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(x * 255 / (w - 1))
			switch {
			case y < h/3:
				img.SetRGBA(x, y, color.RGBA{R: 255, G: v, B: v, A: 255}) // red→white
			case y < 2*h/3:
				img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: 255, A: 255}) // blue→white
			default:
				img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255}) // gray ramp
			}
		}
	}
	return img
}

func TestDitherPaletteSubset(t *testing.T) {
	src := testGradient(64, 48)
	kernels := []DitherKernel{
		KernelFloydSteinberg, KernelAtkinson, KernelBurkes,
		KernelSierra2, KernelStucki, KernelJarvisJudiceNinke,
	}
	for _, pal := range []Palette{Palette4, PaletteE6} {
		for _, k := range kernels {
			d := NewDitherer(pal)
			d.Kernel = k
			out, err := d.Apply(src)
			if err != nil {
				t.Fatalf("%s: %v", k, err)
			}
			if pt, bad := paletteViolation(out, pal); bad {
				t.Fatalf("%s: out-of-palette pixel at %v", k, pt)
			}
		}

		for _, typ := range []DitherType{DitherNone, DitherOrdered} {
			d := NewDitherer(pal)
			d.Type = typ
			if typ == DitherOrdered {
				d.Kernel = KernelThreshold
			}
			out, err := d.Apply(src)
			if err != nil {
				t.Fatalf("%s: %v", typ, err)
			}
			if pt, bad := paletteViolation(out, pal); bad {
				t.Fatalf("%s: out-of-palette pixel at %v", typ, pt)
			}
		}
	}
}

func TestDitherPreservesBlackWhite(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x < 4 {
				src.SetRGBA(x, y, Black)
			} else {
				src.SetRGBA(x, y, White)
			}
		}
	}

	d := NewDitherer(Palette4)
	out, err := d.Apply(src)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Pix, src.Pix) {
		t.Fatal("pure black/white input must pass through unchanged")
	}
}

func TestDitherDeterministic(t *testing.T) {
	src := testGradient(40, 30)
	d := NewDitherer(PaletteE6)

	a, err := d.Apply(src)
	if err != nil {
		t.Fatal(err)
	}
	b, err := d.Apply(src)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("dithering the same image twice differs")
	}
	// Apply must not mutate its input.
	if !bytes.Equal(src.Pix, testGradient(40, 30).Pix) {
		t.Fatal("Apply mutated the source image")
	}
}

func TestDitherErrors(t *testing.T) {
	d := NewDitherer(Palette4)
	if _, err := d.Apply(nil); err != ErrNilImage {
		t.Fatalf("err=%v, want ErrNilImage", err)
	}

	d = NewDitherer(nil)
	if _, err := d.Apply(testGradient(4, 4)); err != ErrEmptyPalette {
		t.Fatalf("err=%v, want ErrEmptyPalette", err)
	}

	d = NewDitherer(Palette4)
	d.Type = "SMOOTH"
	if _, err := d.Apply(testGradient(4, 4)); !errors.Is(err, ErrUnknownDitherType) {
		t.Fatalf("err=%v, want ErrUnknownDitherType", err)
	}

	d = NewDitherer(Palette4)
	d.Kernel = "GAUSSIAN"
	if _, err := d.Apply(testGradient(4, 4)); !errors.Is(err, ErrUnknownDitherKernel) {
		t.Fatalf("err=%v, want ErrUnknownDitherKernel", err)
	}
}

func TestParseDitherType(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want DitherType
	}{
		{"none", DitherNone},
		{" Diffusion ", DitherDiffusion},
		{"ORDERED", DitherOrdered},
	} {
		got, err := ParseDitherType(tc.in)
		if err != nil {
			t.Fatalf("ParseDitherType(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseDitherType(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
	if _, err := ParseDitherType("smooth"); !errors.Is(err, ErrUnknownDitherType) {
		t.Fatalf("err=%v", err)
	}
}

func TestParseDitherKernel(t *testing.T) {
	got, err := ParseDitherKernel("floyd_steinberg")
	if err != nil || got != KernelFloydSteinberg {
		t.Fatalf("got=%q err=%v", got, err)
	}
	if _, err := ParseDitherKernel("gaussian"); !errors.Is(err, ErrUnknownDitherKernel) {
		t.Fatalf("err=%v", err)
	}
}

func TestColorDistribution(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if y < 5 {
				src.SetRGBA(x, y, Black)
			} else {
				src.SetRGBA(x, y, White)
			}
		}
	}

	dist := ColorDistribution(src, Palette4)
	if len(dist) != len(Palette4) {
		t.Fatalf("len=%d", len(dist))
	}
	byName := map[string]ColorCount{}
	for _, cc := range dist {
		byName[cc.Name] = cc
	}
	if byName["black"].Pixels != 50 || byName["white"].Pixels != 50 {
		t.Fatalf("black=%d white=%d, want 50/50", byName["black"].Pixels, byName["white"].Pixels)
	}
	if byName["black"].Percent != 50.0 {
		t.Fatalf("black percent=%v", byName["black"].Percent)
	}
	if byName["red"].Pixels != 0 {
		t.Fatalf("red=%d", byName["red"].Pixels)
	}
}

func TestPaletteNearest(t *testing.T) {
	for _, tc := range []struct {
		in   color.RGBA
		want color.RGBA
	}{
		{color.RGBA{10, 10, 10, 255}, Black},
		{color.RGBA{250, 250, 250, 255}, White},
		{color.RGBA{230, 20, 20, 255}, Red},
		{color.RGBA{120, 130, 125, 255}, Gray},
	} {
		if _, got := Palette4.Nearest(tc.in); got != tc.want {
			t.Fatalf("Nearest(%v)=%v, want %v", tc.in, got, tc.want)
		}
	}
}
