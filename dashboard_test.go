package famdash

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func newTestLayout(t *testing.T, opts ...LayoutOption) *Layout {
	t.Helper()
	l, err := NewLayout(opts...)
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	return l
}

// paletteViolation returns the first pixel of img outside the palette.
func paletteViolation(img image.Image, p Palette) (image.Point, bool) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !p.Contains(img.At(x, y)) {
				return image.Pt(x, y), true
			}
		}
	}
	return image.Point{}, false
}

func regionHasColor(img image.Image, r image.Rectangle, col color.RGBA) bool {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.At(x, y) == col {
				return true
			}
		}
	}
	return false
}

func TestRenderDimensions(t *testing.T) {
	l := newTestLayout(t)
	img, err := l.Render(NewProvider().DashboardData(monday))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := img.Bounds(); got.Dx() != DisplayWidth || got.Dy() != DisplayHeight {
		t.Fatalf("bounds=%v, want %dx%d", got, DisplayWidth, DisplayHeight)
	}
}

func TestRenderPaletteSubset(t *testing.T) {
	l := newTestLayout(t)
	for _, tc := range []struct {
		name string
		data DashboardData
	}{
		{"school day", NewProvider().DashboardData(monday)},
		{"weekend", NewProvider().DashboardData(saturday)},
	} {
		img, err := l.Render(tc.data)
		if err != nil {
			t.Fatalf("%s: Render: %v", tc.name, err)
		}
		if pt, bad := paletteViolation(img, Palette4); bad {
			t.Fatalf("%s: out-of-palette pixel %v at %v", tc.name, img.At(pt.X, pt.Y), pt)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	l := newTestLayout(t)
	data := NewProvider().DashboardData(monday)

	a, err := l.Render(data)
	if err != nil {
		t.Fatal(err)
	}
	b, err := l.Render(data)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("two renders of the same bundle differ")
	}
}

func TestRenderLunchRegion(t *testing.T) {
	l := newTestLayout(t)
	lunch, ok := l.Region(RegionLunch)
	if !ok {
		t.Fatal("lunch region missing")
	}

	school, err := l.Render(NewProvider().DashboardData(monday))
	if err != nil {
		t.Fatal(err)
	}
	if !regionHasColor(school, lunch, Red) {
		t.Error("school day: lunch region has no red menu text")
	}

	weekend, err := l.Render(NewProvider().DashboardData(saturday))
	if err != nil {
		t.Fatal(err)
	}
	if regionHasColor(weekend, lunch, Red) {
		t.Error("weekend: lunch region should not contain red")
	}
	if !regionHasColor(weekend, lunch, Gray) {
		t.Error("weekend: lunch region missing the gray weekend note")
	}
}

func TestRenderWeekendSchedule(t *testing.T) {
	l := newTestLayout(t)
	img, err := l.Render(NewProvider().DashboardData(saturday))
	if err != nil {
		t.Fatal(err)
	}
	schedule, _ := l.Region(RegionSchedule)
	if !regionHasColor(img, schedule, Black) {
		t.Error("weekend schedule region has no text")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	l := newTestLayout(t, WithOutputDir(dir))
	img, err := l.Render(NewProvider().DashboardData(monday))
	if err != nil {
		t.Fatal(err)
	}

	path, err := l.Save(img, "dashboard.png")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("path=%s, want under %s", path, dir)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode saved PNG: %v", err)
	}
	if got := decoded.Bounds(); got.Dx() != DisplayWidth || got.Dy() != DisplayHeight {
		t.Fatalf("decoded bounds=%v", got)
	}
}

func TestSaveBadOutputDir(t *testing.T) {
	// A regular file where the output directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := newTestLayout(t, WithOutputDir(blocker))
	img, err := l.Render(NewProvider().DashboardData(monday))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.Save(img, "dashboard.png"); err == nil {
		t.Fatal("expected error saving into a file path")
	}
}

func TestSaveNilImage(t *testing.T) {
	l := newTestLayout(t)
	if _, err := l.Save(nil, "x.png"); err != ErrNilImage {
		t.Fatalf("err=%v, want ErrNilImage", err)
	}
	if err := l.EncodePNG(os.Stdout, nil); err != ErrNilImage {
		t.Fatalf("err=%v, want ErrNilImage", err)
	}
}

func TestRegionsDoNotOverlap(t *testing.T) {
	l := newTestLayout(t)
	names := []string{
		RegionHeader, RegionWeather, RegionGraph, RegionLunch,
		RegionAnnouncements, RegionSchedule, RegionFooter,
	}
	for i, a := range names {
		ra, ok := l.Region(a)
		if !ok {
			t.Fatalf("region %s missing", a)
		}
		if ra.Min.X < 0 || ra.Min.Y < 0 || ra.Max.X > DisplayWidth || ra.Max.Y > DisplayHeight {
			t.Errorf("region %s out of canvas: %v", a, ra)
		}
		for _, b := range names[i+1:] {
			rb, _ := l.Region(b)
			if ra.Overlaps(rb) {
				t.Errorf("regions %s and %s overlap: %v vs %v", a, b, ra, rb)
			}
		}
	}
}
