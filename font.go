package famdash

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontSet holds the faces used by the layout, one per text role. The Go
// fonts are embedded in the binary, so there are no font files to locate.
type fontSet struct {
	Title     font.Face // 72pt bold, header date
	Header    font.Face // 48pt bold, section titles
	Subheader font.Face // 36pt regular, weather block
	Body      font.Face // 28pt regular, schedule and menus
	Small     font.Face // 20pt regular, footer and graph labels
}

func loadFonts() (*fontSet, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("famdash: parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("famdash: parse bold font: %w", err)
	}

	fs := &fontSet{}
	for _, fc := range []struct {
		dst  *font.Face
		src  *opentype.Font
		size float64
	}{
		{&fs.Title, bold, 72},
		{&fs.Header, bold, 48},
		{&fs.Subheader, regular, 36},
		{&fs.Body, regular, 28},
		{&fs.Small, regular, 20},
	} {
		face, err := opentype.NewFace(fc.src, &opentype.FaceOptions{
			Size:    fc.size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("famdash: build %vpt face: %w", fc.size, err)
		}
		*fc.dst = face
	}
	return fs, nil
}
