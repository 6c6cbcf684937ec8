package render

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"

	"github.com/tartampluch/birthday-board/internal/config"
)

// Faces holds the text faces used on the board. All board text uses the
// bold weight of one family, at three sizes.
type Faces struct {
	Badge font.Face
	Name  font.Face
	Day   font.Face

	// Degraded is set when the configured font files could not be
	// loaded and the Go font substitute is in use. Never fatal.
	Degraded bool
}

var (
	substituteOnce sync.Once
	substituteFont *opentype.Font
)

// LoadFaces loads the bold face from the asset directory at the sizes
// the compositor needs. Failures fall back to the embedded Go bold
// face; font registration problems never fail a render.
func LoadFaces(dir string) *Faces {
	path := filepath.Join(dir, config.AssetFontBold)

	faces := &Faces{}
	sizes := []struct {
		size float64
		dst  *font.Face
	}{
		{config.FontSizeBadge, &faces.Badge},
		{config.FontSizeName, &faces.Name},
		{config.FontSizeDay, &faces.Day},
	}

	for _, s := range sizes {
		face, err := gg.LoadFontFace(path, s.size)
		if err != nil {
			faces.Degraded = true
			face = substituteFace(s.size)
		}
		*s.dst = face
	}

	if faces.Degraded {
		slog.Warn(config.MsgFontFallback,
			config.LogKeyComponent, config.CompRender,
			config.LogKeyFile, path,
		)
	}
	return faces
}

// substituteFace returns a face from the embedded Go bold font. The
// font parses once; faces are cheap per size.
func substituteFace(size float64) font.Face {
	substituteOnce.Do(func() {
		f, err := opentype.Parse(gobold.TTF)
		if err != nil {
			// gobold.TTF is embedded and known-good; this cannot happen
			// outside a corrupted build.
			panic(err)
		}
		substituteFont = f
	})

	face, err := opentype.NewFace(substituteFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic(err)
	}
	return face
}
