package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/tartampluch/birthday-board/internal/config"
)

// Surface is the drawing capability the compositor works against. All
// pixel access goes through it, which keeps the composition logic
// portable across rendering backends and lets tests record draw calls
// instead of comparing pixels.
//
// Operations mutate shared surface state (font, clip) and must be
// applied in z-order; a Surface is not safe for concurrent use.
type Surface interface {
	// Size returns the canvas dimensions in pixels.
	Size() (w, h int)

	// DrawImage draws img with its top-left corner at (x, y).
	DrawImage(img image.Image, x, y int)

	// DrawImageAnchored draws img so the anchor point (ax, ay in 0..1)
	// lands on (x, y).
	DrawImageAnchored(img image.Image, x, y int, ax, ay float64)

	// DrawImageInCircle fills the circle at (cx, cy) with img, cropped
	// and clipped to the circle.
	DrawImageInCircle(img image.Image, cx, cy, r float64)

	// SetFontFace selects the face for subsequent text operations.
	SetFontFace(face font.Face)

	// MeasureString returns the rendered dimensions of s under the
	// current face.
	MeasureString(s string) (w, h float64)

	// DrawStringAnchored draws s so the anchor point lands on (x, y).
	DrawStringAnchored(s string, x, y, ax, ay float64, c color.Color)

	// FillRoundedRect fills a rounded rectangle with top-left (x, y).
	FillRoundedRect(x, y, w, h, r float64, c color.Color)

	// Rotated runs draw with the coordinate system rotated by the given
	// angle (degrees) about (cx, cy), restoring the transform after.
	Rotated(degrees, cx, cy float64, draw func())

	// EncodePNG returns the surface contents as PNG bytes.
	EncodePNG() ([]byte, error)
}

// ggSurface is the production Surface backed by a fogleman/gg context.
type ggSurface struct {
	dc *gg.Context
}

// NewSurface creates a blank drawing surface of the given size.
func NewSurface(w, h int) Surface {
	return &ggSurface{dc: gg.NewContext(w, h)}
}

func (s *ggSurface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

func (s *ggSurface) DrawImage(img image.Image, x, y int) {
	s.dc.DrawImage(img, x, y)
}

func (s *ggSurface) DrawImageAnchored(img image.Image, x, y int, ax, ay float64) {
	s.dc.DrawImageAnchored(img, x, y, ax, ay)
}

func (s *ggSurface) DrawImageInCircle(img image.Image, cx, cy, r float64) {
	d := int(r * 2)
	// Center-crop to a square so faces keep their aspect ratio.
	fitted := imaging.Fill(img, d, d, imaging.Center, imaging.Lanczos)

	s.dc.Push()
	s.dc.DrawCircle(cx, cy, r)
	s.dc.Clip()
	s.dc.DrawImageAnchored(fitted, int(cx), int(cy), 0.5, 0.5)
	s.dc.ResetClip()
	s.dc.Pop()
}

func (s *ggSurface) SetFontFace(face font.Face) {
	s.dc.SetFontFace(face)
}

func (s *ggSurface) MeasureString(str string) (float64, float64) {
	return s.dc.MeasureString(str)
}

func (s *ggSurface) DrawStringAnchored(str string, x, y, ax, ay float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawStringAnchored(str, x, y, ax, ay)
}

func (s *ggSurface) FillRoundedRect(x, y, w, h, r float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawRoundedRectangle(x, y, w, h, r)
	s.dc.Fill()
}

func (s *ggSurface) Rotated(degrees, cx, cy float64, draw func()) {
	s.dc.Push()
	s.dc.RotateAbout(gg.Radians(degrees), cx, cy)
	draw()
	s.dc.Pop()
}

func (s *ggSurface) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrPNGEncode, err)
	}
	return buf.Bytes(), nil
}
