package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/disintegration/imaging"

	"github.com/tartampluch/birthday-board/internal/config"
)

// Entry is one celebrant as the compositor sees it: already named,
// with the photo either decoded or absent. A nil Photo renders the
// slot without one; it is a modeled outcome, not an error.
type Entry struct {
	Name  string
	Day   int
	Photo image.Image
}

var (
	badgeFillColor = color.NRGBA{R: 0xe8, G: 0x4f, B: 0x5f, A: 0xff}
	badgeTextColor = color.White
	dayTextColor   = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	nameTextColor  = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
)

// Compositor draws the weekly board onto a Surface. It owns no canvas
// state of its own; every call renders from scratch.
type Compositor struct {
	Assets *Assets
}

// NewCompositor wraps an asset bundle.
func NewCompositor(a *Assets) *Compositor {
	return &Compositor{Assets: a}
}

// Render draws the full board: background, rotated date badge, then
// one photo/bubble/name cluster per entry in slot order. Entries with
// a nil photo still get their bubble and name.
func (c *Compositor) Render(s Surface, start, end time.Time, entries []Entry) error {
	if !c.Assets.Complete() {
		return errors.New(config.ErrAssetLoad)
	}

	w, h := s.Size()

	// Full-bleed background.
	bg := imaging.Resize(c.Assets.Background, w, h, imaging.Lanczos)
	s.DrawImage(bg, 0, 0)

	c.drawBadge(s, start, end)

	slots := Layout(len(entries), float64(w))
	bubble := imaging.Resize(c.Assets.Bubble, config.BubbleSize, config.BubbleSize, imaging.Lanczos)

	for i, e := range entries {
		slot := slots[i]

		if e.Photo != nil {
			s.DrawImageInCircle(e.Photo, slot.X, slot.Y, config.PhotoRadius)
		}

		// Day bubble overlays the top of the circle.
		bubbleY := slot.Y - config.PhotoRadius
		s.DrawImageAnchored(bubble, int(slot.X), int(bubbleY), 0.5, 0.5)
		s.SetFontFace(c.Assets.Faces.Day)
		s.DrawStringAnchored(fmt.Sprintf(config.FormatDayBubble, e.Day),
			slot.X, bubbleY, 0.5, 0.5, dayTextColor)

		s.SetFontFace(c.Assets.Faces.Name)
		s.DrawStringAnchored(e.Name,
			slot.X, slot.Y+config.PhotoRadius+config.NameOffsetY, 0.5, 0.5, nameTextColor)
	}

	return nil
}

// drawBadge renders the rotated date-range ribbon. The badge width
// follows the measured text width plus fixed padding.
func (c *Compositor) drawBadge(s Surface, start, end time.Time) {
	text := fmt.Sprintf(config.FormatBadgeText,
		start.Month().String(), start.Day(),
		end.Month().String(), end.Day(),
	)

	s.SetFontFace(c.Assets.Faces.Badge)
	tw, th := s.MeasureString(text)
	bw := tw + config.BadgePaddingX
	bh := th + config.BadgePaddingY

	cx, cy := float64(config.BadgeCenterX), float64(config.BadgeCenterY)
	s.Rotated(config.BadgeAngleDegrees, cx, cy, func() {
		s.FillRoundedRect(cx-bw/2, cy-bh/2, bw, bh, config.BadgeCornerRadius, badgeFillColor)
		s.DrawStringAnchored(text, cx, cy, 0.5, 0.5, badgeTextColor)
	})
}
