package engine

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/disintegration/imaging"

	"github.com/tartampluch/birthday-board/internal/config"
	"github.com/tartampluch/birthday-board/internal/render"
	"github.com/tartampluch/birthday-board/internal/roster"
)

// BoardRequest carries everything one render needs. Photo resolution
// settings travel with the request; the engine reads no ambient
// configuration.
type BoardRequest struct {
	// Day and Month pick the reference date; both zero means "now".
	Day   int
	Month int

	Roster []roster.Employee
	Photos PhotoConfig
}

// PhotoSkip records one celebrant whose photo was left off the board.
// Skips degrade the image, never the request.
type PhotoSkip struct {
	Name   string
	Reason string
}

// Board is the rendered result, exclusively owned by the caller. The
// engine retains no reference after returning it.
type Board struct {
	PNG        []byte
	Window     Window
	Celebrants int
	Skipped    []PhotoSkip
}

// Generator runs the full pipeline: window, selection, photo
// resolution, layout, composition. One render is processed to
// completion sequentially; all drawing mutates a single surface and
// must apply in z-order.
type Generator struct {
	Clock   Clock
	Fetcher ImageFetcher
	Assets  *render.Assets

	// NewSurface overrides surface construction in tests. Nil means the
	// production gg-backed surface.
	NewSurface func(w, h int) render.Surface
}

// GenerateBoard renders the weekly board. It fails before producing any
// bytes on a bad reference date (ErrInvalidDate) or missing mandatory
// assets (ErrAsset); individual photo failures degrade the image and
// are reported in Board.Skipped.
func (g *Generator) GenerateBoard(ctx context.Context, req BoardRequest) (*Board, error) {
	started := time.Now()
	log := slog.With(config.LogKeyComponent, config.CompEngine)

	window, err := NewWindow(g.Clock.Now(), req.Day, req.Month)
	if err != nil {
		return nil, err
	}

	if !g.Assets.Complete() {
		return nil, fmt.Errorf("%w: %s", ErrAsset, config.ErrAssetLoad)
	}

	log.Info(config.MsgRenderStarted,
		config.LogKeyWindow, window.Start.Format(config.DateFormatResponse),
		config.LogKeyTotal, len(req.Roster),
	)

	celebrants := SelectCelebrants(req.Roster, window)

	entries := make([]render.Entry, 0, len(celebrants))
	var skipped []PhotoSkip
	for _, c := range celebrants {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		img, reason := g.loadPhoto(ctx, c.PhotoName, req.Photos)
		if img == nil {
			skipped = append(skipped, PhotoSkip{Name: c.FullName(), Reason: reason})
			log.Warn(config.MsgPhotoSkipped,
				config.LogKeyName, c.FullName(),
				config.LogKeyReason, reason,
			)
		}
		entries = append(entries, render.Entry{
			Name:  c.FullName(),
			Day:   c.BirthDay,
			Photo: img,
		})
	}

	newSurface := g.NewSurface
	if newSurface == nil {
		newSurface = render.NewSurface
	}
	surface := newSurface(config.CanvasWidth, config.CanvasHeight)

	comp := render.NewCompositor(g.Assets)
	if err := comp.Render(surface, window.Start, window.End(), entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAsset, err)
	}

	png, err := surface.EncodePNG()
	if err != nil {
		return nil, err
	}

	log.Info(config.MsgRenderDone,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, len(req.Roster)),
			slog.Int(config.LogKeyFound, len(celebrants)),
			slog.Int(config.LogKeySkipped, len(skipped)),
		),
		config.LogKeyDuration, time.Since(started).Milliseconds(),
	)

	return &Board{
		PNG:        png,
		Window:     window,
		Celebrants: len(celebrants),
		Skipped:    skipped,
	}, nil
}

// loadPhoto resolves and decodes one celebrant photo. A nil image with
// a reason means the slot renders without a photo.
func (g *Generator) loadPhoto(ctx context.Context, name string, cfg PhotoConfig) (image.Image, string) {
	src := ResolveWithFallback(name, cfg)
	if src.Unresolved() {
		return nil, "no photo source resolved"
	}

	switch src.Kind {
	case PhotoRemote:
		if g.Fetcher == nil {
			return nil, "no photo fetcher configured"
		}
		img, err := g.Fetcher.Fetch(ctx, src.Ref)
		if err != nil {
			return nil, err.Error()
		}
		return img, ""
	case PhotoLocal:
		img, err := imaging.Open(src.Ref)
		if err != nil {
			return nil, err.Error()
		}
		return img, ""
	default:
		return nil, "no photo source resolved"
	}
}
