package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/tartampluch/birthday-board/internal/config"
)

// Sink accepts raw image bytes and returns an externally-accessible URL
// string, opaque to the engine. A sink failure after a successful
// render is a distinct error: the bytes were produced, only publishing
// failed, so callers retry at the sink layer rather than re-rendering.
type Sink interface {
	Store(ctx context.Context, data []byte) (string, error)
}

// DiskSink writes boards under a local directory that the HTTP server
// exposes as static files.
type DiskSink struct {
	Dir           string
	PublicBaseURL string
}

// NewDiskSink creates the sink, ensuring the output directory exists.
func NewDiskSink(dir, publicBaseURL string) (*DiskSink, error) {
	if err := os.MkdirAll(dir, config.DirPermDefault); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSinkStore, err)
	}
	return &DiskSink{Dir: dir, PublicBaseURL: publicBaseURL}, nil
}

// Store persists one rendered board under a fresh random name and
// returns its public URL. Boards are never overwritten across runs.
func (s *DiskSink) Store(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := fmt.Sprintf(config.FormatBoardObject, uuid.NewString())
	path := filepath.Join(s.Dir, name)

	if err := os.WriteFile(path, data, config.FilePermDefault); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrSinkStore, err)
	}

	url := strings.TrimRight(s.PublicBaseURL, "/") + "/" + name

	slog.Info(config.MsgBoardStored,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, path,
		config.LogKeySizeBytes, len(data),
		config.LogKeyURL, url,
	)
	return url, nil
}
