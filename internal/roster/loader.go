package roster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tartampluch/birthday-board/internal/config"
)

// Source describes where the roster text comes from.
type Source struct {
	Mode  string // config.SourceModeWeb, SourceModeLocal or SourceModeInline
	Value string // URL, file path, or literal CSV text depending on Mode
	User  string // HTTP Basic Auth (web mode only)
	Pass  string
}

// Loader acquires and parses a roster. The roster is re-read on every
// call: no parsed rows are cached across requests.
type Loader struct {
	Fetcher Fetcher
}

// NewLoader creates a Loader backed by the given fetcher. The fetcher
// may be nil when only local or inline sources are used.
func NewLoader(f Fetcher) *Loader {
	return &Loader{Fetcher: f}
}

// Load acquires the roster stream for the source and parses it. Format
// selection is by extension: .vcf/.vcard sources are decoded as vCards,
// everything else as CSV.
func (l *Loader) Load(ctx context.Context, src Source) ([]Employee, error) {
	reader, err := l.acquireStream(ctx, src)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%s: %w", config.ErrRosterLoad, err)
	}
	defer func() { _ = reader.Close() }()

	var employees []Employee
	if isVCardSource(src) {
		employees, err = ParseVCards(reader)
	} else {
		employees, err = ParseCSV(reader)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrRosterParse, err)
	}
	return employees, nil
}

// acquireStream opens the appropriate data source based on the mode.
func (l *Loader) acquireStream(ctx context.Context, src Source) (io.ReadCloser, error) {
	if src.Value == "" {
		return nil, errors.New(config.ErrRosterSourceEmpty)
	}
	switch src.Mode {
	case config.SourceModeLocal:
		return os.Open(src.Value)
	case config.SourceModeWeb:
		if l.Fetcher == nil {
			return nil, errors.New("internal error: roster fetcher is not initialized")
		}
		return l.Fetcher.Fetch(ctx, src.Value, src.User, src.Pass)
	case config.SourceModeInline:
		return io.NopCloser(strings.NewReader(src.Value)), nil
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrModeUnsupport, src.Mode)
	}
}

func isVCardSource(src Source) bool {
	if src.Mode == config.SourceModeInline {
		return false
	}
	ext := strings.ToLower(filepath.Ext(strings.TrimSuffix(src.Value, "/")))
	return ext == config.ExtVCF || ext == config.ExtVCard
}
