package engine

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/disintegration/imaging"
	"github.com/tartampluch/birthday-board/internal/config"
)

// ImageFetcher retrieves and decodes a remote photo. The interface
// exists so renders can be tested without a network.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) (image.Image, error)
}

// HTTPImageFetcher implements ImageFetcher over net/http, decoding with
// the imaging package so any common format serves as a photo.
type HTTPImageFetcher struct {
	Client *http.Client
}

// NewHTTPImageFetcher creates a fetcher with the standard timeout.
func NewHTTPImageFetcher() *HTTPImageFetcher {
	return &HTTPImageFetcher{
		Client: &http.Client{
			Timeout: config.HTTPTimeout,
		},
	}
}

// Fetch downloads and decodes one photo. The response size is capped;
// a non-200 status or undecodable body is an error the caller degrades
// on, never a fatal render failure.
func (f *HTTPImageFetcher) Fetch(ctx context.Context, targetURL string) (image.Image, error) {
	u, err := url.Parse(targetURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrInvalidURL, err)
	}
	if u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS {
		return nil, fmt.Errorf("%s: %s", config.ErrProtocol, u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(config.HeaderUserAgent, config.UserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error during fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("Photo server returned error status",
			config.LogKeyComponent, config.CompFetcher,
			config.LogKeyStatus, resp.StatusCode,
		)
		return nil, fmt.Errorf("server returned unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	img, err := imaging.Decode(io.LimitReader(resp.Body, config.MaxHTTPResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrPhotoDecode, err)
	}
	return img, nil
}
