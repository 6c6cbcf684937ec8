package engine_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/birthday-board/internal/config"
	"github.com/tartampluch/birthday-board/internal/engine"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

// TestHTTPImageFetcher_Success verifies a complete photo download and
// decode, including the User-Agent header.
func TestHTTPImageFetcher_Success(t *testing.T) {
	body := pngBytes(t, 20, 30)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, config.UserAgent, r.Header.Get(config.HeaderUserAgent), "User-Agent mismatch")
		w.Header().Set(config.HeaderContentType, config.MimePNG)
		_, _ = w.Write(body)
	}))
	defer ts.Close()

	fetcher := engine.NewHTTPImageFetcher()
	img, err := fetcher.Fetch(context.Background(), ts.URL)

	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())
}

// TestHTTPImageFetcher_Errors verifies non-200 statuses, undecodable
// bodies and bad schemes all surface as errors for the caller to
// degrade on.
func TestHTTPImageFetcher_Errors(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer ts.Close()

		fetcher := engine.NewHTTPImageFetcher()
		_, err := fetcher.Fetch(context.Background(), ts.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("NotAnImage", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not a photo</html>"))
		}))
		defer ts.Close()

		fetcher := engine.NewHTTPImageFetcher()
		_, err := fetcher.Fetch(context.Background(), ts.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), config.ErrPhotoDecode)
	})

	t.Run("BadScheme", func(t *testing.T) {
		fetcher := engine.NewHTTPImageFetcher()
		_, err := fetcher.Fetch(context.Background(), "ftp://example.com/a.png")
		require.Error(t, err)
		assert.Contains(t, err.Error(), config.ErrProtocol)
	})
}

// TestHTTPImageFetcher_ContextCancelled aborts the request.
func TestHTTPImageFetcher_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := engine.NewHTTPImageFetcher()
	_, err := fetcher.Fetch(ctx, ts.URL)
	require.Error(t, err)
}
