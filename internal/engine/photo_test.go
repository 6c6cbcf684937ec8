package engine

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tartampluch/birthday-board/internal/config"
)

// TestResolvePhoto_RuleChain walks the four resolution rules in order.
func TestResolvePhoto_RuleChain(t *testing.T) {
	existing := map[string]bool{
		filepath.Join("photos", "ada.png"):  true,
		filepath.Join("photos", "user.png"): true,
	}
	cfg := PhotoConfig{
		FallbackDir: "photos",
		Exists:      func(p string) bool { return existing[p] },
	}

	tests := []struct {
		name     string
		photo    string
		cfg      PhotoConfig
		wantKind PhotoKind
		wantRef  string
	}{
		{
			name:     "Empty name is unresolved",
			photo:    "",
			cfg:      cfg,
			wantKind: PhotoUnresolved,
		},
		{
			name:     "Whitespace-only name is unresolved",
			photo:    "   ",
			cfg:      cfg,
			wantKind: PhotoUnresolved,
		},
		{
			name:     "Absolute URL passes through verbatim",
			photo:    "https://cdn.example.com/ada.png",
			cfg:      PhotoConfig{BaseURL: "https://other.example.com"},
			wantKind: PhotoRemote,
			wantRef:  "https://cdn.example.com/ada.png",
		},
		{
			name:     "Base URL join normalizes slashes",
			photo:    "/ada.png",
			cfg:      PhotoConfig{BaseURL: "https://cdn.example.com/photos///"},
			wantKind: PhotoRemote,
			wantRef:  "https://cdn.example.com/photos/ada.png",
		},
		{
			name:     "Base URL wins even over an existing local file",
			photo:    "ada.png",
			cfg:      PhotoConfig{BaseURL: "https://cdn.example.com", FallbackDir: "photos", Exists: func(string) bool { return true }},
			wantKind: PhotoRemote,
			wantRef:  "https://cdn.example.com/ada.png",
		},
		{
			name:     "Local fallback when file exists",
			photo:    "ada.png",
			cfg:      cfg,
			wantKind: PhotoLocal,
			wantRef:  filepath.Join("photos", "ada.png"),
		},
		{
			name:     "Unresolved when file missing",
			photo:    "ghost.png",
			cfg:      cfg,
			wantKind: PhotoUnresolved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := ResolvePhoto(tt.photo, tt.cfg)
			assert.Equal(t, tt.wantKind, src.Kind)
			if tt.wantRef != "" {
				assert.Equal(t, tt.wantRef, src.Ref)
			}
		})
	}
}

// TestResolvePhoto_Purity: identical inputs always yield identical
// results, with no hidden state between calls.
func TestResolvePhoto_Purity(t *testing.T) {
	cfg := PhotoConfig{BaseURL: "https://cdn.example.com"}

	first := ResolvePhoto("ada.png", cfg)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ResolvePhoto("ada.png", cfg))
	}
}

// TestResolveWithFallback exercises the user.png retry.
func TestResolveWithFallback(t *testing.T) {
	t.Run("FallbackResolvesLocally", func(t *testing.T) {
		fallbackPath := filepath.Join("photos", config.FallbackPhotoName)
		cfg := PhotoConfig{
			FallbackDir: "photos",
			Exists:      func(p string) bool { return p == fallbackPath },
		}

		src := ResolveWithFallback("", cfg)
		assert.Equal(t, PhotoLocal, src.Kind)
		assert.Equal(t, fallbackPath, src.Ref)
	})

	t.Run("FallbackGoesThroughBaseURL", func(t *testing.T) {
		cfg := PhotoConfig{BaseURL: "https://cdn.example.com"}

		src := ResolveWithFallback("   ", cfg)
		assert.Equal(t, PhotoRemote, src.Kind)
		assert.Equal(t, "https://cdn.example.com/"+config.FallbackPhotoName, src.Ref)
	})

	t.Run("DoubleFailureStaysUnresolved", func(t *testing.T) {
		cfg := PhotoConfig{
			FallbackDir: "photos",
			Exists:      func(string) bool { return false },
		}

		assert.True(t, ResolveWithFallback("ghost.png", cfg).Unresolved())
	})

	t.Run("OwnPhotoWinsOverFallback", func(t *testing.T) {
		cfg := PhotoConfig{
			FallbackDir: "photos",
			Exists:      func(string) bool { return true },
		}

		src := ResolveWithFallback("ada.png", cfg)
		assert.Equal(t, filepath.Join("photos", "ada.png"), src.Ref)
	})
}

// TestIsAbsoluteURL covers scheme detection corner cases.
func TestIsAbsoluteURL(t *testing.T) {
	assert.True(t, isAbsoluteURL("http://example.com/a.png"))
	assert.True(t, isAbsoluteURL("HTTPS://EXAMPLE.COM/A.PNG"))
	assert.False(t, isAbsoluteURL("ftp://example.com/a.png"))
	assert.False(t, isAbsoluteURL("example.com/a.png"))
	assert.False(t, isAbsoluteURL("httpsfile.png"))
}
