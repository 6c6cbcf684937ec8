package engine

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tartampluch/birthday-board/internal/config"
)

// PhotoKind tells the loader how to interpret a resolved reference.
type PhotoKind int

const (
	// PhotoUnresolved means no loadable source was found; the caller
	// retries with the fallback name and ultimately renders no photo.
	PhotoUnresolved PhotoKind = iota

	// PhotoRemote references image bytes behind an http(s) URL.
	PhotoRemote

	// PhotoLocal references a file on the local filesystem.
	PhotoLocal
)

// PhotoSource is a resolved reference to image bytes.
type PhotoSource struct {
	Kind PhotoKind
	Ref  string
}

// Unresolved reports whether the source carries no loadable reference.
func (s PhotoSource) Unresolved() bool {
	return s.Kind == PhotoUnresolved
}

// PhotoConfig is passed explicitly into resolution; the resolver does
// no ambient configuration lookups of its own.
type PhotoConfig struct {
	// BaseURL, when set, hosts photos addressed by bare file names.
	BaseURL string

	// FallbackDir is searched for the file when no URL applies.
	FallbackDir string

	// Exists overrides the filesystem existence check in tests.
	// Nil means os.Stat.
	Exists func(path string) bool
}

func (c PhotoConfig) exists(path string) bool {
	if c.Exists != nil {
		return c.Exists(path)
	}
	_, err := os.Stat(path)
	return err == nil
}

// ResolvePhoto maps a raw photo name to a concrete loadable source.
// Resolution is a pure function of its inputs; rules apply in order:
//
//  1. Empty or whitespace-only name: unresolved.
//  2. Absolute http(s) URL: used verbatim.
//  3. Non-empty base URL: joined with a single slash. The result is
//     taken even if unreachable; failures surface at load time.
//  4. Existing file under the fallback dir: local source.
//
// Anything else is unresolved.
func ResolvePhoto(name string, cfg PhotoConfig) PhotoSource {
	name = strings.TrimSpace(name)
	if name == "" {
		return PhotoSource{}
	}

	if isAbsoluteURL(name) {
		return PhotoSource{Kind: PhotoRemote, Ref: name}
	}

	if cfg.BaseURL != "" {
		base := strings.TrimRight(cfg.BaseURL, "/")
		return PhotoSource{Kind: PhotoRemote, Ref: base + "/" + strings.TrimLeft(name, "/")}
	}

	if cfg.FallbackDir != "" {
		path := filepath.Join(cfg.FallbackDir, name)
		if cfg.exists(path) {
			return PhotoSource{Kind: PhotoLocal, Ref: path}
		}
	}

	return PhotoSource{}
}

// ResolveWithFallback applies the rule chain to the employee's own
// photo name, then once more with the shared placeholder name when the
// first pass yields nothing.
func ResolveWithFallback(name string, cfg PhotoConfig) PhotoSource {
	if src := ResolvePhoto(name, cfg); !src.Unresolved() {
		return src
	}
	return ResolvePhoto(config.FallbackPhotoName, cfg)
}

func isAbsoluteURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, config.SchemeHTTP+"://") ||
		strings.HasPrefix(lower, config.SchemeHTTPS+"://")
}
