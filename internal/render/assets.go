package render

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/tartampluch/birthday-board/internal/config"
)

// Assets bundles the mandatory board images and the text faces.
// Background and Bubble are asset preconditions: a render without them
// is refused outright. Fonts degrade to a substitute instead.
type Assets struct {
	Background image.Image
	Bubble     image.Image
	Faces      *Faces
}

// Complete reports whether the mandatory images are present.
func (a *Assets) Complete() bool {
	return a != nil && a.Background != nil && a.Bubble != nil
}

// LoadAssets reads the asset bundle from a directory. A missing
// background or bubble image is an error; missing fonts are not.
func LoadAssets(dir string) (*Assets, error) {
	background, err := imaging.Open(filepath.Join(dir, config.AssetBackground))
	if err != nil {
		return nil, fmt.Errorf("%s (%s): %w", config.ErrAssetLoad, config.AssetBackground, err)
	}

	bubble, err := imaging.Open(filepath.Join(dir, config.AssetBubble))
	if err != nil {
		return nil, fmt.Errorf("%s (%s): %w", config.ErrAssetLoad, config.AssetBubble, err)
	}

	return &Assets{
		Background: background,
		Bubble:     bubble,
		Faces:      LoadFaces(dir),
	}, nil
}
