package internal

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/rm-hull/logo-tools/internal/png"
)

// DefaultAssetRoot is used when neither --public nor ASSET_ROOT is given.
const DefaultAssetRoot = "./public"

type AssetStore struct {
	Root string
}

func NewAssetStore(root string) (*AssetStore, error) {
	if root == "" {
		root = DefaultAssetRoot
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("invalid asset root %q: %w", root, err)
	}
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("invalid asset root %q: not a directory", root)
	}
	return &AssetStore{Root: abs}, nil
}

// Path resolves name against the asset root; absolute names are returned as is.
func (s *AssetStore) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.Root, name)
}

func (s *AssetStore) Load(name string) (*png.PngImage, error) {
	return png.Open(s.Path(name))
}

func (s *AssetStore) Save(name string, img *png.PngImage) (string, error) {
	path := s.Path(name)
	if err := img.Save(path); err != nil {
		return "", err
	}
	log.Printf("Saved %s Size: %dx%d", path, img.Width(), img.Height())
	return path, nil
}
