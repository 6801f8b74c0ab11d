package cmd

import (
	"fmt"
	"log"

	"github.com/rm-hull/logo-tools/internal"
	"github.com/rm-hull/logo-tools/internal/png"
)

// Split cuts the composite at srcPath into an icon (top half) and a logo
// (bottom half), trims both and saves them into the asset store.
func Split(store *internal.AssetStore, srcPath, iconName, logoName string, opts internal.SplitOptions) error {
	img, err := png.Open(srcPath)
	if err != nil {
		return err
	}

	icon, logo, err := internal.SplitAndTrim(img, opts)
	if err != nil {
		return fmt.Errorf("failed to split %s: %w", srcPath, err)
	}

	iconPath, err := store.Save(iconName, icon)
	if err != nil {
		return err
	}
	logoPath, err := store.Save(logoName, logo)
	if err != nil {
		return err
	}

	log.Printf("Saved to %s and %s", iconPath, logoPath)
	return nil
}
