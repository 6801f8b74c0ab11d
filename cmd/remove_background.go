package cmd

import (
	"fmt"
	"log"

	"github.com/rm-hull/logo-tools/internal"
)

func RemoveBackground(store *internal.AssetStore, input, output string, opts internal.NormalizeOptions) error {
	log.Printf("Processing %s...", store.Path(input))

	img, err := store.Load(input)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", input, err)
	}

	if err := internal.Normalize(img, opts); err != nil {
		return fmt.Errorf("failed to remove background from %s: %w", input, err)
	}

	if _, err := store.Save(output, img); err != nil {
		return err
	}
	return nil
}
