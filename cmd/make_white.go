package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/rm-hull/logo-tools/internal"
	"github.com/rm-hull/logo-tools/internal/models/assets"
)

// MakeWhite writes a white variant of each pair. A failing pair is reported
// and the remaining pairs are still attempted.
func MakeWhite(store *internal.AssetStore, pairs []assets.Pair, opts internal.WhitenOptions) error {
	var errs []error
	for _, pair := range pairs {
		if err := makeWhite(store, pair, opts); err != nil {
			log.Printf("Error processing %s: %v", store.Path(pair.Input), err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func makeWhite(store *internal.AssetStore, pair assets.Pair, opts internal.WhitenOptions) error {
	img, err := store.Load(pair.Input)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", pair.Input, err)
	}

	if err := internal.Whiten(img, opts); err != nil {
		return fmt.Errorf("failed to recolor %s: %w", pair.Input, err)
	}

	_, err = store.Save(pair.Output, img)
	return err
}
