package main

import (
	"log"
	"os"

	"github.com/earthboundkid/versioninfo/v2"
	"github.com/joho/godotenv"
	"github.com/rm-hull/logo-tools/cmd"
	"github.com/rm-hull/logo-tools/internal"
	"github.com/rm-hull/logo-tools/internal/models/assets"
	"github.com/spf13/cobra"
)

func main() {
	var assetRoot string
	var debug bool
	var store *internal.AssetStore

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	defaultRoot := os.Getenv("ASSET_ROOT")
	if defaultRoot == "" {
		defaultRoot = internal.DefaultAssetRoot
	}

	rootCmd := &cobra.Command{
		Use:          "logo-tools",
		Long:         `Logo and icon post-processing: background removal, white variants and composite splitting`,
		Version:      versioninfo.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var err error
			if store, err = internal.NewAssetStore(assetRoot); err != nil {
				return err
			}
			if debug {
				internal.ShowVersion()
				internal.UserInfo(store.Root)
				internal.EnvironmentVars()
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&assetRoot, "public", defaultRoot, "Path to asset folder (env ASSET_ROOT)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log version, user and environment before running")

	var input, output string
	normalizeOpts := internal.DefaultNormalizeOptions()
	removeBgCmd := &cobra.Command{
		Use:   "remove-bg [--in <file>] [--out <file>] [--threshold <n>] [--dark-cutoff <n>]",
		Short: "Make the background transparent and trim to the visible content",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.RemoveBackground(store, input, output, normalizeOpts)
		},
	}
	removeBgCmd.Flags().StringVar(&input, "in", assets.LogoFull, "Source image, relative to the asset folder")
	removeBgCmd.Flags().StringVar(&output, "out", assets.LogoWhite, "Destination image, relative to the asset folder")
	removeBgCmd.Flags().IntVar(&normalizeOpts.Threshold, "threshold", normalizeOpts.Threshold, "Maximum Manhattan distance from the corner colour counted as background")
	removeBgCmd.Flags().IntVar(&normalizeOpts.DarkCutoff, "dark-cutoff", normalizeOpts.DarkCutoff, "Pixels with R, G and B all below this are background")
	removeBgCmd.Flags().BoolVar(&normalizeOpts.RecolorToWhite, "white", false, "Recolour the foreground to white, keeping its alpha")
	removeBgCmd.Flags().Float64Var(&normalizeOpts.Feather, "feather", 0, "Gaussian blur sigma applied to the cut-out edges")
	removeBgCmd.Flags().IntVar(&normalizeOpts.Width, "width", 0, "Shrink to fit this width (0 = unconstrained)")
	removeBgCmd.Flags().IntVar(&normalizeOpts.Height, "height", 0, "Shrink to fit this height (0 = unconstrained)")

	var whitenOpts internal.WhitenOptions
	makeWhiteCmd := &cobra.Command{
		Use:   "make-white [--luminance]",
		Short: "Write white variants of the logo and icon",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.MakeWhite(store, assets.WhitePairs, whitenOpts)
		},
	}
	makeWhiteCmd.Flags().BoolVar(&whitenOpts.Luminance, "luminance", false, "Derive alpha from source brightness")
	makeWhiteCmd.Flags().IntVar(&whitenOpts.Width, "width", 0, "Shrink to fit this width (0 = unconstrained)")
	makeWhiteCmd.Flags().IntVar(&whitenOpts.Height, "height", 0, "Shrink to fit this height (0 = unconstrained)")

	splitOpts := internal.DefaultSplitOptions()
	splitCmd := &cobra.Command{
		Use:   "split <composite.png> [--scale <n>] [--offset <n>]",
		Short: "Split a composite into icon (top half) and logo (bottom half)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return cmd.Split(store, args[0], assets.Icon, assets.LogoFull, splitOpts)
		},
	}
	splitCmd.Flags().Float64Var(&splitOpts.Scale, "scale", splitOpts.Scale, "Divisor applied to the doubled corner difference")
	splitCmd.Flags().Float64Var(&splitOpts.Offset, "offset", splitOpts.Offset, "Bias added to the scaled corner difference")

	rootCmd.AddCommand(removeBgCmd, makeWhiteCmd, splitCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
