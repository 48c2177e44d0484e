package cmd

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/famdash/famdash"
)

var analyzeE6 bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <image.png>",
	Short: "Report the palette color distribution of an image",
	Long: `Analyze maps every pixel of a PNG to its nearest palette color and
prints per-color usage. Useful for checking how much of a dashboard (or any
candidate image) each e-ink color will cover after quantization.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		img, err := png.Decode(f)
		if err != nil {
			return fmt.Errorf("decode %s: %w", args[0], err)
		}

		palette := famdash.Palette4
		if analyzeE6 {
			palette = famdash.PaletteE6
		}

		fmt.Printf("Color distribution (%d-color palette):\n", len(palette))
		for _, cc := range famdash.ColorDistribution(img, palette) {
			fmt.Printf("  %-7s %6.1f%%  (%d px)\n", cc.Name+":", cc.Percent, cc.Pixels)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeE6, "e6", false, "use the six-color Spectra E6 palette")
	rootCmd.AddCommand(analyzeCmd)
}
