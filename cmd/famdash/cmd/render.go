package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/famdash/famdash"
)

var (
	renderDate         string
	renderOut          string
	renderOutputDir    string
	renderLocation     string
	renderDitherType   string
	renderDitherKernel string
	renderBorders      bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Generate the dashboard image for a date",
	Long: `Render assembles the data bundle for the given date (today if omitted)
and writes the dashboard PNG into the output directory.

Flag values take precedence over FAMDASH_* environment variables, which in
turn take precedence over built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := famdash.LoadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("output-dir") {
			cfg.OutputDir = renderOutputDir
		}
		if cmd.Flags().Changed("location") {
			cfg.Location = renderLocation
		}
		if cmd.Flags().Changed("dither-type") {
			if cfg.DitherType, err = famdash.ParseDitherType(renderDitherType); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("dither-kernel") {
			if cfg.DitherKernel, err = famdash.ParseDitherKernel(renderDitherKernel); err != nil {
				return err
			}
		}

		date := time.Now()
		if renderDate != "" {
			if date, err = time.Parse("2006-01-02", renderDate); err != nil {
				return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", renderDate)
			}
		}

		provider := famdash.NewProvider(famdash.WithLocation(cfg.Location))
		data := provider.DashboardData(date)

		ditherer := famdash.NewDitherer(famdash.Palette4)
		ditherer.Type = cfg.DitherType
		ditherer.Kernel = cfg.DitherKernel

		layout, err := famdash.NewLayout(
			famdash.WithOutputDir(cfg.OutputDir),
			famdash.WithDitherer(ditherer),
			famdash.WithRegionBorders(renderBorders),
		)
		if err != nil {
			return err
		}

		img, err := layout.Render(data)
		if err != nil {
			return err
		}

		filename := renderOut
		if filename == "" {
			filename = fmt.Sprintf("dashboard_%s.png", date.Format("20060102"))
		}
		path, err := layout.Save(img, filename)
		if err != nil {
			// Disk/path failures are fatal; there is no retry layer.
			log.Fatalf("famdash: write dashboard: %v", err)
		}

		schoolDay := "No (Weekend)"
		if data.IsSchoolDay {
			schoolDay = "Yes"
		}
		fmt.Println("Dashboard generated successfully!")
		fmt.Printf("Output: %s\n", path)
		fmt.Printf("Date: %s\n", data.DateText)
		fmt.Printf("School day: %s\n", schoolDay)
		fmt.Printf("Display dimensions: %dx%d\n", famdash.DisplayWidth, famdash.DisplayHeight)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderDate, "date", "", "date to render (YYYY-MM-DD, default today)")
	renderCmd.Flags().StringVar(&renderOut, "out", "", "output filename (default dashboard_YYYYMMDD.png)")
	renderCmd.Flags().StringVar(&renderOutputDir, "output-dir", "output", "directory for generated images")
	renderCmd.Flags().StringVar(&renderLocation, "location", "Home", "location name shown in the weather box")
	renderCmd.Flags().StringVar(&renderDitherType, "dither-type", "", "palette pass: NONE|DIFFUSION|ORDERED")
	renderCmd.Flags().StringVar(&renderDitherKernel, "dither-kernel", "", "diffusion kernel: FLOYD_STEINBERG|ATKINSON|BURKES|SIERRA2|STUCKI|JARVIS_JUDICE_NINKE|THRESHOLD")
	renderCmd.Flags().BoolVar(&renderBorders, "borders", true, "draw thin gray region borders")
	rootCmd.AddCommand(renderCmd)
}
