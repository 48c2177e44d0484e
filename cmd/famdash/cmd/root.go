package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "famdash",
	Short: "Render a family dashboard image for four-color e-ink panels",
	Long: `famdash renders a static 1600x1200 PNG summarizing the household's day
(date, weather, schedule, lunch menu, reminders) for a Spectra E6 e-ink panel.

Available commands:
  render     Generate the dashboard image for a date
  analyze    Report the palette color distribution of an image

Use "famdash [command] --help" for more information about a specific command.`,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
