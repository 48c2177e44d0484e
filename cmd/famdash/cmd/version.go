package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "0.1.0" // set at build time with -ldflags

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the famdash version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("famdash v%s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
