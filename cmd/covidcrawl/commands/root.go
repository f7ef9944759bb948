package commands

import (
	"context"
	"fmt"
	"os"

	"covidcrawl/lib/telemetry"

	"github.com/spf13/cobra"
)

var verbose *bool

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging.")
}

var rootCmd = &cobra.Command{
	Use:   "covidcrawl",
	Short: "covidcrawl cross-references pandemic and population tables into per-country summaries.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
	},
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
