package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhitchenor/hungerford-holdings/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "hh",
	Short:         "Hungerford Holdings — personal progression ledger",
	Long:          "Hungerford Holdings turns real-world quests into XP, research points, credits and rank, backed by an append-only completion ledger.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newDoCmd(),
		newScoreCmd(),
		newStatusCmd(),
		newListCmd(),
		newCriticalCmd(),
		newLogCmd(),
		newMetricCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
