package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhitchenor/hungerford-holdings/internal/engine"
	"github.com/jhitchenor/hungerford-holdings/internal/ui"
)

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Print the raw completion ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			events := eng.Events()
			if len(events) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Ledger is empty."))
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconLedger, "Completion Ledger"))
			running := 0
			for _, e := range events {
				running += e.RewardXP
				fmt.Fprintf(out, "%s  %-24s +%3d XP +%3d RP  %s\n",
					ui.Muted.Render(engine.DateKey(e.OccurredOn)),
					ui.Key.Render(e.QuestID),
					e.RewardXP, e.RewardRP,
					ui.Dim.Render(fmt.Sprintf("Σ %d", running)),
				)
			}
			return nil
		},
	}
	return cmd
}
