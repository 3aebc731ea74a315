package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jhitchenor/hungerford-holdings/internal/ui"
)

func newMetricCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metric",
		Short: "View or set manual metrics (streak, golf best, balances)",
	}
	cmd.AddCommand(newMetricSetCmd())
	return cmd
}

func newMetricSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <name> <value>",
		Short: "Set a manual metric",
		Long:  "Set a manual metric. Names: streak, golf-best, or any balance name (e.g. chase). Manual metrics are snapshot state, never derived from the ledger.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("name and value are required")
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return errors.New("value must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			name := args[0]
			value, _ := strconv.Atoi(args[1])

			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			m := eng.Metrics()
			switch name {
			case "streak":
				m.Streak = value
			case "golf-best":
				m.GolfBest = value
			default:
				if m.Balances == nil {
					m.Balances = map[string]int{}
				}
				m.Balances[name] = value
			}

			if err := eng.SetMetrics(ctx, m); err != nil {
				return fmt.Errorf("%s %w", ui.BadgeUnsaved, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %d\n", ui.Good.Render(ui.IconDone+" Saved"), ui.Key.Render(name), value)
			return nil
		},
	}
	return cmd
}
