package root

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhitchenor/hungerford-holdings/internal/engine"
	"github.com/jhitchenor/hungerford-holdings/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show progression, metrics and today's standing",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			st := eng.CurrentState()
			nextReq := engine.XPRequiredForLevel(st.Level)
			toNext := nextReq - st.TotalXP
			if toNext < 0 {
				toNext = 0
			}

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Boardroom Status"))
			if eng.ReadOnly() {
				fmt.Fprintln(out, ui.Bad.Render("read-only session: store unavailable"))
			}
			fmt.Fprintln(out, ui.LabelValue("Rank", ui.Gold.Render(st.Rank)))
			fmt.Fprintln(out, ui.LabelValue("Level", st.Level))
			fmt.Fprintln(out, ui.LabelValue("Total XP", fmt.Sprintf("%d (next at %d, %d to go)", st.TotalXP, nextReq, toNext)))
			fmt.Fprintln(out, ui.LabelValue("Total RP", st.TotalRP))
			fmt.Fprintln(out, ui.LabelValue("Credits", st.Credits))
			fmt.Fprintln(out, "")

			m := eng.Metrics()
			fmt.Fprintln(out, ui.H2.Render(ui.IconChart+" Manual metrics"))
			fmt.Fprintf(out, "- %s %d days\n", ui.Key.Render("Streak:"), m.Streak)
			fmt.Fprintf(out, "- %s %d\n", ui.Key.Render("Golf best:"), m.GolfBest)
			if len(m.Balances) > 0 {
				keys := make([]string, 0, len(m.Balances))
				for k := range m.Balances {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Fprintf(out, "- %s %d\n", ui.Key.Render(k+":"), m.Balances[k])
				}
			}
			fmt.Fprintln(out, "")

			now := time.Now()
			open, done := 0, 0
			for _, q := range eng.Catalog().All() {
				if eng.IsDone(q.ID, now) {
					done++
				} else {
					open++
				}
			}
			fmt.Fprintln(out, ui.H2.Render(ui.IconQuest+" Today"))
			fmt.Fprintf(out, "- %s %d done, %d open\n", ui.Key.Render("Quests:"), done, open)
			fmt.Fprintf(out, "- %s %d events in the ledger\n", ui.Key.Render("History:"), len(eng.Events()))

			return nil
		},
	}
	return cmd
}
