package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhitchenor/hungerford-holdings/internal/catalog"
	"github.com/jhitchenor/hungerford-holdings/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [group]",
		Short: "List quests, optionally for one group",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			cat := eng.Catalog()
			now := time.Now()

			groups := cat.Groups()
			if len(args) == 1 {
				want := strings.ToLower(strings.TrimSpace(args[0]))
				if len(cat.ByGroup(want)) == 0 {
					return fmt.Errorf("unknown group %q (have: %s)", args[0], strings.Join(groups, ", "))
				}
				groups = []string{want}
			}

			for _, g := range groups {
				fmt.Fprintln(out, ui.H2.Render(strings.ToUpper(g)))
				for _, q := range cat.ByGroup(g) {
					fmt.Fprintf(out, "%s %s %-24s %-34s %s %s\n",
						ui.DoneMark(eng.IsDone(q.ID, now)),
						ui.UrgentMark(q.Urgent),
						ui.Key.Render(q.ID),
						q.Name,
						rewardColumn(q),
						ui.Muted.Render(string(q.Recurrence)),
					)
					if q.Advisor != "" {
						fmt.Fprintf(out, "      %s\n", ui.Dim.Render(q.Advisor+": "+q.Message))
					}
				}
				fmt.Fprintln(out, "")
			}
			return nil
		},
	}
	return cmd
}

func rewardColumn(q catalog.QuestDefinition) string {
	if q.Score != nil {
		return ui.Muted.Render(fmt.Sprintf("%s %d+max(0,%d-score)", ui.IconGolf, q.Score.BaseXP, q.Score.Cap))
	}
	label := fmt.Sprintf("+%d XP", q.RewardXP)
	if q.RewardRP > 0 {
		label += fmt.Sprintf(" +%d RP", q.RewardRP)
	}
	return ui.Muted.Render(label)
}
