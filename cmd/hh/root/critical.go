package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhitchenor/hungerford-holdings/internal/config"
	"github.com/jhitchenor/hungerford-holdings/internal/ui"
)

func newCriticalCmd() *cobra.Command {
	var minXP int

	cmd := &cobra.Command{
		Use:   "critical",
		Short: "Surface urgent and high-value quests across all groups",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// Flag beats env; an unset flag takes HH_CRITICAL_XP.
			if !cmd.Flags().Changed("min-xp") {
				cfg, err := config.FromEnv()
				if err != nil {
					return err
				}
				minXP = cfg.CriticalXP
			}

			out := cmd.OutOrStdout()
			now := time.Now()
			crit := eng.SelectCritical(minXP)
			if len(crit) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing critical. Enjoy it."))
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconSiren, "Critical Path"))
			for _, q := range crit {
				fmt.Fprintf(out, "%s %s %-24s %-34s %s\n",
					ui.DoneMark(eng.IsDone(q.ID, now)),
					ui.UrgentMark(q.Urgent),
					ui.Key.Render(q.ID),
					q.Name,
					rewardColumn(q),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&minXP, "min-xp", 75, "reward threshold for inclusion (urgent quests always qualify)")
	return cmd
}
