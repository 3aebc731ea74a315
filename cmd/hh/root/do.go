package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhitchenor/hungerford-holdings/internal/engine"
	"github.com/jhitchenor/hungerford-holdings/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <quest-id>",
		Short: "Commit a quest completion",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest-id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := eng.Commit(ctx, args[0], time.Now())
			if err != nil {
				return renderCommitError(cmd, args[0], err)
			}
			renderCommit(cmd, args[0], res)
			return nil
		},
	}
	return cmd
}

func renderCommit(cmd *cobra.Command, id string, res *engine.CommitResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s: +%d XP", ui.Good.Render(ui.IconDone+" Committed"), ui.Key.Render(id), res.XPAwarded)
	if res.RPAwarded > 0 {
		fmt.Fprintf(out, " +%d RP", res.RPAwarded)
	}
	if res.CreditsAwarded > 0 {
		fmt.Fprintf(out, " +%d credits", res.CreditsAwarded)
	}
	fmt.Fprintln(out)

	if res.LevelUp {
		fmt.Fprintf(out, "%s %s level %d → %d\n", ui.BadgeLevelUp, ui.IconTrophy, res.LevelBefore, res.LevelAfter)
	}
	st := res.State
	fmt.Fprintf(out, "%s level %d (%s) · %d XP · %d RP · %d credits\n",
		ui.Muted.Render("now:"), st.Level, ui.Gold.Render(st.Rank), st.TotalXP, st.TotalRP, st.Credits)

	if res.SnapshotStale {
		fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" snapshot cache not updated; it will heal on next load"))
	}
}

// renderCommitError maps the error taxonomy to user-visible behavior:
// "already done" is a friendly no-op, a persistence failure is an
// explicit NOT SAVED warning, everything else is a hard error.
func renderCommitError(cmd *cobra.Command, id string, err error) error {
	var already engine.AlreadyCompletedError
	if errors.As(err, &already) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s is already done\n", ui.Muted.Render(ui.IconDone), ui.Key.Render(id))
		return nil
	}
	var pe engine.PersistenceError
	if errors.As(err, &pe) {
		return fmt.Errorf("%s %w", ui.BadgeUnsaved, err)
	}
	return err
}
