package root

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <quest-id> <score>",
		Short: "Commit a score-based quest (XP = base + max(0, cap - score))",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("quest-id and score are required")
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return errors.New("score must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			score, _ := strconv.Atoi(args[1])

			eng, cleanup, err := openEngine(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := eng.CommitScored(ctx, args[0], score, time.Now())
			if err != nil {
				return renderCommitError(cmd, args[0], err)
			}
			renderCommit(cmd, args[0], res)
			return nil
		},
	}
	return cmd
}
