package cmd

import (
	"errors"
	"fmt"
	"time"

	"imgbase/feature/activity"

	"github.com/spf13/cobra"
)

// activityCmd represents the activity command
var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show recent upload and delete operations",
	Long:  `Prints the activity log, newest first. Requires a configured database.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		if a.db == nil {
			return errors.New("activity log requires a database (set DATABASE_DRIVER)")
		}

		repo := activity.NewRepository(a.db, a.logger)
		if err := repo.Migrate(); err != nil {
			return err
		}

		entries, err := repo.Recent(cmd.Context(), limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, e := range entries {
			fmt.Fprintf(out, "%s  %-6s  %-7s  %s", e.CreatedAt.Format(time.RFC3339), e.Operation, e.Outcome, e.Object)
			if e.Message != "" {
				fmt.Fprintf(out, "  (%s)", e.Message)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	activityCmd.Flags().Int("limit", activity.DefaultLimit, "Maximum number of records")
	RootCmd.AddCommand(activityCmd)
}
