package cmd

import (
	"fmt"

	"imgbase/feature/gallery"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <name> [name...]",
	Short: "Delete images from the bucket",
	Long:  `Deletes every named object in a single request.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		n, err := gallery.NewService(a.store, a.recorder(), a.logger).Delete(cmd.Context(), args)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), gallery.DeletedMessage(n))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deleteCmd)
}
