package cmd

import (
	"fmt"

	"imgbase/feature/gallery"

	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the images in the bucket",
	Long:  `Prints the first 100 objects of the bucket, one per line, with their public URLs.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		items, err := gallery.NewService(a.store, nil, a.logger).List(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(items) == 0 {
			fmt.Fprintln(out, gallery.EmptyMessage)
			return nil
		}
		for _, item := range items {
			fmt.Fprintf(out, "%s\t%s\n", item.Name, item.URL)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(listCmd)
}
