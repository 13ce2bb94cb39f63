package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"imgbase/core/storage"
	"imgbase/core/utils"
	"imgbase/feature/upload"

	"github.com/spf13/cobra"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload an image to the bucket",
	Long:  `Reads a local file, uploads it and prints its public URL.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		mimeType, _ := cmd.Flags().GetString("mime")

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		mimeType = utils.MimeType(args[0], storage.DefaultMimeType, mimeType)
		svc := upload.NewService(a.store, a.recorder(), a.logger)

		receipt, err := svc.Upload(cmd.Context(), data, mimeType, name, filepath.Base(args[0]))
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), receipt.URL)
		return nil
	},
}

func init() {
	uploadCmd.Flags().String("name", "", "Object name (defaults to the file name)")
	uploadCmd.Flags().String("mime", "", "Content type (defaults to the file extension, else image/jpeg)")
	RootCmd.AddCommand(uploadCmd)
}
