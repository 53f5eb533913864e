package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload an audio file to the media library",
	Args:  cobra.ExactArgs(1),
	RunE:  runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if err := requireStation(); err != nil {
		return err
	}

	media, err := client.UploadMediaFile(cmd.Context(), stationID, args[0])
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", args[0], err)
	}

	logger.Info().
		Interface("id", media["id"]).
		Interface("title", media["title"]).
		Msg("Uploaded media")

	return printJSON(media)
}
