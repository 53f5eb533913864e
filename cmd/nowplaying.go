package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// nowPlayingCmd represents the now-playing command
var nowPlayingCmd = &cobra.Command{
	Use:   "now-playing",
	Short: "Show the currently playing track",
	RunE:  runNowPlaying,
}

func init() {
	rootCmd.AddCommand(nowPlayingCmd)
}

func runNowPlaying(cmd *cobra.Command, args []string) error {
	np, err := client.GetNowPlaying(cmd.Context(), stationID)
	if err != nil {
		return fmt.Errorf("failed to fetch now playing: %w", err)
	}

	title, _ := np["title"].(string)
	if title == "" {
		fmt.Println("Nothing playing.")
		return nil
	}

	artist, _ := np["artist"].(string)
	if artist == "" {
		artist = "Unknown"
	}
	fmt.Printf("%s by %s\n", title, artist)
	return nil
}
