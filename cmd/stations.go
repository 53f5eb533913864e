package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var publicOnly bool

// stationsCmd represents the stations command
var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "List stations",
	Long:  `List all stations the configured credential has access to, or all public stations with --public.`,
	RunE:  runStations,
}

func init() {
	rootCmd.AddCommand(stationsCmd)
	stationsCmd.Flags().BoolVar(&publicOnly, "public", false, "list public stations (no auth required)")
}

func runStations(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var stations []map[string]any
	var err error
	if publicOnly {
		stations, err = client.GetPublicStations(ctx)
	} else {
		stations, err = client.GetStations(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch stations: %w", err)
	}

	if len(stations) == 0 {
		fmt.Println("No stations found.")
		return nil
	}

	for _, station := range stations {
		fmt.Printf("%v\t%v\n", station["id"], station["name"])
	}
	return nil
}
