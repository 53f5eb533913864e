package cmd

import (
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// statusConcurrency bounds the per-station fan-out.
const statusConcurrency = 5

// stationStatus aggregates one station's live state.
type stationStatus struct {
	ID        string
	Name      string
	Title     string
	Artist    string
	Listeners any
}

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show now playing and listener counts across all stations",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	stations, err := client.GetStations(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch stations: %w", err)
	}
	if len(stations) == 0 {
		fmt.Println("No stations found.")
		return nil
	}

	var mu sync.Mutex
	statuses := make([]stationStatus, 0, len(stations))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(statusConcurrency)

	for _, station := range stations {
		station := station
		group.Go(func() error {
			id, _ := station["id"].(string)
			name, _ := station["name"].(string)

			np, err := client.GetNowPlaying(ctx, id)
			if err != nil {
				return fmt.Errorf("now playing for %s: %w", id, err)
			}
			listeners, err := client.GetListeners(ctx, id)
			if err != nil {
				return fmt.Errorf("listeners for %s: %w", id, err)
			}

			status := stationStatus{ID: id, Name: name}
			status.Title, _ = np["title"].(string)
			status.Artist, _ = np["artist"].(string)
			status.Listeners = listeners["total"]

			mu.Lock()
			statuses = append(statuses, status)
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Name < statuses[j].Name })

	for _, s := range statuses {
		playing := "silence"
		if s.Title != "" {
			playing = fmt.Sprintf("%s - %s", s.Artist, s.Title)
		}
		fmt.Printf("%s\t%s\tlisteners: %v\n", s.Name, playing, s.Listeners)
	}
	return nil
}
