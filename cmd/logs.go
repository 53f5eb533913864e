package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grimnir-radio/grimnir-go/grimnir"
)

var (
	logLevel     string
	logComponent string
	logSearch    string
	logLimit     int
	systemLogs   bool
)

// logsCmd represents the logs command
var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show station or system logs",
	Long: `Show log entries for a station, or platform-wide logs with --system
(platform admin only). Server-side filters cover level, component and
message search; --filter narrows rows further client-side.`,
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.Flags().StringVar(&logLevel, "level", "", "filter by level (debug, info, warn, error)")
	logsCmd.Flags().StringVar(&logComponent, "component", "", "filter by component")
	logsCmd.Flags().StringVar(&logSearch, "search", "", "search in messages")
	logsCmd.Flags().IntVar(&logLimit, "limit", 500, "max entries")
	logsCmd.Flags().BoolVar(&systemLogs, "system", false, "fetch platform-wide logs")
	logsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
}

func runLogs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	query := grimnir.LogQuery{
		Level:     logLevel,
		Component: logComponent,
		Search:    logSearch,
		Limit:     logLimit,
	}

	var resp map[string]any
	var err error
	if systemLogs {
		resp, err = client.GetSystemLogs(ctx, query)
	} else {
		if err := requireStation(); err != nil {
			return err
		}
		resp, err = client.GetStationLogs(ctx, stationID, query)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch logs: %w", err)
	}

	entries := logEntries(resp)
	entries, err = applyRowFilter(entries)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No log entries found.")
		return nil
	}

	for _, entry := range entries {
		fmt.Printf("%v\t%v\t%v\t%v\n", entry["timestamp"], entry["level"], entry["component"], entry["message"])
	}
	return nil
}

// logEntries unwraps the entries list from a log response.
func logEntries(resp map[string]any) []map[string]any {
	items, ok := resp["entries"].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if entry, ok := item.(map[string]any); ok {
			out = append(out, entry)
		}
	}
	return out
}
