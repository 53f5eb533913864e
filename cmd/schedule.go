package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grimnir-radio/grimnir-go/grimnir"
)

var (
	scheduleHours int
	exportStart   string
	exportEnd     string
)

// scheduleCmd represents the schedule command
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show upcoming schedule entries",
	RunE:  runSchedule,
}

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the schedule as iCal to stdout",
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(exportCmd)

	scheduleCmd.Flags().IntVar(&scheduleHours, "hours", 24, "hours ahead to fetch")
	exportCmd.Flags().StringVar(&exportStart, "start", "", "start date (ISO 8601)")
	exportCmd.Flags().StringVar(&exportEnd, "end", "", "end date (ISO 8601)")
}

func runSchedule(cmd *cobra.Command, args []string) error {
	if err := requireStation(); err != nil {
		return err
	}

	entries, err := client.GetSchedule(cmd.Context(), stationID, scheduleHours)
	if err != nil {
		return fmt.Errorf("failed to fetch schedule: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("Nothing scheduled.")
		return nil
	}

	for _, entry := range entries {
		fmt.Printf("%v\t%v\n", entry["start_time"], entry["title"])
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := requireStation(); err != nil {
		return err
	}

	ical, err := client.ExportScheduleICal(cmd.Context(), stationID, grimnir.DateRange{
		Start: exportStart,
		End:   exportEnd,
	})
	if err != nil {
		return fmt.Errorf("failed to export schedule: %w", err)
	}

	fmt.Print(ical)
	return nil
}
