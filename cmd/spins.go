package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/grimnir-radio/grimnir-go/filter"
	"github.com/grimnir-radio/grimnir-go/grimnir"
)

var (
	spinsSince string
	spinsLimit int
	filterExpr string
	preset     string
)

// spinsCmd represents the spins command
var spinsCmd = &cobra.Command{
	Use:   "spins",
	Short: "Show track play history",
	Long: `Show the track play history of a station. Rows can be narrowed
client-side with --filter, an expression over the spin's JSON fields:

  grimnirctl spins --station <id> --filter 'artist == "Miles Davis"'
  grimnirctl spins --station <id> --filter 'parseTime(played_at) > daysAgo(7)'`,
	RunE: runSpins,
}

func init() {
	rootCmd.AddCommand(spinsCmd)
	spinsCmd.Flags().StringVar(&spinsSince, "since", "", "start time filter (ISO 8601)")
	spinsCmd.Flags().IntVar(&spinsLimit, "limit", 100, "max results")
	spinsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	spinsCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runSpins(cmd *cobra.Command, args []string) error {
	if err := requireStation(); err != nil {
		return err
	}

	query := grimnir.SpinQuery{Limit: spinsLimit}
	if spinsSince != "" {
		since, err := time.Parse(time.RFC3339, spinsSince)
		if err != nil {
			return fmt.Errorf("invalid --since value %q: %w", spinsSince, err)
		}
		query.Since = since
	}

	spins, err := client.GetSpins(cmd.Context(), stationID, query)
	if err != nil {
		return fmt.Errorf("failed to fetch spins: %w", err)
	}

	spins, err = applyRowFilter(spins)
	if err != nil {
		return err
	}

	if len(spins) == 0 {
		fmt.Println("No spins found.")
		return nil
	}

	for _, spin := range spins {
		fmt.Printf("%v\t%v - %v\n", spin["played_at"], spin["artist"], spin["title"])
	}
	return nil
}

// applyRowFilter narrows rows with --filter or a named --preset from
// the config file.
func applyRowFilter(rows []map[string]any) ([]map[string]any, error) {
	expression := filterExpr
	if preset != "" {
		if expression != "" {
			return nil, fmt.Errorf("--filter and --preset are mutually exclusive")
		}
		var ok bool
		expression, ok = cfg.Filters[preset]
		if !ok {
			return nil, fmt.Errorf("preset %q not found in config", preset)
		}
	}
	if expression == "" {
		return rows, nil
	}

	f, err := filter.Compile(expression)
	if err != nil {
		return nil, err
	}
	return f.Apply(rows)
}
