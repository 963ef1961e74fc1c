package commands

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/msuss/atelier/internal/printer"
	"github.com/msuss/atelier/internal/service"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every artist with its mood",
	Long: `List every artist in the artists directory.

For each artist, displays:
  • Id
  • Dominant mood
  • Confidence
  • Number of creations

Use --json for machine-readable output.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ids, err := atelier.Artists.List()
	if err != nil {
		return printer.Error("Failed to list artists", err.Error(), nil)
	}

	profiles := make([]*service.Profile, 0, len(ids))
	for _, id := range ids {
		p, err := atelier.Artists.Get(id)
		if err != nil {
			printer.Warning("%s: %v\n", id, err)
			continue
		}
		profiles = append(profiles, p)
	}

	if listJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(profiles)
	}

	if len(profiles) == 0 {
		printer.Info("No artists yet. Run 'artist create' to make some.\n")
		return nil
	}

	printer.Printf("%-12s %-12s %-10s %s\n", "ARTIST", "MOOD", "CONFIDENCE", "CREATIONS")
	for _, p := range profiles {
		// pad outside the color codes so columns line up
		pad := strings.Repeat(" ", max(0, 12-len(p.Mood)))
		printer.Printf("%-12s %s%s %-10.2f %d\n", p.ID, printer.Mood(p.Mood), pad, p.Personality.Confidence, p.Creations)
	}
	return nil
}
