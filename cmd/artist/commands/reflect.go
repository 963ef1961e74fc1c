package commands

import (
	"github.com/msuss/atelier/internal/printer"
	"github.com/spf13/cobra"
)

var reflectMemories int

var reflectCmd = &cobra.Command{
	Use:   "reflect <artist>",
	Short: "Show an artist's current state of mind",
	Args:  cobra.ExactArgs(1),
	RunE:  runReflect,
}

func init() {
	reflectCmd.Flags().IntVar(&reflectMemories, "memories", 5, "Number of recent memories to show")
	rootCmd.AddCommand(reflectCmd)
}

func runReflect(cmd *cobra.Command, args []string) error {
	profile, err := atelier.Artists.Get(args[0])
	if err != nil {
		return artistError(args[0], err)
	}

	printer.Header(profile.Personality.Name)
	printer.Println(profile.Reflection)
	printer.Println()
	printer.Personality(profile.Personality)
	printer.Printf("  goal       %s\n", profile.Goal)

	if reflectMemories <= 0 {
		return nil
	}
	items, err := atelier.Artists.Memory(profile.ID, reflectMemories)
	if err != nil {
		return artistError(args[0], err)
	}
	if len(items) > 0 {
		printer.Println()
		printer.Println("Recent memories:")
		for _, it := range items {
			printer.Printf("  - [%s] %s\n", it.Type, it.Text)
		}
	}
	return nil
}
