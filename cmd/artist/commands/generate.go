package commands

import (
	"context"
	"fmt"

	"github.com/msuss/atelier/internal/printer"
	"github.com/spf13/cobra"
)

var (
	generateSkill  string
	generateCycles int
)

var generateCmd = &cobra.Command{
	Use:   "generate <artist>",
	Short: "Run creative cycles for an artist",
	Long: `Run one or more creative cycles. Each cycle the artist creates a work with
the chosen skill, critiques it, remembers both and lets the critique shift
its personality.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateSkill, "skill", "text", "Skill to use: text or svg")
	generateCmd.Flags().IntVar(&generateCycles, "cycles", 1, "Number of creative cycles to run")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateCycles < 1 {
		return printer.Error("Invalid --cycles", fmt.Sprintf("--cycles must be at least 1, got %d.", generateCycles), nil)
	}
	ctx := context.Background()
	artist := args[0]

	for i := 1; i <= generateCycles; i++ {
		printer.Step("cycle %d/%d: %s creates with %s\n", i, generateCycles, artist, generateSkill)

		res, err := atelier.Studio.Generate(ctx, artist, generateSkill)
		if err != nil {
			return artistError(artist, err)
		}

		printer.Println(res.Artwork.Content)
		printer.Printf("self-critique %.2f: %s\n", res.SelfCritique.Score, res.SelfCritique.Critique)
		printer.Printf("mood now %s, confidence %.2f\n\n", printer.Mood(res.Mood), res.Personality.Confidence)
	}

	printer.Success("%s finished %d cycle(s)\n", artist, generateCycles)
	return nil
}
