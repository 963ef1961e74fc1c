package commands

import (
	"context"

	"github.com/msuss/atelier/internal/printer"
	"github.com/spf13/cobra"
)

var exchangeCount int

var exchangeCmd = &cobra.Command{
	Use:   "exchange",
	Short: "Have the artists critique each other",
	Long: `Run one critique exchange round. By default every artist critiques
exactly one other in a shuffled circle. With -n, that many random pairs are
drawn instead.

Prints each pair and the final state of every artist.`,
	Args: cobra.NoArgs,
	RunE: runExchange,
}

func init() {
	exchangeCmd.Flags().IntVarP(&exchangeCount, "count", "n", 0, "Number of random critiques (0 pairs every artist in a circle)")
	rootCmd.AddCommand(exchangeCmd)
}

func runExchange(cmd *cobra.Command, args []string) error {
	report, err := atelier.Exchange.RunRound(context.Background(), exchangeCount)
	if err != nil {
		return artistError("", err)
	}

	printer.Header("Critique exchange")
	for _, p := range report.Pairs {
		switch {
		case p.Error != "":
			printer.Warning("%s -> %s failed: %s\n", p.Critic, p.Subject, p.Error)
		case p.Skipped || p.Result == nil:
			printer.Info("%s -> %s skipped, nothing to critique yet\n", p.Critic, p.Subject)
		default:
			printer.Step("%s critiques %s #%d: score %.2f\n", p.Critic, p.Subject, p.CreationIndex, p.Result.Score)
			printer.Println("  " + p.Result.Critique)
		}
	}

	printer.Header("Final states")
	ids, err := atelier.Artists.List()
	if err != nil {
		return artistError("", err)
	}
	for _, id := range ids {
		profile, err := atelier.Artists.Get(id)
		if err != nil {
			printer.Warning("%s: %v\n", id, err)
			continue
		}
		printer.Personality(profile.Personality)
	}
	return nil
}
