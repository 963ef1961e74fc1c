package commands

import (
	"github.com/msuss/atelier/internal/printer"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the templates artists can be created from",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := atelier.Artists.Templates()
		if err != nil {
			return printer.Error("Failed to list templates", err.Error(), nil)
		}
		for _, n := range names {
			printer.Println(n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
