package commands

import (
	"context"
	"errors"

	"github.com/msuss/atelier/internal/printer"
	"github.com/msuss/atelier/internal/service"
	"github.com/spf13/cobra"
)

// stockArtists are created by "create all" or "create" with no arguments.
var stockArtists = []string{"aria", "riot", "nova"}

var createCmd = &cobra.Command{
	Use:   "create [aria|riot|nova|all|<template>...]",
	Short: "Bring artists to life from templates",
	Long: `Create one artist per named template. "all" (or no argument) creates the
three stock artists. Custom templates are read from the templates directory.

An artist that already exists is left untouched.`,
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	names := expandCreateArgs(args)
	created := 0
	for _, name := range names {
		id, err := atelier.Artists.Create(ctx, name)
		switch {
		case errors.Is(err, service.ErrArtistExists):
			printer.Warning("%s already exists, skipping\n", name)
		case errors.Is(err, service.ErrTemplateNotFound):
			return printer.Error(
				"Template not found",
				"No built-in or custom template is named "+name+".",
				[]string{"Run 'artist templates' to see what is available"},
			)
		case err != nil:
			return printer.Error("Failed to create "+name, err.Error(), nil)
		default:
			created++
			printer.Success("Created %s\n", id)
		}
	}

	printer.Info("%d of %d artists created in %s\n", created, len(names), atelier.Roster.Dir())
	return nil
}

func expandCreateArgs(args []string) []string {
	if len(args) == 0 {
		return stockArtists
	}
	var names []string
	for _, a := range args {
		if a == "all" {
			names = append(names, stockArtists...)
			continue
		}
		names = append(names, a)
	}
	return names
}
