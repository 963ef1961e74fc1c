package commands

import (
	"errors"

	"github.com/msuss/atelier/internal/printer"
	"github.com/msuss/atelier/internal/service"
)

// artistError prints err with a hint for the common cases.
func artistError(artist string, err error) error {
	switch {
	case errors.Is(err, service.ErrArtistNotFound):
		return printer.Error(
			"Artist not found",
			"No artist named "+artist+" in "+atelier.Roster.Dir()+".",
			[]string{"Run 'artist list' to see existing artists", "Run 'artist create " + artist + "' if a template exists"},
		)
	case errors.Is(err, service.ErrUnknownSkill):
		return printer.Error("Unknown skill", err.Error(), []string{"Use --skill text or --skill svg"})
	case errors.Is(err, service.ErrNotEnoughArtists):
		return printer.Error("Not enough artists", "An exchange needs at least two artists.", []string{"Run 'artist create all'"})
	default:
		return printer.Error("Command failed", err.Error(), nil)
	}
}
