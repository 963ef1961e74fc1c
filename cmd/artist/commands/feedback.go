package commands

import (
	"context"

	"github.com/msuss/atelier/internal/printer"
	"github.com/spf13/cobra"
)

var (
	feedbackLiked bool
	feedbackNotes string
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback <artist>",
	Short: "Give an artist audience feedback",
	Long: `Tell an artist whether you liked its work. Praise lifts its mood and
reinforces what it is exploring; rejection stings, more so for sensitive
artists.`,
	Args: cobra.ExactArgs(1),
	RunE: runFeedback,
}

func init() {
	feedbackCmd.Flags().BoolVar(&feedbackLiked, "liked", false, "Whether the work was liked")
	feedbackCmd.Flags().StringVar(&feedbackNotes, "notes", "", "Free-form notes for the artist")
	rootCmd.AddCommand(feedbackCmd)
}

func runFeedback(cmd *cobra.Command, args []string) error {
	res, err := atelier.Studio.Feedback(context.Background(), args[0], feedbackLiked, feedbackNotes)
	if err != nil {
		return artistError(args[0], err)
	}

	verdict := "disliked"
	if res.Liked {
		verdict = "liked"
	}
	printer.Success("%s heard that you %s the work\n", res.Artist, verdict)
	printer.Println(res.Reflection)
	return nil
}
