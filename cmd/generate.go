package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bumpwise/bumpquiz/internal/profile"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Pre-generate the flashcard deck for a week",
	Long:  "Generates and stores a week's flashcard deck ahead of time, so browsing it later starts instantly. Quiz questions are always generated fresh when a session starts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		svcs, err := buildServices(ctx, cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()

		userID := currentUser(cmd)
		prof, err := svcs.profiles.Get(ctx, userID)
		if err != nil {
			var noProfile *profile.ErrNoProfile
			if errors.As(err, &noProfile) {
				return fmt.Errorf("no profile for %q yet.\n\nRun: bumpquiz profile set --name <name> --due-date YYYY-MM-DD", userID)
			}
			return fmt.Errorf("load profile: %w", err)
		}

		weekFlag, _ := cmd.Flags().GetInt("week")
		week := prof.Week(weekFlag, time.Now().UTC())

		fmt.Printf("Generating week %d flashcards for %s...\n", week, prof.Name)

		deck, err := svcs.flashcards.GetOrGenerate(ctx, userID, weekFlag)
		if err != nil {
			return fmt.Errorf("generate flashcards: %w", err)
		}

		fmt.Printf("Week %d deck ready: %d cards.\n", deck.Week, len(deck.Cards))
		return nil
	},
}

func init() {
	generateCmd.Flags().Int("week", 0, "Pregnancy week to generate for (default: derived from due date)")
}
