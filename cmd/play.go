package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bumpwise/bumpquiz/internal/app"
	"github.com/bumpwise/bumpquiz/internal/profile"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the interactive app",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func init() {
	playCmd.Flags().String("difficulty", "medium", "Quiz difficulty: easy, medium, or hard")
	playCmd.SetContext(context.Background())
}

func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svcs, err := buildServices(ctx, cmd)
	if err != nil {
		return err
	}
	defer svcs.Close()

	userID := currentUser(cmd)
	needsProfile := false
	if _, err := svcs.profiles.Get(ctx, userID); err != nil {
		var noProfile *profile.ErrNoProfile
		if !errors.As(err, &noProfile) {
			return fmt.Errorf("load profile: %w", err)
		}
		needsProfile = true
	}

	difficulty, _ := cmd.Flags().GetString("difficulty")
	if difficulty == "" {
		difficulty = "medium"
	}

	return app.Run(app.Options{
		UserID:       userID,
		Difficulty:   difficulty,
		Quiz:         svcs.quiz,
		Flashcards:   svcs.flashcards,
		Limits:       svcs.limits,
		Streaks:      svcs.streaks,
		Profiles:     svcs.profiles,
		Events:       svcs.events,
		NeedsProfile: needsProfile,
	})
}
