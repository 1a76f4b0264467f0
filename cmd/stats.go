package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bumpwise/bumpquiz/internal/limits"
	"github.com/bumpwise/bumpquiz/internal/profile"
	"github.com/bumpwise/bumpquiz/internal/streaks"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your points, streak, badges, and generation stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		userID := currentUser(cmd)

		limSvc := limits.NewService(st.LimitsRepo(), limits.Config{
			MaxSessionsPerDay: cfg.Limits.MaxSessionsPerDay,
			FlipPointCeiling:  cfg.Limits.FlipPointCeiling,
			PointsPerFlip:     cfg.Limits.PointsPerFlip,
			PointsPerQuestion: cfg.Limits.PointsPerQuestion,
		})

		ledger, err := limSvc.Current(ctx, userID)
		if err != nil {
			return fmt.Errorf("load points ledger: %w", err)
		}

		streak, err := st.StreakRepo().Get(ctx, userID)
		if err != nil {
			return fmt.Errorf("load streak: %w", err)
		}

		completed, err := st.SessionRepo().CountCompleted(ctx, userID)
		if err != nil {
			return fmt.Errorf("count sessions: %w", err)
		}

		badges, err := st.EventRepo().BadgeCodes(ctx, userID)
		if err != nil {
			return fmt.Errorf("load badges: %w", err)
		}

		genTotal, genSuccess, err := st.EventRepo().GenerationCounts(ctx, userID)
		if err != nil {
			return fmt.Errorf("load generation counts: %w", err)
		}

		if p, err := st.ProfileRepo().Get(ctx, userID); err == nil && p != nil {
			week := profile.WeekFromDueDate(p.DueDate, time.Now().UTC())
			fmt.Printf("%s, week %d\n\n", p.Name, week)
		}

		fmt.Printf("Points:             %d total, %d today\n", ledger.PointsTotal, ledger.PointsToday)
		fmt.Printf("Sessions:           %d completed, %d started today (cap %d)\n",
			completed, ledger.SessionsToday, cfg.Limits.MaxSessionsPerDay)
		fmt.Printf("Card flips today:   %d\n", ledger.FlipsToday)

		if streak != nil {
			fmt.Printf("Streak:             %d days (longest %d)\n", streak.Current, streak.Longest)
		} else {
			fmt.Printf("Streak:             0 days\n")
		}

		var earned []string
		for _, b := range streaks.AllBadges() {
			if badges[string(b)] {
				earned = append(earned, b.Icon()+" "+b.DisplayName())
			}
		}
		if len(earned) > 0 {
			fmt.Printf("Badges:             %s\n", strings.Join(earned, ", "))
		}

		if genTotal > 0 {
			fmt.Printf("Generation runs:    %d (%d succeeded)\n", genTotal, genSuccess)
		}
		return nil
	},
}
