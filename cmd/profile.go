package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bumpwise/bumpquiz/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update your profile",
	Example: `  bumpquiz profile set --name Maya --due-date 2027-01-15
  bumpquiz profile set --interests nutrition,sleep,exercise`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		resolver := profile.NewResolver(st.ProfileRepo())
		userID := currentUser(cmd)

		p, err := resolver.Get(ctx, userID)
		if err != nil {
			var noProfile *profile.ErrNoProfile
			if !errors.As(err, &noProfile) {
				return fmt.Errorf("load profile: %w", err)
			}
			p = profile.Profile{UserID: userID}
		}

		if name, _ := cmd.Flags().GetString("name"); name != "" {
			p.Name = name
		}
		if due, _ := cmd.Flags().GetString("due-date"); due != "" {
			t, err := time.Parse("2006-01-02", due)
			if err != nil {
				return fmt.Errorf("invalid due date %q: use YYYY-MM-DD", due)
			}
			p.DueDate = t
		}
		if raw, _ := cmd.Flags().GetString("interests"); raw != "" {
			var interests []string
			for _, it := range strings.Split(raw, ",") {
				if it = strings.TrimSpace(it); it != "" {
					interests = append(interests, it)
				}
			}
			p.Interests = interests
		}

		if p.Name == "" {
			return fmt.Errorf("profile needs a name: pass --name")
		}
		if p.DueDate.IsZero() {
			return fmt.Errorf("profile needs a due date: pass --due-date YYYY-MM-DD")
		}

		if err := resolver.Save(ctx, p); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}

		week := profile.WeekFromDueDate(p.DueDate, time.Now().UTC())
		fmt.Printf("Profile saved. Hi %s, you're in week %d!\n", p.Name, week)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		resolver := profile.NewResolver(st.ProfileRepo())
		userID := currentUser(cmd)

		p, err := resolver.Get(ctx, userID)
		if err != nil {
			var noProfile *profile.ErrNoProfile
			if errors.As(err, &noProfile) {
				fmt.Println("No profile yet. Run: bumpquiz profile set --name <name> --due-date YYYY-MM-DD")
				return nil
			}
			return fmt.Errorf("load profile: %w", err)
		}

		fmt.Printf("Name:      %s\n", p.Name)
		fmt.Printf("Due date:  %s\n", p.DueDate.Format("2006-01-02"))
		fmt.Printf("Week:      %d\n", profile.WeekFromDueDate(p.DueDate, time.Now().UTC()))
		if len(p.Interests) > 0 {
			fmt.Printf("Interests: %s\n", strings.Join(p.Interests, ", "))
		}
		return nil
	},
}

func init() {
	profileSetCmd.Flags().String("name", "", "Your name")
	profileSetCmd.Flags().String("due-date", "", "Due date as YYYY-MM-DD")
	profileSetCmd.Flags().String("interests", "", "Comma-separated topics you care about")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
}
