// Package streaks tracks consecutive active days and awards badges as a
// terminal side effect of session completion.
package streaks

// Badge identifies an achievement.
type Badge string

const (
	BadgeFirstSession Badge = "first-session"
	BadgePerfectScore Badge = "perfect-score"
	BadgeStreak3      Badge = "streak-3"
	BadgeStreak7      Badge = "streak-7"
	BadgeStreak30     Badge = "streak-30"
	BadgeWeekComplete Badge = "week-complete"
)

// AllBadges returns all badges in display order.
func AllBadges() []Badge {
	return []Badge{
		BadgeFirstSession,
		BadgePerfectScore,
		BadgeStreak3,
		BadgeStreak7,
		BadgeStreak30,
		BadgeWeekComplete,
	}
}

// DisplayName returns a human-readable label for the badge.
func (b Badge) DisplayName() string {
	switch b {
	case BadgeFirstSession:
		return "First Steps"
	case BadgePerfectScore:
		return "Perfect Score"
	case BadgeStreak3:
		return "3-Day Streak"
	case BadgeStreak7:
		return "Week Warrior"
	case BadgeStreak30:
		return "Monthly Devotion"
	case BadgeWeekComplete:
		return "Week Complete"
	default:
		return string(b)
	}
}

// Icon returns the display icon for the badge.
func (b Badge) Icon() string {
	switch b {
	case BadgeFirstSession:
		return "🌱"
	case BadgePerfectScore:
		return "🌟"
	case BadgeStreak3:
		return "🔥"
	case BadgeStreak7:
		return "⚡"
	case BadgeStreak30:
		return "👑"
	case BadgeWeekComplete:
		return "🎀"
	default:
		return "✦"
	}
}

// streakBadge returns the badge for a streak milestone, or "" when the
// length is not a milestone.
func streakBadge(length int) Badge {
	switch length {
	case 3:
		return BadgeStreak3
	case 7:
		return BadgeStreak7
	case 30:
		return BadgeStreak30
	default:
		return ""
	}
}
