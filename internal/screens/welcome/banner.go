package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/bumpwise/bumpquiz/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗   ██╗███╗   ███╗██████╗  ██████╗ ██╗   ██╗██╗███████╗
 ██╔══██╗██║   ██║████╗ ████║██╔══██╗██╔═══██╗██║   ██║██║╚══███╔╝
 ██████╔╝██║   ██║██╔████╔██║██████╔╝██║   ██║██║   ██║██║  ███╔╝
 ██╔══██╗██║   ██║██║╚██╔╝██║██╔═══╝ ██║▄▄ ██║██║   ██║██║ ███╔╝
 ██████╔╝╚██████╔╝██║ ╚═╝ ██║██║     ╚██████╔╝╚██████╔╝██║███████╗
 ╚═════╝  ╚═════╝ ╚═╝     ╚═╝╚═╝      ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const bannerCompact = "B U M P Q U I Z"

// RenderBanner returns the BUMPQUIZ banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 70 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 70 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
