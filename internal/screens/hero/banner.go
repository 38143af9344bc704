package hero

import (
	"charm.land/lipgloss/v2"

	"github.com/winterarc/winterarc/internal/ui/theme"
)

const bannerWinter = `██╗    ██╗██╗███╗   ██╗████████╗███████╗██████╗
██║    ██║██║████╗  ██║╚══██╔══╝██╔════╝██╔══██╗
██║ █╗ ██║██║██╔██╗ ██║   ██║   █████╗  ██████╔╝
██║███╗██║██║██║╚██╗██║   ██║   ██╔══╝  ██╔══██╗
╚███╔███╔╝██║██║ ╚████║   ██║   ███████╗██║  ██║
 ╚══╝╚══╝ ╚═╝╚═╝  ╚═══╝   ╚═╝   ╚══════╝╚═╝  ╚═╝`

const bannerArc = ` █████╗ ██████╗  ██████╗
██╔══██╗██╔══██╗██╔════╝
███████║██████╔╝██║
██╔══██║██╔══██╗██║
██║  ██║██║  ██║╚██████╗
╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝`

// bannerFullWidth is the width the block-letter banner needs.
const bannerFullWidth = 76

// RenderBanner returns the WINTER ARC banner, "ARC" in the primary color.
// Narrow terminals get a compact single-line version.
func RenderBanner(width int) string {
	winter := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	arc := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	if width < bannerFullWidth {
		return winter.Render("W I N T E R") + "  " + arc.Render("A R C")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		winter.Render(bannerWinter), "   ", arc.Render(bannerArc))
}
