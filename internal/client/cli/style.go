package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iudanet/cardinput/pkg/cardnumber"
)

// Styles are the terminal styles of the card number field.
type Styles struct {
	Entered     lipgloss.Style
	Placeholder lipgloss.Style
	Network     lipgloss.Style
	Error       lipgloss.Style
}

// NewStyles returns colored styles, or plain ones when color is false.
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{
			Entered:     plain,
			Placeholder: plain,
			Network:     plain,
			Error:       plain,
		}
	}

	return Styles{
		Entered: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true),
		Placeholder: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Network: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")),
	}
}

// Field renders the entered digits and the placeholder filler in their own styles.
func (s Styles) Field(r cardnumber.Rendering) string {
	return styled(s.Entered, r.Entered()) + styled(s.Placeholder, r.Filler())
}
