// Package report renders spending summaries for terminal display using lipgloss.
package report

import "github.com/charmbracelet/lipgloss"

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#FF9933") // Saffron
	// SuccessColor indicates healthy numbers.
	SuccessColor = lipgloss.Color("#4ECDC4") // Teal
	// WarningColor indicates caution messages.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// ErrorColor indicates anomalies and overspend.
	ErrorColor = lipgloss.Color("#FF6B6B") // Red
	// InfoColor indicates informational rows.
	InfoColor = lipgloss.Color("#95E1D3") // Light teal
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray
)

// Styles contains the styling definitions for summary rendering.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Subtle   lipgloss.Style
	Normal   lipgloss.Style
	Box      lipgloss.Style
	Amount   lipgloss.Style
}

// NewStyles creates a Styles instance with default styling.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(SubtleColor).
			MarginBottom(1),
		Success: lipgloss.NewStyle().Foreground(SuccessColor),
		Warning: lipgloss.NewStyle().Foreground(WarningColor),
		Error:   lipgloss.NewStyle().Foreground(ErrorColor),
		Info:    lipgloss.NewStyle().Foreground(InfoColor),
		Subtle:  lipgloss.NewStyle().Foreground(SubtleColor),
		Normal:  lipgloss.NewStyle(),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 1),
		Amount: lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor),
	}
}
