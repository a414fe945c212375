package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	ColorPrimary   = lipgloss.Color("#0EA5E9") // Sky
	ColorSecondary = lipgloss.Color("#6366F1") // Indigo
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorText      = lipgloss.Color("#F9FAFB")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	CodeStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Background(lipgloss.Color("#1F2937")).
			Padding(0, 1)
)

// Device listing
var (
	DeviceIDStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	DeviceNameStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	DeviceManufacturerStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	DigitizerTagStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)
)

// Trace output
var (
	TracePhaseStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(7)

	TraceMoveStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	TraceEndStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)
)

func Title(text string) string {
	return TitleStyle.Render(text)
}

// Success renders text with a checkmark
func Success(text string) string {
	return SuccessStyle.Render("✓ " + text)
}

func Warning(text string) string {
	return WarningStyle.Render("⚠ " + text)
}

func Error(text string) string {
	return ErrorStyle.Render("✗ " + text)
}

func Muted(text string) string {
	return MutedStyle.Render(text)
}

func Code(text string) string {
	return CodeStyle.Render(text)
}

func Bold(text string) string {
	return BoldStyle.Render(text)
}
