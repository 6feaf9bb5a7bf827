package ui

import "github.com/charmbracelet/lipgloss"

// Color palette for the airstatus terminal output
var (
	// Primary colors
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - banner, accents
	SuccessColor = lipgloss.Color("#43BF6D") // Green - ONLINE badge, healthy gauges
	ErrorColor   = lipgloss.Color("#FF5555") // Red - OFFLINE badge, low gauges
	WarningColor = lipgloss.Color("#FFA500") // Orange - mid gauges, doctor warnings
	MutedColor   = lipgloss.Color("#626262") // Gray - timestamps, plain passthrough
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Shared styles for dashboard entries and reports
var (
	// OnlineBadgeStyle marks a record whose scanner status is the
	// success code.
	OnlineBadgeStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// OfflineBadgeStyle marks every other record.
	OfflineBadgeStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true)

	// TimestampStyle is for the header timestamp.
	TimestampStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// ModelStyle is for the device display name.
	ModelStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// GaugeLabelStyle is for the L/R/Case gauge labels.
	GaugeLabelStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// GaugeGoodStyle, GaugeWarnStyle, GaugeLowStyle color a gauge value
	// by charge threshold.
	GaugeGoodStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	GaugeWarnStyle = lipgloss.NewStyle().Foreground(WarningColor)
	GaugeLowStyle  = lipgloss.NewStyle().Foreground(ErrorColor)

	// ChargingStyle is for the charging mark next to a gauge.
	ChargingStyle = lipgloss.NewStyle().Foreground(WarningColor)

	// DimStyle renders plain diagnostic passthrough lines.
	DimStyle = lipgloss.NewStyle().Faint(true)

	// BannerStyle is for the one-time live-data banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// TrailerStyle is for the debug raw-payload trailer.
	TrailerStyle = lipgloss.NewStyle().Foreground(MutedColor)

	// Doctor report styles
	CheckPassStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	CheckWarnStyle = lipgloss.NewStyle().Foreground(WarningColor)
	CheckFailStyle = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)

	// Setup progress styles
	StepCompleteStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	StepRunningStyle  = lipgloss.NewStyle().Foreground(WarningColor)
	StepPendingStyle  = lipgloss.NewStyle().Foreground(MutedColor)
	StepNoteStyle     = lipgloss.NewStyle().Foreground(MutedColor).Italic(true)
	FailTitleStyle    = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
)
