package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Desktop          *lipgloss.Style
	Frame            *lipgloss.Style
	FrameFocused     *lipgloss.Style
	Title            *lipgloss.Style
	TitleFocused     *lipgloss.Style
	Button           *lipgloss.Style
	Body             *lipgloss.Style
	Bullet           *lipgloss.Style
	Link             *lipgloss.Style
	Cursor           *lipgloss.Style
	Highlight        *lipgloss.Style
	Field            *lipgloss.Style
	FieldFocused     *lipgloss.Style
	FieldPlaceholder *lipgloss.Style
	Bubble           *lipgloss.Style
	BubbleTitle      *lipgloss.Style
	BubbleError      *lipgloss.Style
	Status           *lipgloss.Style
	StatusError      *lipgloss.Style
	StatusPending    *lipgloss.Style
	PromptLabel      *lipgloss.Style
	Suggestion       *lipgloss.Style
	Footer           *lipgloss.Style
}

var defaultStyles = Styles{
	Desktop: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Frame: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("235")),
	),
	FrameFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("235")),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("238")),
	),
	TitleFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Bold(true),
	),
	Body: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("235")),
	),
	Bullet: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Background(lipgloss.Color("235")),
	),
	Link: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Background(lipgloss.Color("235")).Underline(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Highlight: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("226")),
	),
	Field: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("237")),
	),
	FieldFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("24")),
	),
	FieldPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Background(lipgloss.Color("237")),
	),
	Bubble: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("254")),
	),
	BubbleTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("254")).Bold(true),
	),
	BubbleError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Background(lipgloss.Color("254")).Bold(true),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Background(lipgloss.Color("236")),
	),
	StatusError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Background(lipgloss.Color("236")).Bold(true),
	),
	StatusPending: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("236")).Italic(true),
	),
	PromptLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Suggestion: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
