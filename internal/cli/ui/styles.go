package ui

import "github.com/charmbracelet/lipgloss"

// Palette shared with the chat screen: blue for the user, teal for AIDA
const (
	colorUser      = lipgloss.Color("33")
	colorAssistant = lipgloss.Color("86")
	colorMuted     = lipgloss.Color("245")
	colorValue     = lipgloss.Color("229")
	colorSuccess   = lipgloss.Color("42")
	colorFailure   = lipgloss.Color("196")
)

const boxWidth = 64

// Styles groups the lipgloss styles of one-shot command output
var Styles = struct {
	Heading    lipgloss.Style
	Banner     lipgloss.Style
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Source     lipgloss.Style
	Key        lipgloss.Style
	Value      lipgloss.Style
	SuccessBox lipgloss.Style
	ErrorBox   lipgloss.Style
}{
	Heading: lipgloss.NewStyle().Bold(true).Foreground(colorAssistant),

	Banner: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorUser).
		Padding(0, 2),
	Title:    lipgloss.NewStyle().Bold(true).Foreground(colorAssistant),
	Subtitle: lipgloss.NewStyle().Italic(true).Foreground(colorMuted),

	Source: lipgloss.NewStyle().Bold(true).Foreground(colorAssistant),
	Key:    lipgloss.NewStyle().Foreground(colorMuted),
	Value:  lipgloss.NewStyle().Foreground(colorValue),

	SuccessBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSuccess).
		Padding(0, 1).
		Width(boxWidth),
	ErrorBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorFailure).
		Padding(0, 1).
		Width(boxWidth),
}
