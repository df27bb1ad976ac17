package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sandevgo/promptcmd/pkg/promptcmd"
)

var (
	// TitleStyle ANSI 6 (Cyan) for headings, readable on light and dark terminals
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	// UsageStyle ANSI 2 (Green) for usage lines
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle ANSI 8 (Bright Black) keeps descriptions quieter than usage
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle ANSI 3 (Yellow) for flags
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// HelpStyles returns the shell help styles; plain when colour is off.
func HelpStyles(color bool) promptcmd.Styles {
	if !color {
		return promptcmd.DefaultStyles()
	}
	return promptcmd.Styles{
		Header: TitleStyle,
		Usage:  UsageStyle,
		Doc:    DescStyle,
	}
}
