package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorBlue      = lipgloss.Color("#4285F4")
	colorRed       = lipgloss.Color("#EA4335")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	userLabelStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	modelLabelStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	systemLabelStyle = lipgloss.NewStyle().
				Foreground(colorLightGray).
				Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	inputBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorGray).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true)
)

const logo = `
 _  _ ____ ____ ___ ____ _  _ ____ ____ ___ ____
 |  | |___ |__/  |  |___  \/  | __ |__|  |  |___
  \/  |___ |  \  |  |___ _/\_ |__] |  |  |  |___
`
