package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorPink      = lipgloss.Color("205")
	colorRed       = lipgloss.Color("196")
	colorGreen     = lipgloss.Color("42")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPink).
			MarginTop(1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorRed)

	readyStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPink).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			MarginTop(1)

	resultBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorLightGray).
				Padding(0, 1)
)
