package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func printInfo(format string, args ...any) {
	fmt.Println(infoStyle.Render(fmt.Sprintf(format, args...)))
}

func printSuccess(format string, args ...any) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

func printError(format string, args ...any) {
	fmt.Println(errorStyle.Render(fmt.Sprintf(format, args...)))
}

func printHeader(text string) {
	fmt.Println(headerStyle.Render(text))
	fmt.Println(dividerStyle.Render(strings.Repeat("-", 40)))
}

func printDivider() {
	fmt.Println(dividerStyle.Render(strings.Repeat("-", 40)))
}
