package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	defaultBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		Padding(1, 2)
)

// getBoxWidth returns the width of the terminal capped at 72
// characters
func getBoxWidth() int {
	width, _, _ := term.GetSize(int(os.Stdout.Fd()))
	if width == 0 || width > 72 {
		width = 72
	}
	return width
}

func renderBoxedMessage(color lipgloss.TerminalColor, header, message string, width int) string {
	header = lipgloss.NewStyle().Bold(true).Render(header)
	boxStyle :=
		defaultBoxStyle.
			BorderForeground(color).
			Align(lipgloss.Left).
			Width(width)
	return boxStyle.Render(fmt.Sprintf("%s\n\n%s", header, message))
}

func printBoxedMessage(color AnsiColor, header, message string) {
	fmt.Println(renderBoxedMessage(lipgloss.Color(color), header, message, getBoxWidth()))
}

func PrintBoxedErrorMessage(message string) {
	printBoxedMessage(AnsiRed, "🔴 ERROR", message)
}

func PrintBoxedInfoMessage(message string) {
	printBoxedMessage(AnsiBlue, "🔵 INFORMATION", message)
}

func PrintBoxedWarningMessage(message string) {
	printBoxedMessage(AnsiYellow, "🟡 WARNING", message)
}

func PrintBoxedSuccessMessage(message string) {
	printBoxedMessage(AnsiGreen, "✅ SUCCESS", message)
}
