package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("4")).
			Padding(0, 2)
	previewBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(0, 1)

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

func printHeader(version string) {
	banner := titleStyle.Render("VTAP100 Configuration Generator") + "\n" +
		dimStyle.Render("Version "+version)
	fmt.Println(headerBoxStyle.Render(banner))
}

func printSuccess(message string) {
	fmt.Println(successStyle.Render("✓") + " " + message)
}

func printError(message string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✗")+" "+message)
}

func printSection(title string) {
	fmt.Println("\n" + sectionStyle.Render("━━━ "+title+" ━━━") + "\n")
}

func printKV(label, value string) {
	fmt.Printf("  %s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
}

// printPreview renders config text in a bordered box with line numbers, the
// way generated output is always shown before writing.
func printPreview(title, configText string) {
	lines := strings.Split(configText, "\n")
	width := len(strconv.Itoa(len(lines)))

	var b strings.Builder
	for i, line := range lines {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%*d ", width, i+1)))
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}

	fmt.Println(titleStyle.Render(title))
	fmt.Println(previewBoxStyle.Render(b.String()))
}
