package bootstrap

import (
	"fmt"
	"strings"

	"mini_http/internal/version"
	"mini_http/router"

	"github.com/charmbracelet/lipgloss"
)

func renderBanner(addr string, routes []router.Route) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7D56F4")).
		PaddingTop(1).
		PaddingBottom(1)

	addrStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FAFAFA")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7D56F4")).
		Padding(0, 2)

	methodStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#04B575")).
		Width(8)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")).
		Italic(true).
		MarginTop(1)

	var b strings.Builder
	b.WriteString(titleStyle.Render(version.String()))
	b.WriteString("\n")
	b.WriteString(addrStyle.Render(fmt.Sprintf("http://%s", addr)))
	b.WriteString("\n\n")
	for _, route := range routes {
		b.WriteString(methodStyle.Render(route.Method.String()))
		b.WriteString(route.Template.Raw())
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("Ctrl+C to stop"))
	b.WriteString("\n")
	return b.String()
}
