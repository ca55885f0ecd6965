package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CodedInternet/golinact/protocol"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	cellStyle = lipgloss.NewStyle().
			Width(40)
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.panel("Motor Speed", fmt.Sprintf("Speed: %d / %d", m.speed, MAX_SPEED)))
	b.WriteString("\n")
	b.WriteString(m.panel("Motor Direction", fmt.Sprintf("Direction: %s", directionLabel(m.direction))))
	b.WriteString("\n")

	statusCell := cellStyle.Render(fmt.Sprintf("Status: %s | %s", m.status, m.actuator))
	lenCell := cellStyle.Render(fmt.Sprintf("Actuator len (m): %g", m.lenMeters))
	b.WriteString(m.panel("Info", lipgloss.JoinHorizontal(lipgloss.Top, statusCell, lenCell)))
	b.WriteString("\n")

	b.WriteString(m.panel("Controls", m.help.View(m.keys)))

	return b.String()
}

func (m Model) panel(title, content string) string {
	return boxStyle.Render(titleStyle.Render(title) + "\n" + content)
}

// directionLabel capitalizes the wire name for display.
func directionLabel(d protocol.Direction) string {
	s := d.String()
	return strings.ToUpper(s[:1]) + s[1:]
}
