package sweep

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleLabel   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleValue   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	styleNumber  = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
)

// Report is the final summary of a run: the configuration echoed back plus
// all counters. It is the single place where success or failure is decided.
type Report struct {
	Repo        string
	Target      string
	Keep        int
	Prereleases bool
	Stale       bool
	Mode        Mode
	RunID       string
	Metrics     Metrics
}

// ExitCode is the authoritative success signal for automation: 1 when any
// error was recorded, 0 otherwise, regardless of how many releases were
// deleted.
func (r *Report) ExitCode() int {
	if r.Metrics.Errors > 0 {
		return 1
	}
	return 0
}

// Render returns the human-readable summary.
func (r *Report) Render() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Sweep summary") + " " + styleLabel.Render("(run "+r.RunID+")") + "\n")
	writeRow(&b, "repository", styleValue.Render(r.Repo))
	writeRow(&b, "target version", styleValue.Render(r.Target))
	writeRow(&b, "keep", styleNumber.Render(fmt.Sprintf("%d", r.Keep)))
	writeRow(&b, "prereleases", styleValue.Render(onOff(r.Prereleases)))
	writeRow(&b, "stale releases", styleValue.Render(onOff(r.Stale)))
	writeRow(&b, "mode", styleValue.Render(r.Mode.String()))
	b.WriteString("\n")

	m := &r.Metrics
	writeRow(&b, "prereleases deleted", styleNumber.Render(fmt.Sprintf("%d", m.PrereleasesDeleted)))
	writeRow(&b, "stale deleted", styleNumber.Render(fmt.Sprintf("%d", m.StaleDeleted)))
	writeRow(&b, "tags deleted", styleNumber.Render(fmt.Sprintf("%d", m.TagsDeleted)))
	writeRow(&b, "total deleted", styleNumber.Render(fmt.Sprintf("%d", m.TotalDeleted())))
	writeRow(&b, "api calls", styleNumber.Render(fmt.Sprintf("%d", m.APICalls)))

	errStyle := styleSuccess
	if m.Errors > 0 {
		errStyle = styleError
	}
	writeRow(&b, "errors", errStyle.Render(fmt.Sprintf("%d", m.Errors)))

	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s %s\n", styleLabel.Render(fmt.Sprintf("%-20s", label+":")), value)
}

func onOff(v bool) string {
	if v {
		return "clean"
	}
	return "skip"
}
