package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mohdjaved291/File-Commander/internal/shared/types"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	toolStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// renderRun formats the outcome of one executed plan.
func renderRun(command string, results []types.Result) string {
	var b strings.Builder
	if command != "" {
		b.WriteString(dimStyle.Render("> "+command) + "\n")
	}
	for i, result := range results {
		if len(results) > 1 {
			b.WriteString(dimStyle.Render(fmt.Sprintf("Step %d: ", i+1)))
		}
		b.WriteString(renderResult(result))
	}
	return b.String()
}

func renderResult(result types.Result) string {
	style := okStyle
	if !result.Success {
		style = failStyle
	}
	out := style.Render(result.Message) + "\n"
	if matches := matchRows(result.Data); len(matches) > 0 {
		out += renderMatches(matches)
	}
	return out
}

func matchRows(data map[string]interface{}) []map[string]interface{} {
	if data == nil {
		return nil
	}
	rows, _ := data["matches"].([]map[string]interface{})
	return rows
}

// renderMatches lays search hits out as an aligned table.
func renderMatches(rows []map[string]interface{}) string {
	nameWidth := len("Name")
	for _, row := range rows {
		if name, _ := row["name"].(string); len(name) > nameWidth {
			nameWidth = len(name)
		}
	}

	var b strings.Builder
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %3s  %-*s  %s", "#", nameWidth, "Name", "Location")) + "\n")
	for _, row := range rows {
		index, _ := row["index"].(int)
		name, _ := row["name"].(string)
		dir, _ := row["dir"].(string)
		b.WriteString(fmt.Sprintf("  %3d  %-*s  %s\n", index, nameWidth, name, dimStyle.Render(dir)))
	}
	return b.String()
}
