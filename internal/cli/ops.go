package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mohdjaved291/File-Commander/internal/ops"
	"github.com/spf13/cobra"
)

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List the supported operations",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(renderCatalog())
	},
}

func renderCatalog() string {
	service := ops.New(ops.Config{}).Definition()

	var b strings.Builder
	b.WriteString(titleStyle.Render(service.Name) + "\n")
	b.WriteString(dimStyle.Render(service.Description) + "\n\n")

	for _, tool := range service.Tools {
		b.WriteString(toolStyle.Render(string(tool.ID)))
		b.WriteString(dimStyle.Render("  " + tool.Description))
		b.WriteString("\n")
		for _, param := range tool.Parameters {
			marker := "optional"
			if param.Required {
				marker = "required"
			}
			b.WriteString(fmt.Sprintf("    %-18s %-8s %s\n",
				param.Name, lipgloss.NewStyle().Faint(true).Render(marker), param.Description))
		}
	}
	return b.String()
}
