package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/runner/internal/core/domain"
	"go.trai.ch/runner/internal/ui/style"
)

// CrateTable renders static cache records. verbose adds the source directory.
func CrateTable(records []domain.DependencyRecord, verbose bool) string {
	headers := []string{"CRATE", "VERSION", "FEATURES"}
	if verbose {
		headers = append(headers, "SOURCE")
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(style.Border).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return style.Header
			case col == 3:
				return style.Muted
			default:
				return style.Cell
			}
		})

	for _, r := range records {
		cells := []string{r.Name, r.Version, strings.Join(r.Features, " ")}
		if verbose {
			cells = append(cells, r.SourcePath)
		}
		tbl.Row(cells...)
	}

	return tbl.String()
}
