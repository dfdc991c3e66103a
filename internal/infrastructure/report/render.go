package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ersonp/thanepark/internal/domain/entities"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	shutdownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	openStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	titleStyle    = lipgloss.NewStyle().Bold(true)
	labelStyle    = lipgloss.NewStyle().Faint(true)
	cardStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// RideTable renders rides as a numbered terminal table.
func RideTable(rides []entities.Ride) string {
	if len(rides) == 0 {
		return "No rides to show."
	}

	rows := make([][]string, 0, len(rides))
	for i, r := range rides {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.Name,
			strconv.Itoa(r.Maintenance),
			strconv.Itoa(r.WaitTime),
			r.Address,
			statusText(r),
			strings.Join(r.Tags, ", "),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "NAME", "MAINTENANCE", "WAIT", "ZONE", "STATUS", "TAGS").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}

// RideCard renders the details of one ride inside a border.
func RideCard(r entities.Ride) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(r.Name))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d days\n", labelStyle.Render("Since maintenance:"), r.Maintenance)
	fmt.Fprintf(&b, "%s %d min\n", labelStyle.Render("Waiting time:     "), r.WaitTime)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Zone:             "), r.Address)
	fmt.Fprintf(&b, "%s %s", labelStyle.Render("Status:           "), statusText(r))
	if len(r.Tags) > 0 {
		fmt.Fprintf(&b, "\n%s %s", labelStyle.Render("Tags:             "), strings.Join(r.Tags, ", "))
	}
	return cardStyle.Render(b.String())
}

func statusText(r entities.Ride) string {
	if r.IsOpen() {
		return openStyle.Render(string(r.Status))
	}
	return shutdownStyle.Render(string(r.Status))
}
