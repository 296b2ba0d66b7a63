package console

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/malikacodes/nursing-game/internal/finance"
	"github.com/malikacodes/nursing-game/internal/stats"
)

func (c *Console) statsTable(s stats.Snapshot) string {
	rows := [][]string{
		{string(stats.NameKnowledge), pct(s.Knowledge)},
		{string(stats.NamePatientCare), pct(s.PatientCare)},
		{string(stats.NameEfficiency), pct(s.Efficiency)},
		{string(stats.NameEnergy), pct(s.Energy)},
		{string(stats.NameReputation), pct(s.Reputation)},
		{string(stats.NameStress), pct(s.Stress)},
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(c.styles.border).
		BorderHeader(true).
		BorderRow(false).
		Headers("Stat", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return c.styles.title.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	return t.Render()
}

func (c *Console) financeLine(f finance.Snapshot) string {
	return fmt.Sprintf("Salary: $%s/year  Savings: $%s  Student Loans: $%s",
		f.Salary.StringFixed(2), f.Savings.StringFixed(2), f.StudentLoans.StringFixed(2))
}

func pct(v int) string { return fmt.Sprintf("%d%%", v) }

func signedMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "+$" + d.StringFixed(2)
}

func (c *Console) renderChanges(changes []stats.Change) {
	if len(changes) == 0 {
		c.println(c.styles.dim.Render("No change to your stats."))
		return
	}
	for _, ch := range changes {
		style := c.styles.good
		// Rising stress is bad news; every other stat is the reverse.
		if (ch.Delta() < 0) != (ch.Stat == stats.NameStress) {
			style = c.styles.bad
		}
		c.println(style.Render(ch.String()))
	}
}
