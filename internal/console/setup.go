package console

import (
	"context"
	"strings"

	"github.com/malikacodes/nursing-game/internal/game"
	"github.com/malikacodes/nursing-game/internal/nurse"
)

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}

// Setup walks the player through character creation.
func (c *Console) Setup(ctx context.Context) (nurse.Profile, error) {
	var p nurse.Profile

	c.println(c.styles.heading.Render("Welcome to Nursing Career Simulator!"))
	for p.Name == "" {
		c.printf("Enter your name: ")
		name, err := c.readLine(ctx)
		if err != nil {
			return nurse.Profile{}, err
		}
		p.Name = name
	}

	c.println("\nChoose your starting level:")
	for i, t := range nurse.Tiers {
		if i > 0 {
			c.println()
		}
		c.printf("%d. %s\n", i+1, t.DisplayName())
		c.println(indent(t.Preview(), "   "))
	}
	c.println()
	n, err := c.askChoice(ctx, len(nurse.Tiers))
	if err != nil {
		return nurse.Profile{}, err
	}
	p.Tier = nurse.Tiers[n-1]

	c.println("\nChoose your specialization:")
	for i, s := range nurse.Specializations {
		c.printf("Option %d:\n\n", i+1)
		c.println(s.DetailedDescription())
		c.println(c.styles.dim.Render("⸻"))
		c.println()
	}
	n, err = c.askChoice(ctx, len(nurse.Specializations))
	if err != nil {
		return nurse.Profile{}, err
	}
	p.Specialization = nurse.Specializations[n-1]

	prefs := []nurse.ShiftPreference{nurse.DayShift, nurse.NightShift}
	c.println("\nChoose your preferred shift:")
	for i, s := range prefs {
		if i > 0 {
			c.println()
		}
		c.printf("%d. %s\n", i+1, s.DisplayName())
		c.println(indent(s.Preview(), "   "))
	}
	c.println()
	n, err = c.askChoice(ctx, len(prefs))
	if err != nil {
		return nurse.Profile{}, err
	}
	p.Shift = prefs[n-1]

	return p, nil
}

// Welcome introduces the created nurse and the first shift.
func (c *Console) Welcome(n *nurse.Nurse, start game.Phase) {
	c.printf("\nStarting on %s\n", strings.ToLower(start.Description()))
	c.println("\n" + c.styles.heading.Render("Welcome to "+n.Specialization().DisplayName()+"!"))
	c.println(n.Specialization().Attributes().Focus)

	c.println("\nStarting Stats:")
	c.println(c.statsTable(n.Stats().Snapshot()))
	c.printf("Starting Pay: $%s/year\n", n.Finances().Salary().StringFixed(2))
	if n.Finances().NightShift() {
		c.println("Night Shift Differential: +20%")
	}
	c.println()
}
