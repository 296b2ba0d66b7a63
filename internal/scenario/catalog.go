package scenario

import (
	"fmt"
	"slices"

	"github.com/malikacodes/nursing-game/internal/nurse"
	"github.com/malikacodes/nursing-game/internal/random"
)

// Catalog holds the day and night pools for one game. It is built once
// and only read afterwards.
type Catalog struct {
	tier  nurse.Tier
	day   []*Scenario
	night []*Scenario
}

// NewCatalog validates defs and builds the pools for tier. Entries tagged
// with another tier are skipped.
func NewCatalog(tier nurse.Tier, defs []Definition) (*Catalog, error) {
	if !tier.Valid() {
		return nil, fmt.Errorf("build catalog: unknown tier %q", tier)
	}
	if err := ValidateAll(defs); err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	c := &Catalog{tier: tier}
	for _, d := range defs {
		if !d.ForTier(tier) {
			continue
		}
		s := d.Build()
		if d.Shift == Night {
			c.night = append(c.night, s)
		} else {
			c.day = append(c.day, s)
		}
	}
	return c, nil
}

// ValidateAll checks every entry and rejects duplicate non-empty IDs.
func ValidateAll(defs []Definition) error {
	seen := make(map[string]bool, len(defs))
	for _, d := range defs {
		if err := d.Validate(); err != nil {
			return err
		}
		if d.ID == "" {
			continue
		}
		if seen[d.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, d.ID)
		}
		seen[d.ID] = true
	}
	return nil
}

func (c *Catalog) Tier() nurse.Tier { return c.tier }

func (c *Catalog) Len() int { return len(c.day) + len(c.night) }

// Pool returns a copy of the day or night pool.
func (c *Catalog) Pool(night bool) []*Scenario {
	if night {
		return slices.Clone(c.night)
	}
	return slices.Clone(c.day)
}

// Eligible filters the pool for spec, dropping anything in exclude.
// Exclusion compares scenario identity, not titles.
func (c *Catalog) Eligible(night bool, spec nurse.Specialization, exclude []*Scenario) []*Scenario {
	pool := c.day
	if night {
		pool = c.night
	}

	out := make([]*Scenario, 0, len(pool))
	for _, s := range pool {
		if !s.IsApplicableTo(spec) || slices.Contains(exclude, s) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Draw picks uniformly among the eligible scenarios. It returns false when
// nothing is eligible, which callers treat as "skip", not as an error. The
// source is only consulted when there is something to pick.
func (c *Catalog) Draw(src random.Source, night bool, spec nurse.Specialization, exclude []*Scenario) (*Scenario, bool) {
	eligible := c.Eligible(night, spec, exclude)
	if len(eligible) == 0 {
		return nil, false
	}
	return eligible[src.Intn(len(eligible))], true
}
