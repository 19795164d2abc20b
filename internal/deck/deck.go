package deck

import (
	"fmt"
	"strings"

	"github.com/guarzo/mtgsetlist/internal/model"
)

// ColorlessPasses pins the policy for colorless cards under a color
// filter: they have no color to conflict with, so they always pass.
const ColorlessPasses = true

// Entry pairs a card with the requested copy count. Entries are only
// ever rendered, never persisted as records.
type Entry struct {
	Card   model.Card
	Copies int
}

// Line renders the entry in deck-list form: "4 Lightning Bolt (NEO)",
// or "Lightning Bolt (NEO)" when no copy count was requested.
func (e Entry) Line() string {
	set := strings.ToUpper(e.Card.Set)
	if e.Copies > 0 {
		return fmt.Sprintf("%d %s (%s)", e.Copies, e.Card.Name, set)
	}
	return fmt.Sprintf("%s (%s)", e.Card.Name, set)
}

// Filter keeps cards legal in the requested format and, when a color
// filter is given, cards whose color set stays within it. Input order
// is preserved.
func Filter(cards []model.Card, format model.Format, colors []model.Color) []model.Card {
	out := make([]model.Card, 0, len(cards))
	for _, c := range cards {
		if !c.LegalIn(format) {
			continue
		}
		if len(colors) > 0 && !matchesColors(c, colors) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func matchesColors(c model.Card, filter []model.Color) bool {
	if c.Colorless() {
		return ColorlessPasses
	}
	allowed := make(map[model.Color]bool, len(filter))
	for _, col := range filter {
		allowed[col] = true
	}
	for _, col := range c.Colors {
		if !allowed[col] {
			return false
		}
	}
	return true
}

// Build pairs every card with the requested copy count, keeping order.
func Build(cards []model.Card, copies int) []Entry {
	entries := make([]Entry, len(cards))
	for i, c := range cards {
		entries[i] = Entry{Card: c, Copies: copies}
	}
	return entries
}
