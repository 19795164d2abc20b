package testutil

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/guarzo/mtgsetlist/internal/model"
)

// CardFactory builds Scryfall-shaped test cards with valid UUIDs and a
// running collector number.
type CardFactory struct {
	set string
	n   int
}

func NewCardFactory(set string) *CardFactory {
	if set == "" {
		set = "tst"
	}
	return &CardFactory{set: set}
}

// Card returns a card legal in the given format with the given colors.
func (f *CardFactory) Card(format model.Format, colors ...model.Color) model.Card {
	f.n++
	return model.Card{
		ID:              uuid.NewString(),
		Name:            fmt.Sprintf("Test Card %d", f.n),
		Set:             f.set,
		CollectorNumber: fmt.Sprintf("%d", f.n),
		Rarity:          "common",
		Colors:          colors,
		Legalities:      map[string]string{string(format): "legal"},
	}
}

// NotLegal returns a card whose legality mapping marks the format
// "not_legal".
func (f *CardFactory) NotLegal(format model.Format, colors ...model.Color) model.Card {
	c := f.Card(format, colors...)
	c.Legalities[string(format)] = "not_legal"
	return c
}

// Named returns a legal card with an explicit name.
func (f *CardFactory) Named(name string, format model.Format, colors ...model.Color) model.Card {
	c := f.Card(format, colors...)
	c.Name = name
	return c
}
