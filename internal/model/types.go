package model

import (
	"fmt"
	"strings"
)

// Color is a single mana color symbol as Scryfall reports it.
type Color string

const (
	White Color = "W"
	Blue  Color = "U"
	Black Color = "B"
	Red   Color = "R"
	Green Color = "G"
)

// AllColors lists the five colors in WUBRG order.
var AllColors = []Color{White, Blue, Black, Red, Green}

// ParseColors converts user input like "ur" or "WUG" into a canonical
// color set in WUBRG order. Duplicates collapse. An empty string means
// no filter and yields nil.
func ParseColors(s string) ([]Color, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return nil, nil
	}
	seen := make(map[Color]bool, len(s))
	for _, r := range s {
		c := Color(r)
		switch c {
		case White, Blue, Black, Red, Green:
			seen[c] = true
		default:
			return nil, fmt.Errorf("invalid color %q (valid letters: W, U, B, R, G)", string(r))
		}
	}
	out := make([]Color, 0, len(seen))
	for _, c := range AllColors {
		if seen[c] {
			out = append(out, c)
		}
	}
	return out, nil
}

// ColorString renders a color set as a compact string like "UR".
func ColorString(colors []Color) string {
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(string(c))
	}
	return b.String()
}

// Format is a constructed-format name as it appears in Scryfall
// legality mappings.
type Format string

const (
	FormatPauper    Format = "pauper"
	FormatStandard  Format = "standard"
	FormatModern    Format = "modern"
	FormatLegacy    Format = "legacy"
	FormatVintage   Format = "vintage"
	FormatCommander Format = "commander"
)

// Formats lists the supported formats, the default (pauper) first.
var Formats = []Format{
	FormatPauper,
	FormatStandard,
	FormatModern,
	FormatLegacy,
	FormatVintage,
	FormatCommander,
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Card is the slice of a Scryfall card object the deck pipeline needs.
// Immutable once fetched.
type Card struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Set             string            `json:"set"`
	CollectorNumber string            `json:"collector_number"`
	Rarity          string            `json:"rarity"`
	Colors          []Color           `json:"colors"`
	Legalities      map[string]string `json:"legalities"`
}

// LegalIn reports whether the card's legality mapping marks it legal
// in the given format.
func (c Card) LegalIn(f Format) bool {
	return c.Legalities[string(f)] == "legal"
}

// Colorless reports whether the card has no colors (lands and most
// artifacts).
func (c Card) Colorless() bool {
	return len(c.Colors) == 0
}
