package model

import (
	"reflect"
	"testing"
)

func TestParseColors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Color
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"single", "r", []Color{Red}, false},
		{"upper", "R", []Color{Red}, false},
		{"canonical_order", "ru", []Color{Blue, Red}, false},
		{"duplicates_collapse", "rrr", []Color{Red}, false},
		{"all_five", "gwrbu", []Color{White, Blue, Black, Red, Green}, false},
		{"whitespace", "  ur  ", []Color{Blue, Red}, false},
		{"invalid_letter", "x", nil, true},
		{"mixed_invalid", "rx", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColors(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseColors(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColors(%q) unexpected error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseColors(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorString(t *testing.T) {
	if got := ColorString([]Color{Blue, Red}); got != "UR" {
		t.Errorf("ColorString = %q, want %q", got, "UR")
	}
	if got := ColorString(nil); got != "" {
		t.Errorf("ColorString(nil) = %q, want empty", got)
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		if err != nil {
			t.Errorf("ParseFormat(%q) unexpected error: %v", f, err)
		}
		if got != f {
			t.Errorf("ParseFormat(%q) = %q", f, got)
		}
	}

	if got, err := ParseFormat("  Pauper "); err != nil || got != FormatPauper {
		t.Errorf("ParseFormat with case/space = %q, %v", got, err)
	}

	if _, err := ParseFormat("brawl"); err == nil {
		t.Error("ParseFormat(\"brawl\") expected error")
	}
}

func TestCardLegalIn(t *testing.T) {
	c := Card{Legalities: map[string]string{
		"pauper": "legal",
		"modern": "not_legal",
	}}

	if !c.LegalIn(FormatPauper) {
		t.Error("expected legal in pauper")
	}
	if c.LegalIn(FormatModern) {
		t.Error("expected not legal in modern")
	}
	// Formats missing from the mapping are not legal.
	if c.LegalIn(FormatVintage) {
		t.Error("expected missing format to read as not legal")
	}
}

func TestCardColorless(t *testing.T) {
	if !(Card{}).Colorless() {
		t.Error("card with no colors should be colorless")
	}
	if (Card{Colors: []Color{Red}}).Colorless() {
		t.Error("red card should not be colorless")
	}
}
