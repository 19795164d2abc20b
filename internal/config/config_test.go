package config

import (
	"testing"

	"github.com/guarzo/mtgsetlist/internal/model"
	"github.com/guarzo/mtgsetlist/internal/output"
)

func validQuery() Query {
	return Query{
		SetCode:      "neo",
		Format:       model.FormatPauper,
		Copies:       4,
		OutputFormat: output.Text,
	}
}

func TestQueryValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Query)
		wantErr bool
	}{
		{"valid", func(q *Query) {}, false},
		{"zero_copies", func(q *Query) { q.Copies = 0 }, false},
		{"missing_set", func(q *Query) { q.SetCode = "" }, true},
		{"blank_set", func(q *Query) { q.SetCode = "   " }, true},
		{"copies_too_high", func(q *Query) { q.Copies = 5 }, true},
		{"copies_negative", func(q *Query) { q.Copies = -1 }, true},
		{"unknown_format", func(q *Query) { q.Format = "brawl" }, true},
		{"unknown_output", func(q *Query) { q.OutputFormat = "xml" }, true},
		{"json_output", func(q *Query) { q.OutputFormat = output.JSON }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuery()
			tt.mutate(&q)
			err := q.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("expected validation error for %+v", q)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("SCRYFALL_BASE_URL", "http://localhost:9999")
	t.Setenv("MTGSETLIST_CACHE", "/tmp/search.json")
	t.Setenv("MTGSETLIST_NO_CACHE", "true")

	env := LoadEnv()
	if env.BaseURL != "http://localhost:9999" {
		t.Errorf("BaseURL = %q", env.BaseURL)
	}
	if env.CachePath != "/tmp/search.json" {
		t.Errorf("CachePath = %q", env.CachePath)
	}
	if !env.NoCache {
		t.Error("expected NoCache to be set")
	}
}

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("SCRYFALL_BASE_URL", "")
	t.Setenv("MTGSETLIST_CACHE", "")
	t.Setenv("MTGSETLIST_NO_CACHE", "")

	env := LoadEnv()
	if env.BaseURL != "" || env.CachePath != "" || env.NoCache {
		t.Errorf("expected zero Env, got %+v", env)
	}
}
