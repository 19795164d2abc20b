package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"github.com/guarzo/mtgsetlist/internal/model"
	"github.com/guarzo/mtgsetlist/internal/output"
)

// Query carries everything a single run needs. It is built either from
// flags or from the interactive prompts, then handed through the
// pipeline explicitly; there is no ambient run state.
type Query struct {
	SetCode      string
	Format       model.Format
	Copies       int
	Colors       []model.Color
	CommonsOnly  bool
	OutputPath   string
	OutputFormat output.Format
	Verbose      bool
}

func (q Query) Validate() error {
	if strings.TrimSpace(q.SetCode) == "" {
		return fmt.Errorf("set code is required")
	}
	if q.Copies < 0 || q.Copies > 4 {
		return fmt.Errorf("copies must be between 0 and 4, got %d", q.Copies)
	}
	if _, err := model.ParseFormat(string(q.Format)); err != nil {
		return err
	}
	if _, err := output.ParseFormat(string(q.OutputFormat)); err != nil {
		return err
	}
	return nil
}

// Env holds process-environment settings. The base URL override exists
// for tests; the cache knobs let users relocate or disable the search
// cache.
type Env struct {
	BaseURL   string
	CachePath string
	NoCache   bool
}

var loadOnce sync.Once

// LoadEnv reads .env once, then resolves settings from the
// environment.
func LoadEnv() Env {
	loadOnce.Do(func() {
		_ = godotenv.Load(".env")
	})
	noCache, _ := strconv.ParseBool(os.Getenv("MTGSETLIST_NO_CACHE"))
	return Env{
		BaseURL:   os.Getenv("SCRYFALL_BASE_URL"),
		CachePath: os.Getenv("MTGSETLIST_CACHE"),
		NoCache:   noCache,
	}
}
