package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/guarzo/mtgsetlist/internal/cache"
	"github.com/guarzo/mtgsetlist/internal/config"
	"github.com/guarzo/mtgsetlist/internal/deck"
	"github.com/guarzo/mtgsetlist/internal/model"
	"github.com/guarzo/mtgsetlist/internal/output"
	"github.com/guarzo/mtgsetlist/internal/scryfall"
)

// runQuery is the single pipeline entry point both the flag and the
// interactive surfaces converge on: fetch, filter, render, write.
func runQuery(ctx context.Context, q config.Query, env config.Env) error {
	var store *cache.Cache
	if env.CachePath != "" && !env.NoCache {
		var err error
		store, err = cache.New(env.CachePath)
		if err != nil {
			// A broken cache should not block the run.
			if q.Verbose {
				fmt.Fprintf(os.Stderr, "cache disabled: %v\n", err)
			}
			store = nil
		}
	}

	client := scryfall.New(scryfall.Options{
		BaseURL: env.BaseURL,
		Cache:   store,
		Verbose: q.Verbose,
	})
	searchQuery := scryfall.BuildQuery(q.SetCode, q.Format, q.CommonsOnly)

	cards, err := client.SearchCards(ctx, searchQuery)
	if err != nil {
		return err
	}

	filtered := deck.Filter(cards, q.Format, q.Colors)
	if len(filtered) == 0 {
		// Informational only, and on stderr: an empty set is not an
		// error and must not dirty the list output.
		color.New(color.FgYellow).Fprintf(color.Error, "No cards found for %q\n", searchQuery)
		return nil
	}

	entries := deck.Build(filtered, q.Copies)
	if err := output.Write(q.OutputPath, q.OutputFormat, entries); err != nil {
		return err
	}
	if q.OutputPath != "" {
		color.New(color.FgGreen).Fprintf(color.Error, "Wrote %d cards to %s\n", len(entries), q.OutputPath)
	}

	printSummary(os.Stderr, q, searchQuery, len(entries))
	return nil
}

func printSummary(w io.Writer, q config.Query, searchQuery string, total int) {
	fmt.Fprintf(w, "\nSet: %s\n", strings.ToUpper(q.SetCode))
	fmt.Fprintf(w, "Format: %s\n", q.Format)
	if q.CommonsOnly {
		fmt.Fprintln(w, "Commons only: yes")
	}
	if len(q.Colors) > 0 {
		fmt.Fprintf(w, "Colors: %s\n", model.ColorString(q.Colors))
	}
	fmt.Fprintf(w, "Query: %s\n", searchQuery)
	fmt.Fprintf(w, "Total cards: %d\n", total)
}
