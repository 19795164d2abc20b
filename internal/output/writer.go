package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/guarzo/mtgsetlist/internal/deck"
	"github.com/guarzo/mtgsetlist/internal/model"
)

// Write renders entries to path in the given format. An empty path
// means stdout; an existing file is overwritten. Write never falls
// back to the console when the file cannot be written.
func Write(path string, format Format, entries []deck.Entry) error {
	if path == "" {
		return Render(os.Stdout, format, entries)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Render(f, format, entries); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func Render(w io.Writer, format Format, entries []deck.Entry) error {
	switch format {
	case JSON:
		return renderJSON(w, entries)
	case CSV:
		return renderCSV(w, entries)
	default:
		return renderText(w, entries)
	}
}

func renderText(w io.Writer, entries []deck.Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, e.Line()); err != nil {
			return err
		}
	}
	return nil
}

// renderJSON dumps the underlying card objects, indented, the way the
// API returned them.
func renderJSON(w io.Writer, entries []deck.Entry) error {
	cards := make([]model.Card, len(entries))
	for i, e := range entries {
		cards[i] = e.Card
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cards)
}

func renderCSV(w io.Writer, entries []deck.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"copies", "name", "set", "collector_number", "rarity", "colors"}); err != nil {
		return err
	}
	for _, e := range entries {
		row := escapeRow([]string{
			fmt.Sprintf("%d", e.Copies),
			e.Card.Name,
			e.Card.Set,
			e.Card.CollectorNumber,
			e.Card.Rarity,
			model.ColorString(e.Card.Colors),
		})
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
