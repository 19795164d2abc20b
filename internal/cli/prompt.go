package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/guarzo/mtgsetlist/internal/config"
	"github.com/guarzo/mtgsetlist/internal/model"
	"github.com/guarzo/mtgsetlist/internal/output"
)

var errInputClosed = errors.New("input closed before all parameters were provided")

// promptQuery collects the same parameters as the flag surface, one at
// a time, re-prompting until each answer validates. Both producers
// converge on the same config.Query.
func promptQuery(r io.Reader, w io.Writer) (config.Query, error) {
	in := bufio.NewScanner(r)
	q := config.Query{
		Format:       model.FormatPauper,
		OutputFormat: output.Text,
	}

	for {
		fmt.Fprint(w, "Set code (e.g. 'neo' for Kamigawa: Neon Dynasty): ")
		line, ok := readLine(in)
		if !ok {
			return q, errInputClosed
		}
		if line != "" {
			q.SetCode = strings.ToLower(line)
			break
		}
		fmt.Fprintln(w, "A set code is required.")
	}

	fmt.Fprintln(w, "Formats:")
	for i, f := range model.Formats {
		fmt.Fprintf(w, "  %d. %s\n", i+1, f)
	}
	for {
		fmt.Fprintf(w, "Format [1-%d, default 1]: ", len(model.Formats))
		line, ok := readLine(in)
		if !ok {
			return q, errInputClosed
		}
		if line == "" {
			break
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(model.Formats) {
			q.Format = model.Formats[n-1]
			break
		}
		fmt.Fprintf(w, "Enter a number between 1 and %d.\n", len(model.Formats))
	}

	if q.Format == model.FormatPauper {
		fmt.Fprint(w, "Commons only? (y/N): ")
		line, ok := readLine(in)
		if !ok {
			return q, errInputClosed
		}
		q.CommonsOnly = strings.EqualFold(line, "y")
	}

	for {
		fmt.Fprint(w, "Copy-count prefix, 0 for none (0-4, default 0): ")
		line, ok := readLine(in)
		if !ok {
			return q, errInputClosed
		}
		if line == "" {
			break
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 0 && n <= 4 {
			q.Copies = n
			break
		}
		fmt.Fprintln(w, "Enter a number between 0 and 4.")
	}

	for {
		fmt.Fprint(w, "Color filter, letters from WUBRG (optional): ")
		line, ok := readLine(in)
		if !ok {
			return q, errInputClosed
		}
		colors, err := model.ParseColors(line)
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		q.Colors = colors
		break
	}

	fmt.Fprint(w, "Save the list to a file? (y/N): ")
	line, ok := readLine(in)
	if !ok {
		return q, errInputClosed
	}
	if strings.EqualFold(line, "y") {
		suggested := fmt.Sprintf("%s_%s_decklist.txt", q.Format, q.SetCode)
		fmt.Fprintf(w, "File name [%s]: ", suggested)
		name, ok := readLine(in)
		if !ok {
			return q, errInputClosed
		}
		if name == "" {
			name = suggested
		}
		q.OutputPath = name
	}

	return q, q.Validate()
}

func readLine(in *bufio.Scanner) (string, bool) {
	if !in.Scan() {
		return "", false
	}
	return strings.TrimSpace(in.Text()), true
}
