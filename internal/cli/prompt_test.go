package cli

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/guarzo/mtgsetlist/internal/model"
	"github.com/guarzo/mtgsetlist/internal/output"
)

func TestPromptQuery_Defaults(t *testing.T) {
	// Set code, then accept every default: pauper, no commons, no
	// copies, no colors, no file.
	in := strings.NewReader("neo\n\nn\n\n\nn\n")
	var out bytes.Buffer

	q, err := promptQuery(in, &out)
	if err != nil {
		t.Fatalf("promptQuery: %v", err)
	}
	if q.SetCode != "neo" {
		t.Errorf("SetCode = %q", q.SetCode)
	}
	if q.Format != model.FormatPauper {
		t.Errorf("Format = %q", q.Format)
	}
	if q.CommonsOnly || q.Copies != 0 || len(q.Colors) != 0 || q.OutputPath != "" {
		t.Errorf("defaults not applied: %+v", q)
	}
	if q.OutputFormat != output.Text {
		t.Errorf("OutputFormat = %q", q.OutputFormat)
	}
}

func TestPromptQuery_FullAnswers(t *testing.T) {
	in := strings.NewReader("NEO\n\ny\n4\nur\ny\n\n")
	var out bytes.Buffer

	q, err := promptQuery(in, &out)
	if err != nil {
		t.Fatalf("promptQuery: %v", err)
	}
	if q.SetCode != "neo" {
		t.Errorf("SetCode = %q", q.SetCode)
	}
	if !q.CommonsOnly {
		t.Error("expected commons only")
	}
	if q.Copies != 4 {
		t.Errorf("Copies = %d", q.Copies)
	}
	if !reflect.DeepEqual(q.Colors, []model.Color{model.Blue, model.Red}) {
		t.Errorf("Colors = %v", q.Colors)
	}
	if q.OutputPath != "pauper_neo_decklist.txt" {
		t.Errorf("OutputPath = %q", q.OutputPath)
	}
}

func TestPromptQuery_NonPauperSkipsCommons(t *testing.T) {
	// Format 3 is modern; the commons question must not consume a line.
	in := strings.NewReader("mh2\n3\n2\n\nn\n")
	var out bytes.Buffer

	q, err := promptQuery(in, &out)
	if err != nil {
		t.Fatalf("promptQuery: %v", err)
	}
	if q.Format != model.FormatModern {
		t.Errorf("Format = %q", q.Format)
	}
	if q.CommonsOnly {
		t.Error("commons question should be pauper-only")
	}
	if q.Copies != 2 {
		t.Errorf("Copies = %d", q.Copies)
	}
	if strings.Contains(out.String(), "Commons only?") {
		t.Error("commons prompt shown for a non-pauper format")
	}
}

func TestPromptQuery_Reprompts(t *testing.T) {
	// Empty set, then valid; bad format, then default; commons no;
	// out-of-range and non-numeric copies, then valid; bad color,
	// then valid; no file.
	in := strings.NewReader("\nneo\n9\n1\nn\n7\nabc\n3\nxq\nw\nn\n")
	var out bytes.Buffer

	q, err := promptQuery(in, &out)
	if err != nil {
		t.Fatalf("promptQuery: %v", err)
	}
	if q.SetCode != "neo" || q.Copies != 3 {
		t.Errorf("re-prompted values wrong: %+v", q)
	}
	if !reflect.DeepEqual(q.Colors, []model.Color{model.White}) {
		t.Errorf("Colors = %v", q.Colors)
	}

	prompts := out.String()
	for _, want := range []string{
		"A set code is required.",
		"Enter a number between 1 and",
		"Enter a number between 0 and 4.",
		"invalid color",
	} {
		if !strings.Contains(prompts, want) {
			t.Errorf("missing re-prompt %q in output", want)
		}
	}
}

func TestPromptQuery_CustomFileName(t *testing.T) {
	in := strings.NewReader("neo\n\nn\n\n\ny\nmylist.txt\n")
	var out bytes.Buffer

	q, err := promptQuery(in, &out)
	if err != nil {
		t.Fatalf("promptQuery: %v", err)
	}
	if q.OutputPath != "mylist.txt" {
		t.Errorf("OutputPath = %q", q.OutputPath)
	}
}

func TestPromptQuery_InputClosed(t *testing.T) {
	in := strings.NewReader("neo\n")
	var out bytes.Buffer

	_, err := promptQuery(in, &out)
	if !errors.Is(err, errInputClosed) {
		t.Errorf("expected errInputClosed, got %v", err)
	}
}
