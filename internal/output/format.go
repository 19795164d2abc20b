package output

import "fmt"

// Format selects how the filtered card list is written.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	CSV  Format = "csv"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case Text, JSON, CSV:
		return Format(s), nil
	case "":
		return Text, nil
	default:
		return "", fmt.Errorf("unknown output format %q (valid: text, json, csv)", s)
	}
}
