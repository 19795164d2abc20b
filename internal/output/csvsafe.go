package output

// EscapeCell protects CSV output against spreadsheet formula
// injection: cells starting with a formula or control character get a
// leading quote. Card names like "-2 Mana" would otherwise execute
// when the export is opened in a spreadsheet.
func EscapeCell(value string) string {
	if value == "" {
		return value
	}
	switch value[0] {
	case '=', '+', '-', '@', '|', '%', '\t', '\r', '\n':
		return "'" + value
	}
	return value
}

func escapeRow(row []string) []string {
	escaped := make([]string, len(row))
	for i, cell := range row {
		escaped[i] = EscapeCell(cell)
	}
	return escaped
}
