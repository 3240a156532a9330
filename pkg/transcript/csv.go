// Package transcript converts uploaded transcript files into the canonical
// "Speaker: text" line format used by the analysis pipeline.
package transcript

import (
	"strings"
)

// InvalidFormatWarning is reported when the content could not be read as CSV
const InvalidFormatWarning = "The CSV format appears to be invalid. Please check the format and try again."

// Row shapes, used as metric labels
const (
	ShapeThreeField  = "three_field"
	ShapeTwoField    = "two_field"
	ShapePassthrough = "passthrough"
)

var headerMarkers = []string{"timestamp", "speaker", "text"}

// Result is the outcome of parsing a CSV transcript
type Result struct {
	// Transcript is the normalized transcript, one utterance per line
	Transcript string `json:"transcription" yaml:"transcription"`
	// Fallback is set when the raw content was returned unchanged
	Fallback bool `json:"fallback" yaml:"fallback"`
	// Warning is a user facing message explaining a fallback
	Warning string `json:"warning,omitempty" yaml:"warning,omitempty"`
}

// ParseCSV normalizes CSV transcript content.
//
// Supported row shapes are "timestamp,speaker,text" and "speaker,text"; any
// other row is passed through unchanged. An optional header row is skipped.
// Content with no readable rows is returned verbatim with Fallback set.
func ParseCSV(content string) Result {
	lines := nonBlankLines(content)
	if len(lines) == 0 {
		parseFallbacks.Inc()
		return Result{Transcript: content, Fallback: true, Warning: InvalidFormatWarning}
	}

	if isHeader(lines[0]) {
		lines = lines[1:]
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		parsed, shape := parseRow(line)
		rowsParsed.WithLabelValues(shape).Inc()
		out = append(out, parsed)
	}

	return Result{Transcript: strings.Join(out, "\n")}
}

func nonBlankLines(content string) []string {
	raw := strings.Split(content, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func isHeader(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range headerMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func parseRow(line string) (string, string) {
	fields := SplitFields(line)
	switch len(fields) {
	case 3:
		return formatUtterance(fields[1], fields[2]), ShapeThreeField
	case 2:
		return formatUtterance(fields[0], fields[1]), ShapeTwoField
	default:
		return line, ShapePassthrough
	}
}

func formatUtterance(speaker, text string) string {
	return cleanField(speaker) + ": " + cleanField(text)
}

func cleanField(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}

// SplitFields splits a line on commas outside double quotes. A quote only
// toggles the quoted state and is never part of a field, so escaped quotes
// ("") are not preserved.
func SplitFields(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	return append(fields, current.String())
}
