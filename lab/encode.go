package lab

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/lovelace/emulator"
)

const (
	FORMAT_TEXT = "text"
	FORMAT_JSON = "json"
	FORMAT_YAML = "yaml"
)

// Formats of Encode.
func Formats() []string {
	return []string{FORMAT_TEXT, FORMAT_JSON, FORMAT_YAML}
}

// Encode a report to w in a format.
func Encode(w io.Writer, report *emulator.Report, format string) (err error) {
	switch format {
	case FORMAT_TEXT:
		err = encodeText(w, report)
	case FORMAT_JSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		err = enc.Encode(report)
	case FORMAT_YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(report)
		if err == nil {
			err = enc.Close()
		}
	default:
		err = fmt.Errorf("%w: %q", ErrFormat, format)
	}

	return
}

func encodeText(w io.Writer, report *emulator.Report) (err error) {
	var text strings.Builder

	for n, test := range report.Tests {
		name := test.Name
		if len(name) == 0 {
			name = fmt.Sprintf("#%d", n+1)
		}
		text.WriteString(f("Test %v: %v, steps %d", name, test.Status, test.Steps))
		text.WriteByte('\n')
		if len(test.Error) != 0 && test.Error != test.Output {
			writeIndented(&text, test.Error)
		}
		writeIndented(&text, test.Output)
		if len(test.Issues) != 0 {
			writeIndented(&text, f("Issues: %v", strings.Join(test.Issues, ", ")))
		}
		if len(test.Diff) != 0 {
			writeIndented(&text, test.Diff)
		}
	}

	text.WriteString(report.Summary())
	text.WriteByte('\n')
	text.WriteString(f("Total steps: %d", report.TotalSteps))
	text.WriteByte('\n')

	_, err = io.WriteString(w, text.String())
	return
}

func writeIndented(text *strings.Builder, block string) {
	if len(block) == 0 {
		return
	}
	for line := range strings.Lines(block) {
		text.WriteString("  ")
		text.WriteString(strings.TrimRight(line, "\n"))
		text.WriteByte('\n')
	}
}
