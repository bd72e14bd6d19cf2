package symbol

import (
	"strings"
	"unicode"

	"github.com/apparentlymart/go-textseg/v15/textseg"
)

// Variation selectors dropped during normalization.
const (
	VS15 = '\uFE0E' // text presentation selector
	VS16 = '\uFE0F' // emoji presentation selector
	BOM  = '\uFEFF' // byte order mark, treated as white space
)

// Compact removes variation selectors, byte order marks and all white space
// from text.
func Compact(text string) string {
	return strings.Map(func(r rune) rune {
		if r == VS15 || r == VS16 || r == BOM || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}

// Normalize compacts a line and splits it into grapheme clusters.
// A line with nothing left after compaction has no symbols.
func Normalize(line string) (symbols []string) {
	data := []byte(Compact(line))

	for len(data) > 0 {
		advance, token, err := textseg.ScanGraphemeClusters(data, true)
		if err != nil || advance <= 0 {
			symbols = append(symbols, string(data))
			return
		}
		symbols = append(symbols, string(token))
		data = data[advance:]
	}

	return
}

// Lines splits source text into lines, accepting \n, \r\n and \r endings.
// Line n of the source is at index n-1.
func Lines(source string) []string {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	source = strings.ReplaceAll(source, "\r", "\n")
	return strings.Split(source, "\n")
}
