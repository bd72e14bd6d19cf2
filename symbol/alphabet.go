package symbol

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Alphabet is an immutable, ordered table of symbols.
// The position of a symbol in the table is its value.
type Alphabet struct {
	display []string       // Symbols as written in the table, for keyboards.
	symbols []string       // Normalized symbols.
	index   map[string]int // Normalized symbol to position.
}

// NewAlphabet builds an alphabet. Entries are normalized, so they may carry
// variation selectors. A duplicate or empty entry is a programming error.
func NewAlphabet(entries ...string) *Alphabet {
	ab := &Alphabet{
		display: slices.Clone(entries),
		symbols: make([]string, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for n, entry := range entries {
		sym := Compact(entry)
		if len(sym) == 0 {
			panic(fmt.Sprintf("symbol: empty alphabet entry %d", n))
		}
		if _, ok := ab.index[sym]; ok {
			panic(fmt.Sprintf("symbol: duplicate alphabet entry %q", entry))
		}
		ab.symbols[n] = sym
		ab.index[sym] = n
	}

	return ab
}

// Len returns the number of symbols.
func (ab *Alphabet) Len() int {
	return len(ab.symbols)
}

// Index returns the position of a normalized symbol.
func (ab *Alphabet) Index(sym string) (index int, ok bool) {
	index, ok = ab.index[sym]
	return
}

// Has reports whether the normalized symbol is in the alphabet.
func (ab *Alphabet) Has(sym string) bool {
	_, ok := ab.index[sym]
	return ok
}

// Symbol returns the normalized symbol at a position.
func (ab *Alphabet) Symbol(index int) string {
	return ab.symbols[index]
}

// Display returns the symbol at a position as written in the table.
func (ab *Alphabet) Display(index int) string {
	return ab.display[index]
}

// All iterates over the display forms, in order.
func (ab *Alphabet) All() iter.Seq[string] {
	return slices.Values(ab.display)
}

// Entries iterates over positions and display forms, in order.
func (ab *Alphabet) Entries() iter.Seq2[int, string] {
	return slices.All(ab.display)
}

// Decode concatenates the decimal positions of a run of symbols.
// It fails on an empty run or on a symbol outside the alphabet.
func (ab *Alphabet) Decode(symbols []string) (text string, ok bool) {
	if len(symbols) == 0 {
		return
	}

	var sb strings.Builder
	for _, sym := range symbols {
		index, found := ab.index[sym]
		if !found {
			return
		}
		sb.WriteString(strconv.Itoa(index))
	}

	return sb.String(), true
}

// Format renders a decimal number with a digit alphabet.
func (ab *Alphabet) Format(value int) string {
	if len(ab.display) < 10 {
		return strconv.Itoa(value)
	}

	var sb strings.Builder
	for _, ch := range strconv.Itoa(value) {
		if ch >= '0' && ch <= '9' {
			sb.WriteString(ab.display[ch-'0'])
		} else {
			sb.WriteRune(ch)
		}
	}

	return sb.String()
}
