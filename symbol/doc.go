// Package symbol turns pictographic source text into symbols.
//
// A symbol is one grapheme cluster of a line after variation selectors and
// white space have been removed. Several legal symbols are made of more than
// one code point (keycap digits are a digit followed by U+20E3), so lines are
// split on grapheme cluster boundaries rather than on runes.
//
// Alphabets are the closed, immutable symbol tables the interpreters classify
// operands against.
package symbol
