package symbol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Line    string
		Symbols []string
	}){
		{Line: "", Symbols: nil},
		{Line: " \t  ", Symbols: nil},
		{Line: "\uFE0F\uFE0E", Symbols: nil},
		{Line: "🌞 🐶 ✌️🤟", Symbols: []string{"🌞", "🐶", "✌", "🤟"}},
		{Line: "😀🐶\r", Symbols: []string{"😀", "🐶"}},
		{Line: "🔂 1️⃣ 0️⃣", Symbols: []string{"🔂", "1⃣", "0⃣"}},
		{Line: "🌡️🔥🟰5⃣", Symbols: []string{"🌡", "🔥", "🟰", "5⃣"}},
		{Line: "🚶 ✈️", Symbols: []string{"🚶", "✈"}},
		{Line: "a b c", Symbols: []string{"a", "b", "c"}},
	}

	for _, entry := range table {
		assert.Equal(entry.Symbols, Normalize(entry.Line), "%q", entry.Line)
	}
}

func TestCompact(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("🛤🚠", Compact(" 🛤\uFE0F \uFE0E🚠\n"))
	assert.Equal("", Compact("\t \u3000"))
	assert.Equal("🐶", Compact("\uFEFF🐶\uFEFF"))
}

func TestLines(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{""}, Lines(""))
	assert.Equal([]string{"a", "b", "c", ""}, Lines("a\r\nb\rc\n"))
}

func FuzzNormalize(f *testing.F) {
	f.Add("🌞🐶📌🆚")
	f.Add("🔂 1️⃣")
	f.Add("\xff\xfe 🐶")

	f.Fuzz(func(t *testing.T, line string) {
		symbols := Normalize(line)
		assert.Equal(t, Compact(line), strings.Join(symbols, ""))
		for _, sym := range symbols {
			assert.NotEmpty(t, sym)
		}
	})
}
