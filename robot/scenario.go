package robot

import (
	"fmt"
	"iter"
	"math/big"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/ezrec/lovelace/symbol"
)

const (
	DEFAULT_WIDTH  = 5
	DEFAULT_HEIGHT = 5
)

// Scenario is the decoded input of one robot run.
type Scenario struct {
	Grid   *Grid        // Grid with finish, blocked and prepared cells.
	Start  Point        // Starting position, on the grid.
	Expect *Expectation // Checks after a normal finish; nil for none.
}

// ParseScenario decodes a JSON scenario.
//
// Decoding is lenient: numbers may be given as numeric strings, booleans
// count as 1 and 0, and null as 0. Malformed sizes and coordinates fall back
// to their defaults, and cells outside the grid are ignored. JSON that is not
// an object is the default scenario. Only text that is not JSON fails, with
// ErrScenario; empty text is the empty scenario.
func ParseScenario(text string) (scn *Scenario, err error) {
	if text == "" {
		text = "{}"
	}
	buf := []byte(text)

	ty, err := ctyjson.ImpliedType(buf)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrScenario, err)
		return
	}
	raw, err := ctyjson.Unmarshal(buf, ty)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrScenario, err)
		return
	}

	size := pairOf(attrOf(raw, "size"), Point{X: DEFAULT_WIDTH, Y: DEFAULT_HEIGHT})
	grid := NewGrid(size.X, size.Y)

	start := pairOf(attrOf(raw, "start"), Point{})
	grid.Finish = grid.Clamp(pairOf(attrOf(raw, "finish"), grid.Finish))

	for item := range elementsOf(attrOf(raw, "blocked")) {
		grid.Block(pairOf(item, Point{X: -1, Y: -1}))
	}

	for item := range elementsOf(attrOf(raw, "cells")) {
		if !isComposite(item) {
			continue
		}
		at := Point{
			X: coordOf(attrOf(item, "x"), -1),
			Y: coordOf(attrOf(item, "y"), -1),
		}
		if !grid.Inside(at) {
			continue
		}
		cell := grid.Cell(at)
		if temp, ok := numberOf(attrOf(item, "temp")); ok {
			cell.Temp = temp
		}
		if color := cellColorOf(attrOf(item, "color")); color != COLOR_NONE {
			cell.Color = color
		}
		grid.SetCell(at, cell)
	}

	scn = &Scenario{
		Grid:   grid,
		Start:  grid.Clamp(start),
		Expect: parseExpectation(attrOf(raw, "expect")),
	}

	return
}

// ParseColor decodes a color symbol, or an English or Russian color name.
// Apart from emoji presentation selectors the match is exact.
func ParseColor(text string) (c Color, ok bool) {
	text = strings.ReplaceAll(text, string(symbol.VS16), "")
	if c, ok = colorOf(text); ok {
		return
	}
	c, ok = colorByName[text]
	return
}

// attrOf returns an attribute of an object value. An absent attribute is
// cty.DynamicVal, so it is told apart from an explicit null.
func attrOf(v cty.Value, name string) cty.Value {
	if !v.IsKnown() || v.IsNull() {
		return cty.DynamicVal
	}
	if !v.Type().IsObjectType() || !v.Type().HasAttribute(name) {
		return cty.DynamicVal
	}
	return v.GetAttr(name)
}

// isComposite reports whether v is a JSON object or array.
func isComposite(v cty.Value) bool {
	if !v.IsKnown() || v.IsNull() {
		return false
	}
	ty := v.Type()
	return ty.IsObjectType() || ty.IsTupleType() || ty.IsListType()
}

// elementsOf iterates over the elements of a JSON array.
func elementsOf(v cty.Value) iter.Seq[cty.Value] {
	return func(yield func(cty.Value) bool) {
		if !isComposite(v) || v.Type().IsObjectType() {
			return
		}
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			if !yield(elem) {
				return
			}
		}
	}
}

var (
	int64Ceil  = new(big.Float).SetMantExp(big.NewFloat(1), 63)
	int64Floor = new(big.Float).Neg(int64Ceil)
)

// numberOf coerces v to an integer, truncating toward zero.
// An absent value, or one that is not numeric, is not ok.
func numberOf(v cty.Value) (n int64, ok bool) {
	if !v.IsKnown() {
		return
	}
	if v.IsNull() {
		return 0, true
	}

	switch ty := v.Type(); {
	case ty.Equals(cty.Bool):
		if v.True() {
			return 1, true
		}
		return 0, true
	case ty.Equals(cty.String):
		text := strings.TrimSpace(v.AsString())
		if len(text) == 0 {
			return 0, true
		}
		var err error
		v, err = convert.Convert(cty.StringVal(text), cty.Number)
		if err != nil {
			return
		}
	case ty.Equals(cty.Number):
	default:
		return
	}

	bf := v.AsBigFloat()
	if bf.IsInf() || bf.Cmp(int64Ceil) >= 0 || bf.Cmp(int64Floor) < 0 {
		return
	}
	n, _ = bf.Int64()

	return n, true
}

// coordOf coerces v to a non-negative integer, or returns fallback.
func coordOf(v cty.Value, fallback int) int {
	n, ok := numberOf(v)
	if !ok || n < 0 || n > int64(^uint(0)>>1) {
		return fallback
	}
	return int(n)
}

// pairOf decodes a two element [x, y] array; each malformed component
// falls back on its own.
func pairOf(v cty.Value, fallback Point) Point {
	if !isComposite(v) || v.Type().IsObjectType() || v.LengthInt() != 2 {
		return fallback
	}
	x := v.Index(cty.NumberIntVal(0))
	y := v.Index(cty.NumberIntVal(1))
	return Point{X: coordOf(x, fallback.X), Y: coordOf(y, fallback.Y)}
}

// colorValueOf decodes an expected color string; anything else is COLOR_NONE.
func colorValueOf(v cty.Value) Color {
	if !v.IsKnown() || v.IsNull() || !v.Type().Equals(cty.String) {
		return COLOR_NONE
	}
	c, _ := ParseColor(v.AsString())
	return c
}

// cellColorOf decodes a scenario cell color, which may carry surrounding
// white space.
func cellColorOf(v cty.Value) Color {
	if !v.IsKnown() || v.IsNull() || !v.Type().Equals(cty.String) {
		return COLOR_NONE
	}
	c, _ := ParseColor(strings.TrimSpace(v.AsString()))
	return c
}
