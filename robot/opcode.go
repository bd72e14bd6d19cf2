package robot

import (
	"strings"
)

// Op is an instruction operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_MOVE       = Op(0) // move
	OP_PAINT      = Op(1) // paint
	OP_IF         = Op(2) // if
	OP_WHILE      = Op(3) // while
	OP_LOOP_COUNT = Op(4) // loop-count
	OP_END        = Op(5) // end
)

// Symbol returns the opcode symbol.
func (op Op) Symbol() string {
	return Opcodes.Display(int(op))
}

// Opens reports whether the op opens a block.
func (op Op) Opens() bool {
	return op == OP_IF || op == OP_WHILE || op == OP_LOOP_COUNT
}

// Loops reports whether the end of the op's block jumps back to it.
func (op Op) Loops() bool {
	return op == OP_WHILE || op == OP_LOOP_COUNT
}

// Shape describes the operand form of the op, for messages.
func (op Op) Shape() string {
	words := []string{op.Symbol()}
	switch op {
	case OP_MOVE:
		words = append(words, f("<direction>"))
	case OP_PAINT:
		words = append(words, f("<color>"))
	case OP_IF, OP_WHILE:
		words = append(words, f("<condition>"))
	case OP_LOOP_COUNT:
		words = append(words, f("<keycap>..."))
	}
	return strings.Join(words, " ")
}

func opcodeOf(sym string) (op Op, ok bool) {
	index, ok := Opcodes.Index(sym)
	op = Op(index)
	return
}

// Direction of a move or of a wall test.
type Direction int

//go:generate go tool stringer -linecomment -type=Direction
const (
	DIR_UP    = Direction(0) // up
	DIR_DOWN  = Direction(1) // down
	DIR_RIGHT = Direction(2) // right
	DIR_LEFT  = Direction(3) // left
)

var dirDelta = [...]Point{
	DIR_UP:    {0, -1},
	DIR_DOWN:  {0, 1},
	DIR_RIGHT: {1, 0},
	DIR_LEFT:  {-1, 0},
}

// Symbol returns the direction symbol.
func (dir Direction) Symbol() string {
	return Directions.Display(int(dir))
}

// Delta returns the one cell offset of the direction.
func (dir Direction) Delta() Point {
	return dirDelta[dir]
}

// Color of a cell. The zero Color is an unpainted cell.
type Color int

//go:generate go tool stringer -linecomment -type=Color
const (
	COLOR_NONE   = Color(0) // none
	COLOR_RED    = Color(1) // red
	COLOR_YELLOW = Color(2) // yellow
	COLOR_GREEN  = Color(3) // green
	COLOR_PURPLE = Color(4) // purple
)

// Color names accepted in scenarios, besides the symbols.
var colorByName = map[string]Color{
	"red":        COLOR_RED,
	"красный":    COLOR_RED,
	"yellow":     COLOR_YELLOW,
	"желтый":     COLOR_YELLOW,
	"жёлтый":     COLOR_YELLOW,
	"green":      COLOR_GREEN,
	"зеленый":    COLOR_GREEN,
	"зелёный":    COLOR_GREEN,
	"purple":     COLOR_PURPLE,
	"фиолетовый": COLOR_PURPLE,
}

// Symbol returns the color symbol, or "" for COLOR_NONE.
func (c Color) Symbol() string {
	if c <= COLOR_NONE || int(c) > Colors.Len() {
		return ""
	}
	return Colors.Display(int(c) - 1)
}

// colorOf decodes a color symbol.
func colorOf(sym string) (c Color, ok bool) {
	index, ok := Colors.Index(sym)
	if ok {
		c = Color(index + 1)
	}
	return
}

// Comparator of a temperature test.
type Comparator int

//go:generate go tool stringer -linecomment -type=Comparator
const (
	CMP_EQ = Comparator(0) // =
	CMP_NE = Comparator(1) // !=
	CMP_GT = Comparator(2) // >
	CMP_LT = Comparator(3) // <
	CMP_GE = Comparator(4) // >=
	CMP_LE = Comparator(5) // <=
)

// Symbol returns the comparator in symbols.
func (cmp Comparator) Symbol() string {
	switch cmp {
	case CMP_GE:
		return CMP_GT.Symbol() + CMP_EQ.Symbol()
	case CMP_LE:
		return CMP_LT.Symbol() + CMP_EQ.Symbol()
	}
	return Comparators.Display(int(cmp))
}

// Compare applies the comparator to a and b.
func (cmp Comparator) Compare(a, b int64) bool {
	switch cmp {
	case CMP_EQ:
		return a == b
	case CMP_NE:
		return a != b
	case CMP_GT:
		return a > b
	case CMP_LT:
		return a < b
	case CMP_GE:
		return a >= b
	case CMP_LE:
		return a <= b
	}
	return false
}
