package robot

import (
	"github.com/ezrec/lovelace/vm"
)

// PredicateKind selects the test of a Predicate.
type PredicateKind int

//go:generate go tool stringer -linecomment -type=PredicateKind
const (
	PRED_WALL   = PredicateKind(0) // wall
	PRED_FREE   = PredicateKind(1) // free
	PRED_FINISH = PredicateKind(2) // finish
	PRED_COLOR  = PredicateKind(3) // color
	PRED_TEMP   = PredicateKind(4) // temp
)

// Symbol returns the predicate head symbol.
func (kind PredicateKind) Symbol() string {
	return Predicates.Display(int(kind))
}

// Predicate is the condition of an if or while block.
type Predicate struct {
	Kind  PredicateKind
	Dir   Direction  // PRED_WALL, PRED_FREE
	Color Color      // PRED_COLOR
	Cmp   Comparator // PRED_TEMP
	Value int64      // PRED_TEMP
}

// Eval tests the predicate for a robot at pos.
func (pred Predicate) Eval(grid *Grid, pos Point) bool {
	switch pred.Kind {
	case PRED_WALL:
		return grid.Blocked(pos.Add(pred.Dir.Delta()))
	case PRED_FREE:
		return !grid.Blocked(pos.Add(pred.Dir.Delta()))
	case PRED_FINISH:
		return pos == grid.Finish
	case PRED_COLOR:
		return grid.Cell(pos).Color == pred.Color
	case PRED_TEMP:
		return pred.Cmp.Compare(grid.Cell(pos).Temp, pred.Value)
	}
	return false
}

// String renders the predicate in canonical symbols.
func (pred Predicate) String() string {
	text := pred.Kind.Symbol()
	switch pred.Kind {
	case PRED_WALL, PRED_FREE:
		text += pred.Dir.Symbol()
	case PRED_COLOR:
		text += pred.Color.Symbol()
	case PRED_TEMP:
		text += pred.Cmp.Symbol() + formatKeycaps(pred.Value)
	}
	return text
}

// parsePredicate decodes the symbols after an if or while opcode.
func parsePredicate(symbols []string) (pred Predicate, err error) {
	if len(symbols) == 0 {
		err = &vm.ErrOperand{Class: f("condition")}
		return
	}

	index, ok := Predicates.Index(symbols[0])
	if !ok {
		err = &vm.ErrOperand{Symbol: symbols[0], Class: f("condition")}
		return
	}
	pred.Kind = PredicateKind(index)
	args := symbols[1:]

	switch pred.Kind {
	case PRED_WALL, PRED_FREE:
		if len(args) != 1 {
			err = &vm.ErrShape{Opcode: pred.Kind.Symbol(), Shape: pred.Kind.Symbol() + " " + f("<direction>")}
			return
		}
		pred.Dir, err = parseDirection(args[0])
	case PRED_FINISH:
		if len(args) != 0 {
			err = &vm.ErrShape{Opcode: pred.Kind.Symbol(), Shape: pred.Kind.Symbol()}
			return
		}
	case PRED_COLOR:
		if len(args) != 1 {
			err = &vm.ErrShape{Opcode: pred.Kind.Symbol(), Shape: pred.Kind.Symbol() + " " + f("<color>")}
			return
		}
		pred.Color, err = parseColor(args[0])
	case PRED_TEMP:
		if len(args) == 0 {
			err = &vm.ErrShape{Opcode: pred.Kind.Symbol(), Shape: pred.Kind.Symbol() + " " + f("<comparison> <keycap>...")}
			return
		}
		var used int
		pred.Cmp, used, err = parseComparator(args)
		if err != nil {
			return
		}
		pred.Value, err = parseKeycaps(args[used:])
	}

	return
}

// parseComparator decodes a one or two symbol comparator.
func parseComparator(symbols []string) (cmp Comparator, used int, err error) {
	index, ok := Comparators.Index(symbols[0])
	if !ok {
		err = &vm.ErrOperand{Symbol: symbols[0], Class: f("comparison")}
		return
	}
	cmp = Comparator(index)
	used = 1

	if len(symbols) > 1 && symbols[1] == Comparators.Symbol(int(CMP_EQ)) {
		switch cmp {
		case CMP_GT:
			cmp, used = CMP_GE, 2
		case CMP_LT:
			cmp, used = CMP_LE, 2
		}
	}

	return
}

func parseDirection(sym string) (dir Direction, err error) {
	index, ok := Directions.Index(sym)
	if !ok {
		err = &vm.ErrOperand{Symbol: sym, Class: f("direction")}
		return
	}
	dir = Direction(index)
	return
}

func parseColor(sym string) (c Color, err error) {
	c, ok := colorOf(sym)
	if !ok {
		err = &vm.ErrOperand{Symbol: sym, Class: f("color")}
	}
	return
}
