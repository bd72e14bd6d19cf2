package robot

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Expectation is the set of checks made after a normal finish.
// Absent checks are nil, or COLOR_NONE for colors.
type Expectation struct {
	FinishReached *bool
	Position      *Point
	CurrentTemp   *int64
	CurrentColor  Color
	FinishColor   Color
	FinishTemp    *int64
	Cells         []CellExpectation
}

// CellExpectation checks one cell. An At outside the grid is a mismatch.
type CellExpectation struct {
	At    Point
	Temp  *int64
	Color Color
}

// Issue names, in evaluation order.
const (
	ISSUE_FINISH_REACHED = "finishReached"
	ISSUE_POSITION       = "position"
	ISSUE_CURRENT_TEMP   = "currentTemp"
	ISSUE_CURRENT_COLOR  = "currentColor"
	ISSUE_FINISH_COLOR   = "finishColor"
	ISSUE_FINISH_TEMP    = "finishTemp"
	ISSUE_CELLS_RANGE    = "cells.outOfRange"
	ISSUE_LIMIT          = "limit"
)

func parseExpectation(v cty.Value) (exp *Expectation) {
	if !isComposite(v) {
		return
	}
	exp = &Expectation{}

	if reached := attrOf(v, "finishReached"); reached.IsKnown() &&
		!reached.IsNull() && reached.Type().Equals(cty.Bool) {
		value := reached.True()
		exp.FinishReached = &value
	}

	if position := attrOf(v, "position"); isComposite(position) &&
		!position.Type().IsObjectType() && position.LengthInt() == 2 {
		at := pairOf(position, Point{X: -1, Y: -1})
		exp.Position = &at
	}

	exp.CurrentTemp = optionalNumber(attrOf(v, "currentTemp"))
	exp.CurrentColor = colorValueOf(attrOf(v, "currentColor"))
	exp.FinishColor = colorValueOf(attrOf(v, "finishColor"))
	exp.FinishTemp = optionalNumber(attrOf(v, "finishTemp"))

	for item := range elementsOf(attrOf(v, "cells")) {
		if !isComposite(item) {
			continue
		}
		exp.Cells = append(exp.Cells, CellExpectation{
			At: Point{
				X: coordOf(attrOf(item, "x"), -1),
				Y: coordOf(attrOf(item, "y"), -1),
			},
			Temp:  optionalNumber(attrOf(item, "temp")),
			Color: colorValueOf(attrOf(item, "color")),
		})
	}

	return
}

func optionalNumber(v cty.Value) *int64 {
	n, ok := numberOf(v)
	if !ok {
		return nil
	}
	return &n
}

// Evaluate returns the names of the checks the final state fails.
func (exp *Expectation) Evaluate(grid *Grid, pos Point) (issues []string) {
	if exp == nil {
		return
	}

	here := grid.Cell(pos)
	finish := grid.Cell(grid.Finish)

	if exp.FinishReached != nil && *exp.FinishReached != (pos == grid.Finish) {
		issues = append(issues, ISSUE_FINISH_REACHED)
	}
	if exp.Position != nil && *exp.Position != pos {
		issues = append(issues, ISSUE_POSITION)
	}
	if exp.CurrentTemp != nil && *exp.CurrentTemp != here.Temp {
		issues = append(issues, ISSUE_CURRENT_TEMP)
	}
	if exp.CurrentColor != COLOR_NONE && exp.CurrentColor != here.Color {
		issues = append(issues, ISSUE_CURRENT_COLOR)
	}
	if exp.FinishColor != COLOR_NONE && exp.FinishColor != finish.Color {
		issues = append(issues, ISSUE_FINISH_COLOR)
	}
	if exp.FinishTemp != nil && *exp.FinishTemp != finish.Temp {
		issues = append(issues, ISSUE_FINISH_TEMP)
	}

	for _, check := range exp.Cells {
		if !grid.Inside(check.At) {
			issues = append(issues, ISSUE_CELLS_RANGE)
			continue
		}
		cell := grid.Cell(check.At)
		if check.Temp != nil && *check.Temp != cell.Temp {
			issues = append(issues, fmt.Sprintf("cells.temp[%d,%d]", check.At.X, check.At.Y))
		}
		if check.Color != COLOR_NONE && check.Color != cell.Color {
			issues = append(issues, fmt.Sprintf("cells.color[%d,%d]", check.At.X, check.At.Y))
		}
	}

	return
}
