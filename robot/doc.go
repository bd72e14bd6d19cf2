// Package robot is the grid robot machine.
//
// A robot walks a rectangular grid of cells, paints them and branches on
// predicates about its surroundings. Each run starts from a scenario, a JSON
// document with the grid size, start and finish cells, blocked cells,
// prepared cells and optional expectations checked after the run.
package robot
