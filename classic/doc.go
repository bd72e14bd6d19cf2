// Package classic is the symbolic arithmetic machine: 25 integer registers
// named by animal and clock symbols, driven by a small set of pictographic
// commands.
//
// A program is parsed once with Parse into a Program, and may then be run
// any number of times with Execute, each run against its own numeric input.
package classic
