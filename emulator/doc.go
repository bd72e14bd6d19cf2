// Package emulator runs one compiled program against a batch of test inputs.
//
// A Domain compiles source text once. Every test then gets a fresh machine,
// and the Report tallies the results by status along with the total steps.
package emulator
