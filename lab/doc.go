// Package lab loads lab files and runs them.
//
// A lab file is HCL. It names a domain, holds a program and the tests to run
// it against:
//
//	domain  = "classic"
//	program = file("squares.txt")
//	seed    = 7
//
//	limits {
//	  steps = 1000
//	}
//
//	test "twelve" {
//	  input  = "12"
//	  expect = "144"
//	  check  = "vars['🐶'] == 144"
//	}
//
// Robot scenarios are usually written with jsonencode():
//
//	test "corner" {
//	  input = jsonencode({ size = [3, 3], expect = { finishReached = true } })
//	}
//
// The expected output is compared exactly; a mismatch warns with a patch.
// A check is a Starlark expression over the globals input, output, steps,
// status, line, issues and vars; a false check warns.
package lab
