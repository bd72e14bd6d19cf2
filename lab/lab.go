// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package lab

import (
	"errors"
	"os"
	"path/filepath"
	"slices"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/ezrec/lovelace/emulator"
	"github.com/ezrec/lovelace/vm"
)

// Test of a lab.
type Test struct {
	Name   string  // Label of the test block.
	Input  string  // Test input: numbers for classic, a scenario for robot.
	Expect *string // Expected output, if any.
	Check  string  // Starlark expression that must be true, if any.
}

// Lab is a program of a domain, its bounds and its tests.
type Lab struct {
	Filename string    // File the lab was parsed from.
	Domain   string    // Domain name.
	Program  string    // Program source.
	Seed     uint64    // Random seed; 0 is unseeded.
	Config   vm.Config // Bounds of every test.
	Tests    []Test
}

type hclLabFile struct {
	Domain  string     `hcl:"domain"`
	Program string     `hcl:"program"`
	Seed    *uint64    `hcl:"seed,optional"`
	Limits  *hclLimits `hcl:"limits,block"`
	Tests   []*hclTest `hcl:"test,block"`
}

type hclLimits struct {
	Steps *int `hcl:"steps,optional"`
	Yield *int `hcl:"yield,optional"`
}

type hclTest struct {
	Name   string  `hcl:"name,label"`
	Input  *string `hcl:"input,optional"`
	Expect *string `hcl:"expect,optional"`
	Check  *string `hcl:"check,optional"`
}

// Load a lab file.
func Load(path string) (lab *Lab, err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return
	}

	lab, err = Parse(src, path)
	return
}

// Parse lab source. Files named by file() are relative to the directory of
// filename.
func Parse(src []byte, filename string) (lab *Lab, err error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		err = errors.Join(ErrLabInvalid, diags)
		return
	}

	var parsed hclLabFile
	diags = gohcl.DecodeBody(file.Body, evalContext(filepath.Dir(filename)), &parsed)
	if diags.HasErrors() {
		err = errors.Join(ErrLabInvalid, diags)
		return
	}

	if !slices.Contains(emulator.Domains(), parsed.Domain) {
		err = errors.Join(ErrLabInvalid, emulator.ErrDomain(parsed.Domain))
		return
	}

	lab = &Lab{
		Filename: filename,
		Domain:   parsed.Domain,
		Program:  parsed.Program,
	}

	if parsed.Seed != nil {
		lab.Seed = *parsed.Seed
	}

	if parsed.Limits != nil {
		if parsed.Limits.Steps != nil {
			lab.Config.HardStepLimit = *parsed.Limits.Steps
		}
		if parsed.Limits.Yield != nil {
			lab.Config.YieldEvery = *parsed.Limits.Yield
		}
	}
	lab.Config = lab.Config.Normalized()

	for _, ht := range parsed.Tests {
		test := Test{Name: ht.Name, Expect: ht.Expect}
		if ht.Input != nil {
			test.Input = *ht.Input
		}
		if ht.Check != nil {
			test.Check = *ht.Check
		}
		lab.Tests = append(lab.Tests, test)
	}

	return
}

// Inputs of every test, in order.
func (lab *Lab) Inputs() (inputs []string) {
	for _, test := range lab.Tests {
		inputs = append(inputs, test.Input)
	}
	return
}
