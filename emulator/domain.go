// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"iter"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/ezrec/lovelace/classic"
	"github.com/ezrec/lovelace/robot"
	"github.com/ezrec/lovelace/vm"
)

// Domain is a pictographic language: its parser, its machine and its symbols.
type Domain interface {
	// Name of the domain, as used on the command line and in labs.
	Name() string
	// Compile source text into code for Execute.
	Compile(source string) (code vm.Code, err error)
	// Execute code against a single test input on a fresh machine.
	Execute(code vm.Code, input string, cfg vm.Config) (res vm.Result)
	// Listing of code, as source line and canonical instruction text.
	Listing(code vm.Code) iter.Seq2[int, string]
	// Symbols of the domain and their meaning.
	Symbols() iter.Seq2[string, string]
}

var _ Domain = (*classic.Domain)(nil)
var _ Domain = (*robot.Domain)(nil)

// Options of a domain created by NewDomain.
type Options struct {
	Verbose bool   // If set, the domain logs parsing and execution.
	Seed    uint64 // Seed of the random source; 0 leaves it unseeded.
}

var _domains = map[string]func(opts Options) Domain{
	classic.DOMAIN_NAME: func(opts Options) Domain {
		dom := &classic.Domain{Verbose: opts.Verbose}
		if opts.Seed != 0 {
			dom.Rand = rand.New(rand.NewPCG(opts.Seed, opts.Seed))
		}
		return dom
	},
	robot.DOMAIN_NAME: func(opts Options) Domain {
		return &robot.Domain{Verbose: opts.Verbose}
	},
}

// Domains returns the sorted names of every domain.
func Domains() []string {
	return slices.Sorted(maps.Keys(_domains))
}

// NewDomain creates the domain called name.
func NewDomain(name string, opts Options) (dom Domain, err error) {
	create, ok := _domains[name]
	if !ok {
		err = ErrDomain(name)
		return
	}

	dom = create(opts)
	return
}
