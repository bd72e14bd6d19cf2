package classic

import (
	"iter"
	"math/rand/v2"
	"strconv"

	"github.com/ezrec/lovelace/internal"
	"github.com/ezrec/lovelace/vm"
)

// DOMAIN_NAME names the classic domain in labs and on the command line.
const DOMAIN_NAME = "classic"

// Domain runs classic programs for the batch emulator.
type Domain struct {
	Verbose bool       // If set, parsing and execution are logged.
	Rand    *rand.Rand // Random source of every run; nil uses the global source.
}

func (dom *Domain) Name() string {
	return DOMAIN_NAME
}

// Compile parses source into a *Program.
func (dom *Domain) Compile(source string) (code vm.Code, err error) {
	asm := &Assembler{Verbose: dom.Verbose}
	prog, err := asm.Parse(source)
	if err != nil {
		return
	}

	code = prog
	return
}

// Execute runs code compiled by Compile against a numeric input.
func (dom *Domain) Execute(code vm.Code, input string, cfg vm.Config) (res vm.Result) {
	prog, ok := code.(*Program)
	if !ok {
		res.Fail(vm.ErrCodeDomain)
		return
	}

	m := NewMachine(prog, input)
	m.Verbose = dom.Verbose
	m.Rand = dom.Rand

	return m.Run(cfg)
}

// Listing iterates over the source lines and canonical text of code.
func (dom *Domain) Listing(code vm.Code) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		prog, ok := code.(*Program)
		if !ok {
			return
		}
		for _, ins := range prog.All() {
			if !yield(ins.LineNo, ins.String()) {
				return
			}
		}
	}
}

// Symbols iterates over every symbol of the domain and its meaning.
func (dom *Domain) Symbols() iter.Seq2[string, string] {
	return internal.Concat2(
		internal.Describe(Opcodes.Entries(), func(n int) string { return Op(n).String() }),
		internal.Describe(Registers.Entries(), func(n int) string { return f("register %d", n) }),
		internal.Describe(Digits.Entries(), strconv.Itoa),
	)
}
