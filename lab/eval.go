package lab

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/ezrec/lovelace/emulator"
)

// evalContext of a lab file in dir.
//
// The symbol variable maps a domain and a meaning to its symbol, so that
// symbol["robot"]["red"] is "🌹".
func evalContext(dir string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"symbol": symbolTable(),
		},
		Functions: map[string]function.Function{
			"file":       fileFunc(dir),
			"jsonencode": stdlib.JSONEncodeFunc,
			"format":     stdlib.FormatFunc,
			"join":       stdlib.JoinFunc,
			"concat":     stdlib.ConcatFunc,
			"merge":      stdlib.MergeFunc,
			"range":      stdlib.RangeFunc,
			"upper":      stdlib.UpperFunc,
			"lower":      stdlib.LowerFunc,
			"trimspace":  stdlib.TrimSpaceFunc,
			"chomp":      stdlib.ChompFunc,
		},
	}
}

func symbolTable() cty.Value {
	domains := map[string]cty.Value{}
	for _, name := range emulator.Domains() {
		dom, err := emulator.NewDomain(name, emulator.Options{})
		if err != nil {
			continue
		}
		table := map[string]cty.Value{}
		for sym, meaning := range dom.Symbols() {
			table[meaning] = cty.StringVal(sym)
		}
		domains[name] = cty.MapVal(table)
	}

	return cty.ObjectVal(domains)
}

// fileFunc reads a file, relative to dir unless absolute.
func fileFunc(dir string) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "path", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			path := args[0].AsString()
			if !filepath.IsAbs(path) {
				path = filepath.Join(dir, path)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return cty.UnknownVal(cty.String), err
			}
			return cty.StringVal(string(data)), nil
		},
	})
}
