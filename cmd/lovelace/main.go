// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/lovelace/emulator"
	"github.com/ezrec/lovelace/lab"
	"github.com/ezrec/lovelace/translate"
	"github.com/ezrec/lovelace/vm"
)

var f = translate.From

var errUsage = errors.New(f("one of -c or -l is required"))

func main() {
	failed, err := run(os.Stdout, os.Stderr, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
	if failed {
		os.Exit(1)
	}
}

// readText reads a file, or stdin for "-".
func readText(path string) (text string, err error) {
	var data []byte
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return
	}

	text = string(data)
	return
}

// run the command line in args. failed is set when any test errored.
func run(outW, errW io.Writer, args []string) (failed bool, err error) {
	var domain string
	var compile string
	var labFile string
	var inputs []string
	var steps int
	var yield int
	var seed uint64
	var format string
	var symbols bool
	var listing bool
	var logLevel string
	var logFormat string
	var lang string
	var verbose bool

	flags := flag.NewFlagSet("lovelace", flag.ContinueOnError)
	flags.SetOutput(errW)

	flags.StringVar(&domain, "d", "classic", "Domain: "+strings.Join(emulator.Domains(), ", "))
	flags.StringVar(&compile, "c", "", "Program file to run, - for stdin")
	flags.StringVar(&labFile, "l", "", ".hcl lab file to run")
	flags.Func("i", "Test input (repeatable)", func(text string) error {
		inputs = append(inputs, text)
		return nil
	})
	flags.Func("I", "Test input file (repeatable)", func(path string) (err error) {
		text, err := readText(path)
		if err != nil {
			return
		}
		inputs = append(inputs, text)
		return
	})
	flags.IntVar(&steps, "steps", 0, "Step limit of each test (default 200000)")
	flags.IntVar(&yield, "yield", 0, "Steps between yields (default 1500)")
	flags.Uint64Var(&seed, "seed", 0, "Random seed, 0 for unseeded")
	flags.StringVar(&format, "f", lab.FORMAT_TEXT, "Report format: "+strings.Join(lab.Formats(), ", "))
	flags.BoolVar(&symbols, "symbols", false, "List the symbols of the domain")
	flags.BoolVar(&listing, "listing", false, "List the compiled program, do not execute")
	flags.StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "text", "Log format: text, json")
	flags.StringVar(&lang, "lang", "", "Message language, for example en-US or ru")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")

	err = flags.Parse(args)
	if err != nil {
		return
	}

	if flags.NArg() != 0 {
		err = fmt.Errorf("unknown arguments: %v", flags.Args())
		return
	}

	if len(lang) != 0 {
		translate.Use(lang)
	}

	if verbose {
		logLevel = "debug"
	}
	logger := lab.NewLogger(logLevel, logFormat, errW)
	opts := emulator.Options{Verbose: verbose, Seed: seed}

	var report *emulator.Report

	switch {
	case len(labFile) != 0:
		var lb *lab.Lab
		lb, err = lab.Load(labFile)
		if err != nil {
			return
		}
		if steps > 0 {
			lb.Config.HardStepLimit = steps
		}
		if yield > 0 {
			lb.Config.YieldEvery = yield
		}
		if listing || symbols {
			err = describe(outW, lb.Domain, lb.Program, symbols, opts)
			return
		}
		report, err = lb.Run(opts, logger)
		if err != nil {
			return
		}
	case symbols:
		err = describe(outW, domain, "", true, opts)
		return
	case len(compile) != 0:
		var source string
		source, err = readText(compile)
		if err != nil {
			return
		}
		if listing {
			err = describe(outW, domain, source, false, opts)
			return
		}
		var dom emulator.Domain
		dom, err = emulator.NewDomain(domain, opts)
		if err != nil {
			return
		}
		emu := emulator.NewEmulator(dom)
		emu.Logger = logger
		emu.Config = vm.Config{HardStepLimit: steps, YieldEvery: yield}.Normalized()
		report = emu.Run(source, inputs)
	default:
		flags.Usage()
		err = errUsage
		return
	}

	err = lab.Encode(outW, report, format)
	if err != nil {
		return
	}

	failed = report.Error > 0
	return
}

// describe writes the symbols of a domain, or the listing of a program.
func describe(outW io.Writer, domain string, source string, symbols bool, opts emulator.Options) (err error) {
	dom, err := emulator.NewDomain(domain, opts)
	if err != nil {
		return
	}

	if symbols {
		for sym, meaning := range dom.Symbols() {
			fmt.Fprintf(outW, "%v\t%v\n", sym, meaning)
		}
		return
	}

	code, err := dom.Compile(source)
	if err != nil {
		return
	}

	for lineno, text := range dom.Listing(code) {
		fmt.Fprintf(outW, "%4d\t%v\n", lineno, text)
	}

	return
}
