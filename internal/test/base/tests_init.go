// Package base wires the self checks of the library base layer into one
// fixed-order run.
package base

import (
	"github.com/MarcelRaschke/ccxt/common/rlog"
	"github.com/MarcelRaschke/ccxt/common/rootpath"
)

// check is one named, fallible self check
type check struct {
	name string
	fn   func() error
}

// baseChecks run in this order; the order is part of the contract
var baseChecks = []check{
	{"language-specific", checkLanguageSpecific},
	{"extend", checkExtend},
	{"cryptography", checkCryptography},
	{"datetime", checkDatetime},
	{"number", checkNumber},
	{"safe-methods", checkSafeMethods},
}

// RootDir returns the repository root, four parent directories up from this
// source file.
func RootDir() string {
	return rootpath.Resolve(4)
}

// Run registers the repository root on the fixture search path and executes
// every base check once, in order. The first failing check aborts the run
// and its error is returned unchanged.
func Run() error {
	rootpath.Register(RootDir())
	return run(baseChecks)
}

func run(checks []check) error {
	for _, c := range checks {
		rlog.Printf("base check %s\n", c.name)
		if err := c.fn(); err != nil {
			return err
		}
	}
	return nil
}

// Names returns the check names in execution order
func Names() []string {
	out := make([]string, 0, len(baseChecks))
	for _, c := range baseChecks {
		out = append(out, c.name)
	}
	return out
}
