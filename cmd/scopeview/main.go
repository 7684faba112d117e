// This file is part of scopeview.
//
// scopeview is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// scopeview is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with scopeview.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/jetsetilly/scopeview/internal/args"
	"github.com/jetsetilly/scopeview/internal/options"
	"github.com/jetsetilly/scopeview/internal/pipeline"
	"github.com/jetsetilly/scopeview/internal/sorttree"
	"github.com/jetsetilly/scopeview/logger"
	"github.com/jetsetilly/scopeview/scopeerrors"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run wires internal/args to internal/options and invokes internal/pipeline,
// returning the process exit code per spec.md §6.5.
func run(argv []string, stdout, stderr io.Writer) int {
	logger.Clear()

	opts := options.Default()
	var help bool
	var version bool

	parser := buildParser(&opts, &help, &version)

	paths, err := parser.Parse(argv)
	if err != nil {
		return fail(stderr, err)
	}

	if help {
		fmt.Fprint(stdout, parser.HelpText())
		return 0
	}
	if version {
		fmt.Fprintln(stdout, "scopeview")
		return 0
	}

	if len(paths) == 0 {
		return fail(stderr, scopeerrors.Errorf(scopeerrors.Messages[scopeerrors.InvalidFile], "no input file given"))
	}

	if _, err := pipeline.Run(stdout, paths, opts); err != nil {
		return fail(stderr, err)
	}

	printWarnings(stderr)

	return 0
}

// printWarnings prints every condition recorded by the logger package during
// this run (unknown DWARF tags, unresolved references, and so on) to stderr,
// each prefixed per spec.md §7.
func printWarnings(stderr io.Writer) {
	var b strings.Builder
	logger.Write(&b)
	for _, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		if line == "" {
			continue
		}
		fmt.Fprintf(stderr, "Warning: %s\n", line)
	}
}

// fail reports a fatal error to stderr in the "ERROR: <message>" form
// mandated by spec.md §7 and returns the process exit code.
func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "ERROR: %s\n", err.Error())
	return 1
}

func buildParser(opts *options.ViewOptions, help, version *bool) *args.Parser {
	p := args.NewParser()

	mustAdd(p, "General", args.Argument{
		Shortcut: 'h',
		Name:     "help",
		Help:     "show this help text and exit",
		OnArg:    func() error { *help = true; return nil },
	})
	mustAdd(p, "General", args.Argument{
		Shortcut: 'v',
		Name:     "version",
		Help:     "show version information and exit",
		OnArg:    func() error { *version = true; return nil },
	})

	mustAdd(p, "Output", args.Argument{
		Shortcut:   'f',
		Name:       "format",
		ValueLabel: "text|yaml",
		Help:       "select the output format",
		OnValue: func(v string) error {
			switch v {
			case "text":
				opts.Format = options.FormatText
			case "yaml":
				opts.Format = options.FormatYAML
			default:
				return scopeerrors.Errorf(scopeerrors.Messages[scopeerrors.InvalidChoice], v, "--format")
			}
			return nil
		},
	})
	mustAdd(p, "Output", args.Argument{
		Shortcut:   's',
		Name:       "sort",
		ValueLabel: "line|name|offset",
		Help:       "select the sibling sort key",
		OnValue: func(v string) error {
			switch v {
			case "line":
				opts.Sort = sorttree.ByLine
			case "name":
				opts.Sort = sorttree.ByName
			case "offset":
				opts.Sort = sorttree.ByOffset
			default:
				return scopeerrors.Errorf(scopeerrors.Messages[scopeerrors.InvalidChoice], v, "--sort")
			}
			return nil
		},
	})
	mustAdd(p, "Output", args.Argument{
		Name:  "split",
		Help:  "write one file per compile unit, under --output-dir",
		OnArg: func() error { opts.Split = true; return nil },
	})
	mustAdd(p, "Output", args.Argument{
		Shortcut:   'o',
		Name:       "output-dir",
		ValueLabel: "DIR",
		Help:       "directory for split output",
		OnValue:    func(v string) error { opts.SplitDir = v; return nil },
	})
	mustAdd(p, "Output", args.Argument{
		Name:       "filter",
		ValueLabel: "REGEX",
		Help:       "only print objects whose qualified name matches REGEX",
		OnValue: func(v string) error {
			re, err := regexp.Compile(v)
			if err != nil {
				return scopeerrors.Errorf(scopeerrors.Messages[scopeerrors.InvalidRegex], err.Error())
			}
			opts.Filter = re
			return nil
		},
	})
	mustAdd(p, "Output", args.Argument{
		Name:       "qualified-name",
		Help:       "prefix each name with its enclosing namespace/class chain",
		OnArg:      func() error { opts.QualifiedName = true; return nil },
		OnNegative: func() error { opts.QualifiedName = false; return nil },
	})
	mustAdd(p, "Output", args.Argument{
		Name:  "show-summary",
		Help:  "print a found/printed count summary after the tree",
		OnArg: func() error { opts.ShowSummary = true; return nil },
	})
	mustAdd(p, "Output", args.Argument{
		Name:  "show-only-globals",
		Help:  "print only globally-referenced objects",
		OnArg: func() error { opts.OnlyGlobals = true; return nil },
	})
	mustAdd(p, "Output", args.Argument{
		Name:  "show-only-locals",
		Help:  "print only non-globally-referenced objects",
		OnArg: func() error { opts.OnlyLocals = true; return nil },
	})

	addShowSkip(p, "alias", &opts.Show.Alias)
	addShowSkip(p, "array", &opts.Show.Array)
	addShowSkip(p, "block", &opts.Show.Block)
	addShowSkip(p, "class", &opts.Show.Class)
	addShowSkip(p, "codeline", &opts.Show.Codeline)
	addShowSkip(p, "enum", &opts.Show.Enum)
	addShowSkip(p, "function", &opts.Show.Function)
	addShowSkip(p, "member", &opts.Show.Member)
	addShowSkip(p, "namespace", &opts.Show.Namespace)
	addShowSkip(p, "parameter", &opts.Show.Parameter)
	addShowSkip(p, "primitivetype", &opts.Show.PrimitiveType)
	addShowSkip(p, "struct", &opts.Show.Struct)
	addShowSkip(p, "template", &opts.Show.Template)
	addShowSkip(p, "typedef", &opts.Show.Typedef)
	addShowSkip(p, "union", &opts.Show.Union)
	addShowSkip(p, "using", &opts.Show.Using)
	addShowSkip(p, "variable", &opts.Show.Variable)

	mustAdd(p, "Columns", args.Argument{
		Name:  "show-offset",
		Help:  "prefix each line with its DWARF offset",
		OnArg: func() error { opts.ShowOffset = true; return nil },
	})
	mustAdd(p, "Columns", args.Argument{
		Name:  "show-parent",
		Help:  "prefix each line with its parent's DWARF offset",
		OnArg: func() error { opts.ShowParent = true; return nil },
	})
	mustAdd(p, "Columns", args.Argument{
		Name:  "show-level",
		Help:  "prefix each line with its tree depth",
		OnArg: func() error { opts.ShowLevel = true; return nil },
	})
	mustAdd(p, "Columns", args.Argument{
		Name:  "show-is-global",
		Help:  "prefix each line with a marker for global objects",
		OnArg: func() error { opts.ShowIsGlobal = true; return nil },
	})
	mustAdd(p, "Columns", args.Argument{
		Name:  "show-tag",
		Help:  "prefix each line with its DWARF tag name",
		OnArg: func() error { opts.ShowTag = true; return nil },
	})

	return p
}

// addShowSkip registers a --show-name/--skip-name pair over the same
// boolean, per CmdOptions.h's show/skip switches (recovered in
// SPEC_FULL.md's SUPPLEMENTED FEATURES).
func addShowSkip(p *args.Parser, name string, target *bool) {
	mustAdd(p, "Show/Skip", args.Argument{
		Name:  "show-" + name,
		Help:  "include " + name + " objects in the output",
		OnArg: func() error { *target = true; return nil },
	})
	mustAdd(p, "Show/Skip", args.Argument{
		Name:  "skip-" + name,
		Help:  "exclude " + name + " objects from the output",
		OnArg: func() error { *target = false; return nil },
	})
}

func mustAdd(p *args.Parser, group string, a args.Argument) {
	if err := p.Add(group, a); err != nil {
		panic(err)
	}
}
