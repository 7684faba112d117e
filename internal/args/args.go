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

// Package args implements the grouped-flag command line grammar described
// at the core's external interface (§6.2): grouped short flags, long flags
// taking an optional comma-split value, and "--no-name" negatives. It is
// deliberately not cobra/pflag compatible — the grammar (in particular
// shortcut grouping and comma-split multi-values) is lifted from DIVA's own
// ArgumentParser rather than from any Go flag package in the pack, since
// none of them express it.
package args

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/scopeview/scopeerrors"
)

// Argument describes one named flag and the callbacks invoked when the
// parser encounters it. A nil callback means that invocation style is not
// supported for this argument, and raises the matching typed error.
type Argument struct {
	// Shortcut is the argument's single-letter form ('\x00' for none).
	Shortcut byte
	Name     string

	// ValueLabel, if non-empty, is shown in help as "--Name=VALUELABEL".
	ValueLabel string
	Help       string

	OnArg      func() error
	OnValue    func(value string) error
	OnNegative func() error
}

type group struct {
	title     string
	arguments []*Argument
}

// Parser holds every registered argument, grouped for help rendering.
type Parser struct {
	groups     []*group
	byName     map[string]*Argument
	byShortcut map[byte]*Argument
}

// NewParser creates an empty Parser.
func NewParser() *Parser {
	return &Parser{
		byName:     make(map[string]*Argument),
		byShortcut: make(map[byte]*Argument),
	}
}

// Add registers arg under the named group, creating the group if this is
// its first argument. Registering a name or shortcut a second time is a
// program-logic error (§6.2: "Duplicate registration ... is a program-logic
// error at parser construction"), returned rather than panicked so that a
// caller building a Parser from static data can still report it cleanly.
func (p *Parser) Add(groupTitle string, arg Argument) error {
	if _, exists := p.byName[arg.Name]; exists {
		return fmt.Errorf("args: argument --%s registered twice", arg.Name)
	}
	if arg.Shortcut != 0 {
		if _, exists := p.byShortcut[arg.Shortcut]; exists {
			return fmt.Errorf("args: shortcut -%c registered twice", arg.Shortcut)
		}
	}

	a := arg
	p.byName[a.Name] = &a
	if a.Shortcut != 0 {
		p.byShortcut[a.Shortcut] = &a
	}

	for _, g := range p.groups {
		if g.title == groupTitle {
			g.arguments = append(g.arguments, &a)
			return nil
		}
	}
	p.groups = append(p.groups, &group{title: groupTitle, arguments: []*Argument{&a}})
	return nil
}

// Parse consumes argv against the registered arguments, returning the
// leftover positional arguments (input file paths, in this repository's
// use) in order. The first error encountered aborts parsing (§6.2/§7: a
// fatal, driver-facing condition).
func (p *Parser) Parse(argv []string) ([]string, error) {
	var positional []string

	for _, tok := range argv {
		switch {
		case strings.HasPrefix(tok, "--"):
			if err := p.parseLong(tok[2:]); err != nil {
				return nil, err
			}

		case strings.HasPrefix(tok, "-") && len(tok) > 1:
			if err := p.parseShort(tok[1:]); err != nil {
				return nil, err
			}

		default:
			positional = append(positional, tok)
		}
	}

	return positional, nil
}

func (p *Parser) parseLong(body string) error {
	negative := strings.HasPrefix(body, "no-")
	if negative {
		body = body[len("no-"):]
	}

	name := body
	var value string
	hasValue := false
	if idx := strings.IndexByte(body, '='); idx >= 0 {
		name = body[:idx]
		value = body[idx+1:]
		hasValue = true
	}

	arg, ok := p.byName[name]
	if !ok {
		return scopeerrors.Errorf(scopeerrors.Messages[scopeerrors.UnknownArg], "--"+name)
	}

	switch {
	case negative && hasValue:
		return scopeerrors.Errorf(scopeerrors.Messages[scopeerrors.UnexpectedNegative], "--no-"+name)

	case negative:
		if arg.OnNegative == nil {
			return scopeerrors.Errorf(scopeerrors.Messages[scopeerrors.UnexpectedNegative], "--no-"+name)
		}
		return arg.OnNegative()

	case hasValue:
		if arg.OnValue == nil {
			return scopeerrors.Errorf(scopeerrors.Messages[scopeerrors.UnexpectedValue], "--"+name)
		}
		for _, v := range strings.Split(value, ",") {
			if err := arg.OnValue(v); err != nil {
				return err
			}
		}
		return nil

	default:
		if arg.OnArg == nil {
			return scopeerrors.Errorf(scopeerrors.Messages[scopeerrors.MissingValue], "--"+name)
		}
		return arg.OnArg()
	}
}

func (p *Parser) parseShort(body string) error {
	if strings.IndexByte(body, '=') >= 0 {
		return scopeerrors.Errorf(scopeerrors.Messages[scopeerrors.ShortcutWithArgumentValue], "-"+body)
	}

	for i := 0; i < len(body); i++ {
		sc := body[i]
		arg, ok := p.byShortcut[sc]
		if !ok {
			return scopeerrors.Errorf(scopeerrors.Messages[scopeerrors.UnknownArg], fmt.Sprintf("-%c", sc))
		}
		if arg.OnArg == nil {
			return scopeerrors.Errorf(scopeerrors.Messages[scopeerrors.MissingValue], fmt.Sprintf("-%c", sc))
		}
		if err := arg.OnArg(); err != nil {
			return err
		}
	}

	return nil
}
