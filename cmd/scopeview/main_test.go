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

// No test in this repository opens a real ELF+DWARF input; this file covers
// the flag wiring and exit-code contract that don't need one.
package main

import (
	"strings"
	"testing"

	"github.com/jetsetilly/scopeview/test"
)

func TestHelpExitsZero(t *testing.T) {
	var out, errOut strings.Builder
	code := run([]string{"--help"}, &out, &errOut)
	test.ExpectEquality(t, code, 0)
	test.ExpectEquality(t, errOut.String(), "")
	if !strings.Contains(out.String(), "--format") {
		t.Errorf("expected help text to mention --format, got:\n%s", out.String())
	}
}

func TestVersionExitsZero(t *testing.T) {
	var out, errOut strings.Builder
	code := run([]string{"--version"}, &out, &errOut)
	test.ExpectEquality(t, code, 0)
	test.ExpectEquality(t, errOut.String(), "")
}

func TestUnknownArgumentExitsOne(t *testing.T) {
	var out, errOut strings.Builder
	code := run([]string{"--not-a-real-flag"}, &out, &errOut)
	test.ExpectEquality(t, code, 1)
	if !strings.HasPrefix(errOut.String(), "ERROR: ") {
		t.Errorf("expected ERROR: prefix, got %q", errOut.String())
	}
}

func TestNoInputFilesExitsOne(t *testing.T) {
	var out, errOut strings.Builder
	code := run(nil, &out, &errOut)
	test.ExpectEquality(t, code, 1)
	if !strings.Contains(errOut.String(), "not a valid input file") {
		t.Errorf("expected an input-file error, got %q", errOut.String())
	}
}

func TestInvalidSortChoiceExitsOne(t *testing.T) {
	var out, errOut strings.Builder
	code := run([]string{"--sort=bogus", "a.out"}, &out, &errOut)
	test.ExpectEquality(t, code, 1)
	if !strings.Contains(errOut.String(), "not a valid value") {
		t.Errorf("expected an invalid-choice error, got %q", errOut.String())
	}
}

func TestShowSkipPairsAppearInHelp(t *testing.T) {
	var out, errOut strings.Builder
	code := run([]string{"--skip-variable", "--show-variable", "--help"}, &out, &errOut)
	test.ExpectEquality(t, code, 0)
	if !strings.Contains(out.String(), "--show-variable") || !strings.Contains(out.String(), "--skip-variable") {
		t.Errorf("expected show/skip pair for variable in help text, got:\n%s", out.String())
	}
}
