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

package options_test

import (
	"regexp"
	"testing"

	"github.com/jetsetilly/scopeview/internal/options"
	"github.com/jetsetilly/scopeview/internal/scopetree"
	"github.com/jetsetilly/scopeview/test"
)

func TestBriefOmitsArrayCodelineAndPrimitiveType(t *testing.T) {
	f := options.Brief()
	test.ExpectEquality(t, f.Array, false)
	test.ExpectEquality(t, f.Codeline, false)
	test.ExpectEquality(t, f.PrimitiveType, false)
	test.ExpectEquality(t, f.Function, true)
}

func TestAllIncludesEverythingBriefOmits(t *testing.T) {
	f := options.All()
	test.ExpectEquality(t, f.Array, true)
	test.ExpectEquality(t, f.Codeline, true)
	test.ExpectEquality(t, f.PrimitiveType, true)
}

func TestShowsGatesByVariant(t *testing.T) {
	o := options.Default()
	o.Show.Variable = false

	tr := scopetree.NewTree("a.out")
	cu := scopetree.NewScope(tr.Root, scopetree.VariantCompileUnit, 0)
	v := scopetree.NewSymbol(cu, scopetree.VariantVariable, 1)

	test.ExpectEquality(t, o.Shows(v), false)
}

func TestGlobalityFilter(t *testing.T) {
	tr := scopetree.NewTree("a.out")
	cu := scopetree.NewScope(tr.Root, scopetree.VariantCompileUnit, 0)
	local := scopetree.NewSymbol(cu, scopetree.VariantVariable, 1)
	global := scopetree.NewSymbol(cu, scopetree.VariantVariable, 1)
	global.IsGlobalReference = true

	onlyGlobals := options.Default()
	onlyGlobals.OnlyGlobals = true
	test.ExpectEquality(t, onlyGlobals.Globality(local), false)
	test.ExpectEquality(t, onlyGlobals.Globality(global), true)

	onlyLocals := options.Default()
	onlyLocals.OnlyLocals = true
	test.ExpectEquality(t, onlyLocals.Globality(local), true)
	test.ExpectEquality(t, onlyLocals.Globality(global), false)
}

func TestMatchesFilterPattern(t *testing.T) {
	o := options.Default()
	o.Filter = regexp.MustCompile(`^foo`)

	tr := scopetree.NewTree("a.out")
	cu := scopetree.NewScope(tr.Root, scopetree.VariantCompileUnit, 0)
	match := scopetree.NewSymbol(cu, scopetree.VariantVariable, 1)
	match.SetName("foobar")
	noMatch := scopetree.NewSymbol(cu, scopetree.VariantVariable, 1)
	noMatch.SetName("bar")

	test.ExpectEquality(t, o.Matches(match), true)
	test.ExpectEquality(t, o.Matches(noMatch), false)
}

func TestNilFilterMatchesEverything(t *testing.T) {
	o := options.Default()
	tr := scopetree.NewTree("a.out")
	cu := scopetree.NewScope(tr.Root, scopetree.VariantCompileUnit, 0)
	n := scopetree.NewSymbol(cu, scopetree.VariantVariable, 1)
	test.ExpectEquality(t, o.Matches(n), true)
}
