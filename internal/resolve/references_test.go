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

package resolve_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/jetsetilly/scopeview/internal/resolve"
	"github.com/jetsetilly/scopeview/internal/scopetree"
	"github.com/jetsetilly/scopeview/test"
)

func TestStaticViaDeclarationPropagates(t *testing.T) {
	tr := scopetree.NewTree("a.out")
	cu := scopetree.NewScope(tr.Root, scopetree.VariantCompileUnit, 0)

	decl := scopetree.NewScope(cu, scopetree.VariantFunction, 1)
	decl.FunctionKind = scopetree.FunctionSubprogram
	decl.IsDeclaration = true
	decl.IsStatic = true // no DW_AT_external, per §4.2.2's optimistic builder rule

	def := scopetree.NewScope(cu, scopetree.VariantFunction, 1)
	def.FunctionKind = scopetree.FunctionSubprogram
	def.Reference = decl
	def.IsStatic = false // the builder's optimistic pass: has DW_AT_specification

	test.ExpectEquality(t, def.IsStatic, false)

	resolve.References(tr)

	test.ExpectEquality(t, def.IsStatic, true)
}

func TestReferenceCopiesUnsetAttributesOnly(t *testing.T) {
	tr := scopetree.NewTree("a.out")
	cu := scopetree.NewScope(tr.Root, scopetree.VariantCompileUnit, 0)

	decl := scopetree.NewSymbol(cu, scopetree.VariantVariable, 1)
	decl.SetName("g")
	decl.SetSourceLine(10)

	def := scopetree.NewSymbol(cu, scopetree.VariantVariable, 1)
	def.Reference = decl
	def.SetSourceLine(99) // already set: must not be overwritten

	resolve.References(tr)

	test.ExpectEquality(t, def.Name, "g")
	test.ExpectEquality(t, def.SourceLine, 99)
}

func TestSymbolQualifiedPrefixRederivedFromReferenceTarget(t *testing.T) {
	tr := scopetree.NewTree("a.out")
	cu := scopetree.NewScope(tr.Root, scopetree.VariantCompileUnit, 0)
	ns := scopetree.NewScope(cu, scopetree.VariantNamespace, 1)
	ns.SetName("outer")

	decl := scopetree.NewSymbol(ns, scopetree.VariantVariable, 2)
	decl.SetName("g")

	def := scopetree.NewSymbol(cu, scopetree.VariantVariable, 1)
	def.Reference = decl

	resolve.References(tr)

	test.ExpectEquality(t, def.QualifiedNamePrefix, "outer::")
}

// TestResolvedSymbolMatchesExpectedFragment runs the full set of §4.4
// copy-attribute rules that apply to a Symbol<->Symbol reference in one
// case, then diffs the resolved node's content fields against an
// independently-built expected fragment. Parent/Children/TypeRef/Reference
// are excluded from the comparison since the two fragments aren't part of
// the same tree (and Base.Parent/Children would make the nodes cyclic,
// which cmp cannot walk).
func TestResolvedSymbolMatchesExpectedFragment(t *testing.T) {
	tr := scopetree.NewTree("a.out")
	cu := scopetree.NewScope(tr.Root, scopetree.VariantCompileUnit, 0)
	ns := scopetree.NewScope(cu, scopetree.VariantNamespace, 1)
	ns.SetName("outer")

	decl := scopetree.NewSymbol(ns, scopetree.VariantVariable, 2)
	decl.SetName("g")
	decl.SetSourceLine(10)

	def := scopetree.NewSymbol(cu, scopetree.VariantVariable, 1)
	def.Reference = decl

	resolve.References(tr)

	want := &scopetree.SymbolNode{}
	want.Kind = scopetree.KindSymbol
	want.Variant = scopetree.VariantVariable
	want.Level = 1
	want.SetName("g")
	want.SetSourceLine(10)
	want.QualifiedNamePrefix = "outer::"

	opts := cmp.Options{
		cmpopts.IgnoreUnexported(scopetree.Base{}),
		cmpopts.IgnoreFields(scopetree.Base{}, "Parent", "Children", "TypeRef", "Reference"),
	}
	if diff := cmp.Diff(want, def, opts); diff != "" {
		t.Errorf("resolved symbol fragment mismatch (-want +got):\n%s", diff)
	}
}
