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

	"github.com/jetsetilly/scopeview/internal/resolve"
	"github.com/jetsetilly/scopeview/internal/scopetree"
	"github.com/jetsetilly/scopeview/test"
)

func TestGlobalityPropagatesToDescendants(t *testing.T) {
	tr := scopetree.NewTree("a.out")
	cu := scopetree.NewScope(tr.Root, scopetree.VariantCompileUnit, 0)
	class := scopetree.NewScope(cu, scopetree.VariantStruct, 1)
	class.IsGlobalReference = true
	member := scopetree.NewSymbol(class, scopetree.VariantMember, 2)

	resolve.Globality(tr)

	test.ExpectEquality(t, member.IsGlobalReference, true)
}

func TestGlobalityDoesNotLeakSideways(t *testing.T) {
	tr := scopetree.NewTree("a.out")
	cu := scopetree.NewScope(tr.Root, scopetree.VariantCompileUnit, 0)
	global := scopetree.NewScope(cu, scopetree.VariantStruct, 1)
	global.IsGlobalReference = true
	notGlobal := scopetree.NewScope(cu, scopetree.VariantStruct, 1)

	resolve.Globality(tr)

	test.ExpectEquality(t, global.IsGlobalReference, true)
	test.ExpectEquality(t, notGlobal.IsGlobalReference, false)
}
