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

package resolve

import "github.com/jetsetilly/scopeview/internal/scopetree"

// Globality propagates the is_global_reference flag top-down: once a node
// is global (flagged during build because something in another CU pointed
// at it), every descendant is global too (§4.5, invariant #7).
func Globality(tree *scopetree.Tree) {
	propagate(tree.Root, false)
}

func propagate(n scopetree.Node, parentGlobal bool) {
	if parentGlobal {
		scopetree.SetGlobalReference(n)
	}
	global := parentGlobal || scopetree.IsGlobalReferenceOf(n)
	for _, c := range scopetree.ChildrenOf(n) {
		propagate(c, global)
	}
}

// Run executes all three resolver passes in the required order: names,
// then references (which depend on resolved names for attribute copying),
// then globality.
func Run(tree *scopetree.Tree) {
	Names(tree)
	References(tree)
	Globality(tree)
}
