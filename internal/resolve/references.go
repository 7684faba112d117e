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

type referenceResolver struct {
	state map[scopetree.Node]visitState
}

// References runs after Names. For every node A with a reference link to B,
// it resolves B first, then copies the attributes named in §4.4 that A did
// not already set itself (invariant #6), patches static-via-declaration
// (§4.4 rule 3, the two-phase assignment noted in §9), and re-derives a
// Symbol's qualified-name prefix from its reference target's parent (rule
// 4).
func References(tree *scopetree.Tree) {
	r := &referenceResolver{state: make(map[scopetree.Node]visitState)}
	scopetree.Walk(tree.Root, func(n scopetree.Node) {
		r.resolve(n)
	})
}

func (r *referenceResolver) resolve(n scopetree.Node) {
	if n == nil {
		return
	}
	switch r.state[n] {
	case resolved, visiting:
		return
	}
	r.state[n] = visiting

	ref := scopetree.ReferenceOf(n)
	if ref != nil {
		r.resolve(ref)
		r.copyAttributes(n, ref)
	}

	r.state[n] = resolved
}

func (r *referenceResolver) copyAttributes(a, b scopetree.Node) {
	if !scopetree.HasName(a) && scopetree.HasName(b) {
		scopetree.SetName(a, scopetree.NameOf(b))
	}
	if scopetree.TypeRefOf(a) == nil && scopetree.TypeRefOf(b) != nil {
		scopetree.SetTypeRef(a, scopetree.TypeRefOf(b))
	}
	if !scopetree.HasSourceLine(a) && scopetree.HasSourceLine(b) {
		scopetree.SetSourceLine(a, scopetree.SourceLineOf(b))
	}
	if !scopetree.HasSourceFileIndex(a) && scopetree.HasSourceFileIndex(b) {
		scopetree.SetSourceFileIndex(a, scopetree.SourceFileIndexOf(b))
		scopetree.SetInvalidFileName(a, scopetree.InvalidFileNameOf(b))
	}

	if bFunc, ok := b.(*scopetree.ScopeNode); ok && bFunc.Variant == scopetree.VariantFunction && bFunc.IsStatic {
		if aFunc, ok := a.(*scopetree.ScopeNode); ok {
			aFunc.IsStatic = true
		}
	}

	aSym, aIsSymbol := a.(*scopetree.SymbolNode)
	_, bIsSymbol := b.(*scopetree.SymbolNode)
	if aIsSymbol && bIsSymbol {
		if bParent := scopetree.ParentOf(b); bParent != nil {
			scopetree.SetQualifiedNamePrefix(aSym, qualifiedPrefixFrom(bParent))
		}
	}
}

// qualifiedPrefixFrom reproduces setQualifiedNamePrefix's walk, but starting
// from an explicit Scope rather than from a node's own parent (§4.4 rule 4).
func qualifiedPrefixFrom(start *scopetree.ScopeNode) string {
	var parts []string
	for parent := start; parent != nil; {
		switch parent.Variant {
		case scopetree.VariantNamespace, scopetree.VariantClass, scopetree.VariantStruct, scopetree.VariantUnion, scopetree.VariantEnumeration:
			name := parent.Name
			if name == "" {
				name = "?"
			}
			parts = append([]string{name}, parts...)
			parent = scopetree.ParentOf(parent)
		default:
			parent = nil
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return joinPrefix(parts)
}

func joinPrefix(parts []string) string {
	s := ""
	for i, p := range parts {
		if i > 0 {
			s += "::"
		}
		s += p
	}
	return s + "::"
}
