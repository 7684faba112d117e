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

// Package resolve implements the three passes that run after the tree
// builder: name resolution, reference resolution, and globality
// propagation. Every pass visits the tree top-down and memoizes the nodes
// it has already finished, both to avoid recomputation and to terminate if
// a pathological input's reference links form a cycle (§9: "memoization in
// resolvers ... also terminates them").
package resolve

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/scopeview/internal/scopetree"
)

type visitState int

const (
	unvisited visitState = iota
	visiting
	resolved
)

type nameResolver struct {
	state map[scopetree.Node]visitState
}

// Names synthesizes type names, array/function-pointer signatures, and
// qualified-name prefixes across the whole tree (§4.3).
func Names(tree *scopetree.Tree) {
	r := &nameResolver{state: make(map[scopetree.Node]visitState)}
	scopetree.Walk(tree.Root, func(n scopetree.Node) {
		r.resolve(n)
	})
}

// resolve completes n's name (and the name of anything n's name composes
// from) exactly once. A node found mid-resolution (visiting) is part of a
// reference cycle; it is treated as already as good as done, which is how
// memoization breaks the cycle.
func (r *nameResolver) resolve(n scopetree.Node) {
	if n == nil {
		return
	}
	switch r.state[n] {
	case resolved, visiting:
		return
	}
	r.state[n] = visiting

	r.resolve(scopetree.TypeRefOf(n))
	r.synthesizeName(n)
	r.setQualifiedNamePrefix(n)

	r.state[n] = resolved
}

// resolveAndName resolves n (if not nil) and returns the name a composing
// caller should use for it: its name if it has one, "?" if unnamed, "void"
// for a nil type_ref (an untyped function return or parameter).
func (r *nameResolver) resolveAndName(n scopetree.Node) string {
	if n == nil {
		return "void"
	}
	r.resolve(n)
	if scopetree.HasName(n) {
		return scopetree.NameOf(n)
	}
	return "?"
}

func (r *nameResolver) synthesizeName(n scopetree.Node) {
	switch node := n.(type) {
	case *scopetree.TypeNode:
		r.synthesizeTypeName(node)
	case *scopetree.ScopeNode:
		switch node.Variant {
		case scopetree.VariantArray:
			r.synthesizeArrayName(node)
		case scopetree.VariantFunction:
			if node.FunctionKind == scopetree.FunctionSubroutineType {
				r.synthesizeSubroutineName(node)
			}
		}
	}
}

// synthesizeTypeName applies the composition rules of §4.3. Composition is
// left-associative: a Pointer whose type_ref is itself a Pointer yields
// "T * *", because the inner pointer's own name ("T *") becomes the
// pointee name for the outer one.
func (r *nameResolver) synthesizeTypeName(t *scopetree.TypeNode) {
	switch t.Variant {
	case scopetree.VariantConst:
		t.SetName("const " + r.resolveAndName(t.TypeRef))
	case scopetree.VariantVolatile:
		t.SetName("volatile " + r.resolveAndName(t.TypeRef))
	case scopetree.VariantRestrict:
		t.SetName("restrict " + r.resolveAndName(t.TypeRef))
	case scopetree.VariantPointer, scopetree.VariantPointerMember:
		t.SetName(r.resolveAndName(t.TypeRef) + " *")
	case scopetree.VariantReference:
		t.SetName(r.resolveAndName(t.TypeRef) + " &")
	case scopetree.VariantRvalueReference:
		t.SetName(r.resolveAndName(t.TypeRef) + " &&")
	case scopetree.VariantInheritance:
		t.SetName(r.resolveAndName(t.TypeRef))
	case scopetree.VariantTypeDef, scopetree.VariantUnspecified:
		// these two keep whatever DW_AT_name the DIE carried; they are not
		// composed from their type_ref.
	}

	if !t.HasName() {
		t.SetName("?")
	}
}

// synthesizeArrayName builds "<element> [N][M]..." from the element
// type_ref and the already-synthesized Subrange children (the Subrange's
// bracketed name is set at build time, not here).
func (r *nameResolver) synthesizeArrayName(s *scopetree.ScopeNode) {
	elem := r.resolveAndName(s.TypeRef)

	var subranges strings.Builder
	for _, c := range s.Children {
		if sub, ok := c.(*scopetree.TypeNode); ok && sub.Variant == scopetree.VariantSubrange {
			subranges.WriteString(sub.Name)
		}
	}

	s.SetName(elem + " " + subranges.String())
}

// synthesizeSubroutineName builds "<return> (*)(<params>)" for a Function
// scope in SubroutineType form.
func (r *nameResolver) synthesizeSubroutineName(s *scopetree.ScopeNode) {
	var params []string
	for _, c := range s.Children {
		sym, ok := c.(*scopetree.SymbolNode)
		if !ok {
			continue
		}
		if sym.Variant != scopetree.VariantParameter && sym.Variant != scopetree.VariantUnspecifiedParameter {
			continue
		}
		params = append(params, r.resolveAndName(sym.TypeRef))
	}

	ret := r.resolveAndName(s.TypeRef)
	s.SetName(fmt.Sprintf("%s (*)(%s)", ret, strings.Join(params, ", ")))
}

// setQualifiedNamePrefix walks n's Scope ancestors, appending "<name>::" for
// namespace/class/struct/union/enum ancestors until the chain reaches
// something else (a Function, a Block, a CompileUnit, the root, or any
// other container) — which terminates the walk without contributing its own
// name (§4.3: "Stop at CompileUnit or root. A Function ancestor terminates
// qualification").
func (r *nameResolver) setQualifiedNamePrefix(n scopetree.Node) {
	var parts []string

	for parent := scopetree.ParentOf(n); parent != nil; {
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

	if len(parts) > 0 {
		scopetree.SetQualifiedNamePrefix(n, strings.Join(parts, "::")+"::")
	}
}
