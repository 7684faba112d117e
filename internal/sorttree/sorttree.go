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

// Package sorttree orders the children of every Scope in a completed tree,
// by one of the three keys in §4.6. Every tie-breaker chain ends at the
// DWARF offset. That offset is unique among DIE-backed nodes, but every Line
// node carries offset 0, so Line siblings that tie on the key keep their
// insertion order (the sort is stable); the order is total only when no two
// such Line siblings tie.
package sorttree

import (
	"sort"

	"github.com/jetsetilly/scopeview/internal/scopetree"
)

// Key selects the sibling ordering applied at every Scope.
type Key int

const (
	ByLine Key = iota
	ByName
	ByOffset
)

// Sort orders the children of every Scope in tree, recursively, by key.
func Sort(tree *scopetree.Tree, key Key) {
	sortChildren(tree.Root, key)
}

func sortChildren(n scopetree.Node, key Key) {
	children := scopetree.ChildrenOf(n)
	if len(children) > 0 {
		sort.Stable(&siblingSorter{children: children, key: key})
		scopetree.SetChildren(n, children)
	}
	for _, c := range children {
		sortChildren(c, key)
	}
}

type siblingSorter struct {
	children []scopetree.Node
	key      Key
}

func (s *siblingSorter) Len() int      { return len(s.children) }
func (s *siblingSorter) Swap(i, j int) { s.children[i], s.children[j] = s.children[j], s.children[i] }

func (s *siblingSorter) Less(i, j int) bool {
	a, b := s.children[i], s.children[j]

	switch s.key {
	case ByName:
		if less, eq := lessString(nodeName(a), nodeName(b)); !eq {
			return less
		}
		if less, eq := lessLine(a, b); !eq {
			return less
		}
		if less, eq := lessVariant(a, b); !eq {
			return less
		}
		return scopetree.DwarfOffsetOf(a) < scopetree.DwarfOffsetOf(b)

	case ByOffset:
		return scopetree.DwarfOffsetOf(a) < scopetree.DwarfOffsetOf(b)

	default: // ByLine
		if less, eq := lessLine(a, b); !eq {
			return less
		}
		if less, eq := lessString(nodeName(a), nodeName(b)); !eq {
			return less
		}
		if less, eq := lessVariant(a, b); !eq {
			return less
		}
		return scopetree.DwarfOffsetOf(a) < scopetree.DwarfOffsetOf(b)
	}
}

func nodeName(n scopetree.Node) string {
	return scopetree.NameOf(n)
}

func lessString(a, b string) (less bool, equal bool) {
	if a == b {
		return false, true
	}
	return a < b, false
}

func lessLine(a, b scopetree.Node) (less bool, equal bool) {
	al, bl := lineOf(a), lineOf(b)
	if al == bl {
		return false, true
	}
	return al < bl, false
}

func lineOf(n scopetree.Node) int {
	if line, ok := scopetree.AsLine(n); ok {
		return line.LineNumber
	}
	return scopetree.SourceLineOf(n)
}

func lessVariant(a, b scopetree.Node) (less bool, equal bool) {
	av, bv := scopetree.VariantOf(a), scopetree.VariantOf(b)
	if av == bv {
		return false, true
	}
	return av < bv, false
}
