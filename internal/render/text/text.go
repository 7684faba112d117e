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

// Package text implements the indented scope-tree renderer of spec.md
// §6.3: one line per visited node, with fixed-width optional prefix
// columns (DWARF offset, parent offset, level, global flag, tag) ahead of
// the indented name.
package text

import (
	"debug/dwarf"
	"fmt"
	"io"

	"github.com/jetsetilly/scopeview/internal/options"
	"github.com/jetsetilly/scopeview/internal/render"
	"github.com/jetsetilly/scopeview/internal/scopetree"
)

// Render writes tree to w under opts, returning the object counts
// accumulated along the way. Writing stops at the first write error.
func Render(w io.Writer, tree *scopetree.Tree, opts options.ViewOptions) (*render.Summary, error) {
	summary := &render.Summary{}
	var writeErr error

	var visit func(n scopetree.Node)
	visit = func(n scopetree.Node) {
		if writeErr != nil {
			return
		}

		if scopetree.VariantOf(n) != scopetree.VariantRoot {
			shown := opts.Shows(n) && opts.Globality(n) && opts.Matches(n)
			summary.Observe(n, shown)
			if shown {
				if _, err := fmt.Fprintln(w, line(n, opts)); err != nil {
					writeErr = err
					return
				}
			}
		}

		for _, c := range scopetree.ChildrenOf(n) {
			visit(c)
		}
	}
	visit(tree.Root)

	if writeErr != nil {
		return summary, writeErr
	}

	if opts.ShowSummary {
		summary.WriteTo(w)
	}
	return summary, nil
}

// line formats a single node's output row: any requested prefix columns,
// then indentation proportional to level, then the object label and name.
func line(n scopetree.Node, opts options.ViewOptions) string {
	var prefix string

	if opts.ShowOffset {
		prefix += fmt.Sprintf("[0x%08x] ", scopetree.DwarfOffsetOf(n))
	}
	if opts.ShowParent {
		var parentOffset uint64
		if p := scopetree.ParentOf(n); p != nil {
			parentOffset = scopetree.DwarfOffsetOf(p)
		}
		prefix += fmt.Sprintf("[0x%08x] ", parentOffset)
	}
	if opts.ShowLevel {
		prefix += fmt.Sprintf("%03d ", scopetree.LevelOf(n))
	}
	if opts.ShowIsGlobal {
		if scopetree.IsGlobalReferenceOf(n) {
			prefix += "* "
		} else {
			prefix += "  "
		}
	}
	if opts.ShowTag {
		prefix += fmt.Sprintf("%s ", dwarf.Tag(scopetree.DwarfTagOf(n)))
	}

	indent := ""
	for i := 0; i < scopetree.LevelOf(n); i++ {
		indent += "  "
	}

	name := scopetree.NameOf(n)
	if opts.QualifiedName {
		name = scopetree.QualifiedNamePrefixOf(n) + name
	}
	if name == "" {
		name = "?"
	}

	return fmt.Sprintf("%s%s%s - %s", prefix, indent, render.VariantLabel(n), name)
}
