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

// Package yaml implements the machine-readable renderer of spec.md §6.3: a
// stream of per-node YAML documents, encoded with gopkg.in/yaml.v3's
// streaming Encoder (one Encode call per node, which yaml.v3 separates with
// "---" document markers on its own).
package yaml

import (
	"debug/dwarf"
	"io"

	goyaml "gopkg.in/yaml.v3"

	"github.com/jetsetilly/scopeview/internal/options"
	"github.com/jetsetilly/scopeview/internal/render"
	"github.com/jetsetilly/scopeview/internal/scopetree"
)

type sourceInfo struct {
	Line *int    `yaml:"line"`
	File *string `yaml:"file"`
}

type dwarfInfo struct {
	Offset uint64 `yaml:"offset"`
	Tag    string `yaml:"tag"`
}

type document struct {
	Object     string      `yaml:"object"`
	Name       *string     `yaml:"name"`
	Type       *string     `yaml:"type"`
	Source     sourceInfo  `yaml:"source"`
	Dwarf      dwarfInfo   `yaml:"dwarf"`
	Attributes interface{} `yaml:"attributes,omitempty"`
}

// Render writes tree to w under opts, one YAML document per visited node
// that passes opts' filters, returning the accumulated Summary.
func Render(w io.Writer, tree *scopetree.Tree, opts options.ViewOptions) (*render.Summary, error) {
	enc := goyaml.NewEncoder(w)
	defer enc.Close()

	summary := &render.Summary{}
	var encErr error

	var visit func(n scopetree.Node)
	visit = func(n scopetree.Node) {
		if encErr != nil {
			return
		}

		if scopetree.VariantOf(n) != scopetree.VariantRoot {
			shown := opts.Shows(n) && opts.Globality(n) && opts.Matches(n)
			summary.Observe(n, shown)
			if shown {
				if err := enc.Encode(toDocument(n, opts)); err != nil {
					encErr = err
					return
				}
			}
		}

		for _, c := range scopetree.ChildrenOf(n) {
			visit(c)
		}
	}
	visit(tree.Root)

	return summary, encErr
}

func toDocument(n scopetree.Node, opts options.ViewOptions) document {
	doc := document{
		Object: render.VariantLabel(n),
		Dwarf: dwarfInfo{
			Offset: scopetree.DwarfOffsetOf(n),
			Tag:    dwarf.Tag(scopetree.DwarfTagOf(n)).String(),
		},
	}

	if scopetree.HasName(n) {
		name := scopetree.NameOf(n)
		if opts.QualifiedName {
			name = scopetree.QualifiedNamePrefixOf(n) + name
		}
		doc.Name = &name
	}

	if t := scopetree.TypeRefOf(n); t != nil {
		name := nameOf(t)
		doc.Type = &name
	}

	if scopetree.HasSourceLine(n) {
		line := scopetree.SourceLineOf(n)
		doc.Source.Line = &line
	}
	if scopetree.HasSourceFileIndex(n) {
		file := sourceFileOf(n)
		doc.Source.File = &file
	}

	doc.Attributes = attributesFor(n)
	return doc
}

func nameOf(n scopetree.Node) string {
	if !scopetree.HasName(n) {
		return "?"
	}
	return scopetree.NameOf(n)
}

// sourceFileOf resolves n's SourceFileIndex against its owning compile
// unit's FileTable; an index past the table (InvalidFileName) renders as
// "?".
func sourceFileOf(n scopetree.Node) string {
	if scopetree.InvalidFileNameOf(n) {
		return "?"
	}

	cu := scopetree.ParentOf(n)
	for cu != nil && scopetree.VariantOf(cu) != scopetree.VariantCompileUnit {
		cu = scopetree.ParentOf(cu)
	}
	if cu == nil {
		return "?"
	}

	idx := scopetree.SourceFileIndexOf(n)
	if idx < 0 || idx >= len(cu.FileTable) {
		return "?"
	}
	return cu.FileTable[idx]
}
