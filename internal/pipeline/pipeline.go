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

// Package pipeline orchestrates the whole read→build→resolve→sort→render
// sequence (spec.md §2/§5) for one or more input files, serially, matching
// the teacher's own top-level driver packages (e.g. coprocessor/developer's
// Source construction) in spirit: a single entry point that wires the
// already-built components together and does no algorithmic work itself.
package pipeline

import (
	"io"

	"github.com/jetsetilly/scopeview/internal/dwarfreader"
	"github.com/jetsetilly/scopeview/internal/options"
	"github.com/jetsetilly/scopeview/internal/render"
	"github.com/jetsetilly/scopeview/internal/render/text"
	"github.com/jetsetilly/scopeview/internal/render/yaml"
	"github.com/jetsetilly/scopeview/internal/resolve"
	"github.com/jetsetilly/scopeview/internal/sorttree"
	"github.com/jetsetilly/scopeview/internal/scopetree"
	"github.com/jetsetilly/scopeview/internal/treebuilder"
)

// extension is the file suffix used for split output, per renderer.
func extension(opts options.ViewOptions) string {
	if opts.Format == options.FormatYAML {
		return ".yaml"
	}
	return ".txt"
}

// renderTree writes tree to w under opts, dispatching to the configured
// renderer.
func renderTree(w io.Writer, tree *scopetree.Tree, opts options.ViewOptions) (*render.Summary, error) {
	if opts.Format == options.FormatYAML {
		return yaml.Render(w, tree, opts)
	}
	return text.Render(w, tree, opts)
}

// One builds the complete scope tree for a single input file: open, build,
// resolve (names, references, globality), sort. It does not render — that
// is left to Run so that callers needing the tree itself (tests,
// future tooling) can stop here.
func One(path string, sortKey sorttree.Key) (*scopetree.Tree, error) {
	dd, err := dwarfreader.Open(path)
	if err != nil {
		return nil, err
	}

	tree, err := treebuilder.Build(dd, path)
	if err != nil {
		return nil, err
	}

	resolve.Run(tree)
	sorttree.Sort(tree, sortKey)

	return tree, nil
}

// Run processes every path in paths, serially (spec.md §5: the only
// cross-file state is the reader's own per-file duplicate-warning set,
// which treebuilder.Build re-creates for every call). With Split unset,
// every file's rendering is concatenated onto w, in the order given; with
// Split set, each compile unit of each file is written to its own file
// under opts.SplitDir instead and w is not used.
func Run(w io.Writer, paths []string, opts options.ViewOptions) (*render.Summary, error) {
	total := &render.Summary{}

	for _, path := range paths {
		tree, err := One(path, opts.Sort)
		if err != nil {
			return total, err
		}

		var s *render.Summary
		if opts.Split {
			s, err = runSplit(tree, opts)
		} else {
			s, err = renderTree(w, tree, opts)
		}
		if err != nil {
			return total, err
		}

		total.Scopes += s.Scopes
		total.Types += s.Types
		total.Symbols += s.Symbols
		total.Lines += s.Lines
		total.PrintedScopes += s.PrintedScopes
		total.PrintedTypes += s.PrintedTypes
		total.PrintedSymbols += s.PrintedSymbols
		total.PrintedLines += s.PrintedLines
	}

	return total, nil
}

// runSplit renders one compile unit of tree per output file, per spec.md
// §6.4.
func runSplit(tree *scopetree.Tree, opts options.ViewOptions) (*render.Summary, error) {
	sw, err := render.NewSplitWriter(opts.SplitDir)
	if err != nil {
		return nil, err
	}

	total := &render.Summary{}
	ext := extension(opts)

	for _, cu := range tree.Root.Children {
		scope, ok := scopetree.AsScope(cu)
		if !ok || scope.Variant != scopetree.VariantCompileUnit {
			continue
		}

		f, err := sw.Create(scopetree.NameOf(scope), ext)
		if err != nil {
			return total, err
		}

		// Render just this compile unit by substituting a synthetic root
		// whose only child is this CU, so the renderer's existing
		// root-skip/indent logic applies unchanged.
		synthetic := &scopetree.Tree{Root: rootWithOneChild(tree.Root, cu)}

		s, renderErr := renderTree(f, synthetic, opts)
		closeErr := f.Close()
		if renderErr != nil {
			return total, renderErr
		}
		if closeErr != nil {
			return total, closeErr
		}

		total.Scopes += s.Scopes
		total.Types += s.Types
		total.Symbols += s.Symbols
		total.Lines += s.Lines
		total.PrintedScopes += s.PrintedScopes
		total.PrintedTypes += s.PrintedTypes
		total.PrintedSymbols += s.PrintedSymbols
		total.PrintedLines += s.PrintedLines
	}

	return total, nil
}

// rootWithOneChild builds a throwaway root node carrying the same name as
// original but with only cu as a child, so a single compile unit can be
// rendered through the normal tree-render path.
func rootWithOneChild(original *scopetree.ScopeNode, cu scopetree.Node) *scopetree.ScopeNode {
	root := scopetree.NewTree(scopetree.NameOf(original)).Root
	scopetree.SetChildren(root, []scopetree.Node{cu})
	return root
}
