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

// No test in this repository opens a real ELF+DWARF input; this file covers
// the orchestration logic in pipeline.go that does not require one (rendering dispatch,
// split-output file naming, summary accumulation).
package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/scopeview/internal/options"
	"github.com/jetsetilly/scopeview/internal/scopetree"
	"github.com/jetsetilly/scopeview/test"
)

func buildTwoCUTree() *scopetree.Tree {
	tr := scopetree.NewTree("a.out")
	cu1 := scopetree.NewScope(tr.Root, scopetree.VariantCompileUnit, 0)
	cu1.SetName("one.cpp")
	scopetree.NewSymbol(cu1, scopetree.VariantVariable, 1).SetName("g1")

	cu2 := scopetree.NewScope(tr.Root, scopetree.VariantCompileUnit, 0)
	cu2.SetName("two.cpp")
	scopetree.NewSymbol(cu2, scopetree.VariantVariable, 1).SetName("g2")

	return tr
}

func TestExtensionByFormat(t *testing.T) {
	test.ExpectEquality(t, extension(options.ViewOptions{Format: options.FormatText}), ".txt")
	test.ExpectEquality(t, extension(options.ViewOptions{Format: options.FormatYAML}), ".yaml")
}

func TestRenderTreeDispatchesByFormat(t *testing.T) {
	tr := buildTwoCUTree()

	var text strings.Builder
	_, err := renderTree(&text, tr, options.Default())
	test.ExpectSuccess(t, err)
	if !strings.Contains(text.String(), "CompileUnit") {
		t.Errorf("expected text rendering, got:\n%s", text.String())
	}

	var yamlOut strings.Builder
	opts := options.Default()
	opts.Format = options.FormatYAML
	_, err = renderTree(&yamlOut, tr, opts)
	test.ExpectSuccess(t, err)
	if !strings.Contains(yamlOut.String(), "object: CompileUnit") {
		t.Errorf("expected yaml rendering, got:\n%s", yamlOut.String())
	}
}

func TestRootWithOneChildIsolatesACompileUnit(t *testing.T) {
	tr := buildTwoCUTree()
	cu1 := tr.Root.Children[0]

	root := rootWithOneChild(tr.Root, cu1)
	test.ExpectEquality(t, len(root.Children), 1)
	test.ExpectEquality(t, root.Children[0], cu1)
}

func TestRunSplitWritesOneFilePerCompileUnit(t *testing.T) {
	tr := buildTwoCUTree()
	dir := t.TempDir()

	opts := options.Default()
	opts.Split = true
	opts.SplitDir = dir

	summary, err := runSplit(tr, opts)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, summary.Symbols, 2)

	entries, err := os.ReadDir(dir)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(entries), 2)

	_, err = os.Stat(filepath.Join(dir, "one_cpp.txt"))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(filepath.Join(dir, "two_cpp.txt"))
	test.ExpectSuccess(t, err)
}
