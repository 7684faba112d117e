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

package text_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/scopeview/internal/options"
	"github.com/jetsetilly/scopeview/internal/render/text"
	"github.com/jetsetilly/scopeview/internal/scopetree"
	"github.com/jetsetilly/scopeview/test"
)

func buildSimpleStruct() *scopetree.Tree {
	tr := scopetree.NewTree("a.out")
	cu := scopetree.NewScope(tr.Root, scopetree.VariantCompileUnit, 0)
	cu.SetName("main.cpp")
	s := scopetree.NewScope(cu, scopetree.VariantStruct, 1)
	s.SetName("A")
	m := scopetree.NewSymbol(s, scopetree.VariantMember, 2)
	m.SetName("m")
	return tr
}

func TestRenderContainsEveryNode(t *testing.T) {
	tr := buildSimpleStruct()
	var buf strings.Builder
	_, err := text.Render(&buf, tr, options.Default())
	test.ExpectSuccess(t, err)

	out := buf.String()
	for _, want := range []string{"CompileUnit", "Struct - A", "Member - m"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderOmitsFilteredVariant(t *testing.T) {
	tr := buildSimpleStruct()
	opts := options.Default()
	opts.Show.Member = false

	var buf strings.Builder
	_, err := text.Render(&buf, tr, opts)
	test.ExpectSuccess(t, err)

	if strings.Contains(buf.String(), "Member") {
		t.Errorf("expected Member to be filtered out:\n%s", buf.String())
	}
}

func TestRenderSummaryCounts(t *testing.T) {
	tr := buildSimpleStruct()
	opts := options.Default()
	opts.ShowSummary = true

	var buf strings.Builder
	summary, err := text.Render(&buf, tr, opts)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, summary.Scopes, 2) // CompileUnit + Struct
	test.ExpectEquality(t, summary.Symbols, 1)
	if !strings.Contains(buf.String(), "Summary:") {
		t.Errorf("expected a Summary section:\n%s", buf.String())
	}
}

func TestRenderOffsetPrefix(t *testing.T) {
	tr := scopetree.NewTree("a.out")
	cu := scopetree.NewScope(tr.Root, scopetree.VariantCompileUnit, 0)
	cu.DwarfOffset = 0x10

	opts := options.Default()
	opts.ShowOffset = true

	var buf strings.Builder
	_, err := text.Render(&buf, tr, opts)
	test.ExpectSuccess(t, err)

	if !strings.Contains(buf.String(), "[0x00000010]") {
		t.Errorf("expected formatted offset prefix:\n%s", buf.String())
	}
}
