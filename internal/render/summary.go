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

// Package render holds the pieces shared by internal/render/text and
// internal/render/yaml: the per-kind object counters DIVA's Reader.h keeps
// for --show-summary, and the split-output file writer.
package render

import (
	"fmt"
	"io"

	"github.com/jetsetilly/scopeview/internal/scopetree"
)

// Summary accumulates found/printed counts per family, for the
// --show-summary table DIVA's Reader.h prints after the tree.
type Summary struct {
	Scopes  int
	Types   int
	Symbols int
	Lines   int

	PrintedScopes  int
	PrintedTypes   int
	PrintedSymbols int
	PrintedLines   int
}

// Observe records that n was visited, and whether it was actually written
// to the renderer's output (shown is false when an options filter excluded
// it).
func (s *Summary) Observe(n scopetree.Node, shown bool) {
	switch scopetree.KindOf(n) {
	case scopetree.KindScope:
		s.Scopes++
		if shown {
			s.PrintedScopes++
		}
	case scopetree.KindType:
		s.Types++
		if shown {
			s.PrintedTypes++
		}
	case scopetree.KindSymbol:
		s.Symbols++
		if shown {
			s.PrintedSymbols++
		}
	case scopetree.KindLine:
		s.Lines++
		if shown {
			s.PrintedLines++
		}
	}
}

// WriteTo prints the summary table in the teacher's plain aligned-column
// style (see coprocessor/developer's own report printers).
func (s *Summary) WriteTo(w io.Writer) {
	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "  %-10s %8d found %8d printed\n", "scopes", s.Scopes, s.PrintedScopes)
	fmt.Fprintf(w, "  %-10s %8d found %8d printed\n", "types", s.Types, s.PrintedTypes)
	fmt.Fprintf(w, "  %-10s %8d found %8d printed\n", "symbols", s.Symbols, s.PrintedSymbols)
	fmt.Fprintf(w, "  %-10s %8d found %8d printed\n", "lines", s.Lines, s.PrintedLines)
}
