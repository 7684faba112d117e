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

package args

import (
	"fmt"
	"strings"
)

const helpColumn = 31
const helpWidth = 80

// HelpText renders every registered group and argument, in registration
// order, to a usage listing.
func (p *Parser) HelpText() string {
	var b strings.Builder

	for i, g := range p.groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(g.title)
		b.WriteString(":\n")

		for _, a := range g.arguments {
			b.WriteString(formatHeader(a))
			writeWrapped(&b, a.Help)
		}
	}

	return b.String()
}

func formatHeader(a *Argument) string {
	var lhs strings.Builder
	lhs.WriteString("  ")
	if a.Shortcut != 0 {
		fmt.Fprintf(&lhs, "-%c  ", a.Shortcut)
	} else {
		lhs.WriteString("    ")
	}

	fmt.Fprintf(&lhs, "--%s", a.Name)
	if a.ValueLabel != "" {
		fmt.Fprintf(&lhs, "=%s", a.ValueLabel)
	}

	return lhs.String()
}

// writeWrapped appends help text to b, starting at column helpColumn and
// wrapping at helpWidth, padding a fresh line to helpColumn whenever the
// header written before it (or a previous wrapped line) overruns the
// column.
func writeWrapped(b *strings.Builder, help string) {
	col := lastLineLen(b.String())
	if col < helpColumn {
		b.WriteString(strings.Repeat(" ", helpColumn-col))
		col = helpColumn
	} else {
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", helpColumn))
		col = helpColumn
	}

	for i, w := range strings.Fields(help) {
		if i > 0 {
			if col+1+len(w) > helpWidth {
				b.WriteString("\n")
				b.WriteString(strings.Repeat(" ", helpColumn))
				col = helpColumn
			} else {
				b.WriteString(" ")
				col++
			}
		}
		b.WriteString(w)
		col += len(w)
	}
	b.WriteString("\n")
}

func lastLineLen(s string) int {
	idx := strings.LastIndexByte(s, '\n')
	if idx < 0 {
		return len(s)
	}
	return len(s) - idx - 1
}
