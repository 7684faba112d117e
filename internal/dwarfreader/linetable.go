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

package dwarfreader

import (
	"debug/dwarf"
	"errors"
	"io"
)

// LineEntry is one row of a compile unit's line table.
type LineEntry struct {
	FileIndex         int
	LineNumber        int
	Address           uint64
	Discriminator     uint64
	IsNewStatement    bool
	IsNewBasicBlock   bool
	IsLineEndSequence bool
	IsEpilogueBegin   bool
	IsPrologueEnd     bool
}

// SourceFiles returns the CU's per-id file table: index 0 is always "".
// Valid only for a CU root Die.
func (die *Die) SourceFiles() ([]string, error) {
	lr, err := die.d.dwrf.LineReader(die.entry)
	if err != nil {
		return nil, err
	}
	if lr == nil {
		return []string{""}, nil
	}

	files := lr.Files()
	table := make([]string, len(files))
	for i, f := range files {
		if f == nil {
			table[i] = ""
			continue
		}
		table[i] = f.Name
	}
	if len(table) == 0 {
		table = []string{""}
	}
	return table, nil
}

// LineTable returns the CU's full line table, in DWARF document order.
// Valid only for a CU root Die.
func (die *Die) LineTable() ([]LineEntry, error) {
	lr, err := die.d.dwrf.LineReader(die.entry)
	if err != nil {
		return nil, err
	}
	if lr == nil {
		return nil, nil
	}

	files := lr.Files()
	indexOf := make(map[*dwarf.LineFile]int, len(files))
	for i, f := range files {
		if f != nil {
			indexOf[f] = i
		}
	}

	var entries []LineEntry
	var le dwarf.LineEntry
	for {
		err := lr.Next(&le)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return entries, err
		}

		idx := 0
		if le.File != nil {
			idx = indexOf[le.File]
		}

		entries = append(entries, LineEntry{
			FileIndex:         idx,
			LineNumber:        le.Line,
			Address:           le.Address,
			Discriminator:     uint64(le.Discriminator),
			IsNewStatement:    le.IsStmt,
			IsNewBasicBlock:   le.BasicBlock,
			IsLineEndSequence: le.EndSequence,
			IsEpilogueBegin:   le.EpilogueBegin,
			IsPrologueEnd:     le.PrologueEnd,
		})
	}

	return entries, nil
}
