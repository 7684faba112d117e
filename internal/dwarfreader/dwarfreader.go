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

// Package dwarfreader is the thin adapter over an ELF file's DWARF debug
// sections. It is not where the hard engineering in this repository lives;
// it exists to give the tree builder a stable, typed surface over
// "debug/dwarf" and "debug/elf" (the same standard library packages the
// teacher's own coprocessor/developer/dwarf package is built on) so that
// builder code never touches a raw dwarf.Field.Val.
package dwarfreader

import (
	"bytes"
	"debug/dwarf"
	"debug/elf"
	"errors"
	"io"
	"math"

	"github.com/jetsetilly/scopeview/scopeerrors"
)

// elfMagic is the four leading bytes that identify an ELF file.
var elfMagic = []byte{0x7f, 'E', 'L', 'F'}

// DebugData is a handle onto one ELF+DWARF input file. All native
// allocations (the *elf.File, the *dwarf.Data) are owned by this value and
// released when it is garbage collected; no native handle escapes the
// adapter.
type DebugData struct {
	ef   *elf.File
	dwrf *dwarf.Data
	path string
}

// Open reads path, verifies it is an ELF file, and parses its DWARF debug
// sections. A file that cannot be opened is reported as a
// scopeerrors.FileNotFound curated error; any later failure as a
// scopeerrors.InvalidFile or scopeerrors.InvalidDwarf curated error.
func Open(path string) (*DebugData, error) {
	magic := make([]byte, 4)
	f, err := elfOpenRaw(path)
	if err != nil {
		return nil, scopeerrors.Errorf(scopeerrors.Messages[scopeerrors.FileNotFound], path)
	}
	defer f.Close()

	if _, err := io.ReadFull(f, magic); err != nil || !bytes.Equal(magic, elfMagic) {
		return nil, scopeerrors.Errorf(scopeerrors.Messages[scopeerrors.InvalidFile], path)
	}

	ef, err := elf.Open(path)
	if err != nil {
		return nil, scopeerrors.Errorf(scopeerrors.Messages[scopeerrors.InvalidFile], path+": "+err.Error())
	}

	dwrf, err := ef.DWARF()
	if err != nil {
		ef.Close()
		return nil, scopeerrors.Errorf(scopeerrors.Messages[scopeerrors.InvalidDwarf], path+": "+err.Error())
	}

	return &DebugData{ef: ef, dwrf: dwrf, path: path}, nil
}

// Close releases the underlying ELF file descriptor.
func (d *DebugData) Close() error {
	return d.ef.Close()
}

// CU describes one compile unit's offset range and DIE forest.
// HeaderOffset is the offset of the unit's root DIE (debug/dwarf does not
// expose unit header offsets); NextHeaderOffset is the root DIE offset of
// the following unit, or math.MaxUint64 for the last unit.
type CU struct {
	HeaderOffset     uint64
	NextHeaderOffset uint64
	Root             *Die
}

// CompileUnits walks the entire DWARF .debug_info section once, in file
// order, and returns one CU per top-level compile_unit entry with its full
// DIE tree already attached.
func (d *DebugData) CompileUnits() ([]CU, error) {
	var cus []CU

	r := d.dwrf.Reader()

	for {
		entry, err := r.Next()
		if err != nil {
			return cus, err
		}
		if entry == nil {
			break
		}
		off := entry.Offset
		if entry.Tag != dwarf.TagCompileUnit {
			// a malformed or unexpected top-level entry; skip its subtree
			if entry.Children {
				if err := skipChildren(r); err != nil {
					return cus, err
				}
			}
			continue
		}

		root := newDie(d, entry, uint64(off))
		if entry.Children {
			children, err := readChildren(d, r)
			if err != nil {
				return cus, err
			}
			root.children = children
		}

		if len(cus) > 0 {
			cus[len(cus)-1].NextHeaderOffset = uint64(off)
		}
		cus = append(cus, CU{
			HeaderOffset:     uint64(off),
			NextHeaderOffset: math.MaxUint64,
			Root:             root,
		})
	}

	return cus, nil
}

func skipChildren(r *dwarf.Reader) error {
	depth := 1
	for depth > 0 {
		e, err := r.Next()
		if err != nil {
			return err
		}
		if e == nil {
			depth--
			continue
		}
		if e.Children {
			depth++
		}
	}
	return nil
}

// readChildren reads one full sibling list (terminated by a nil entry),
// recursing into any grandchildren, building the DIE forest for a subtree
// in a single pass over the shared reader.
func readChildren(d *DebugData, r *dwarf.Reader) ([]*Die, error) {
	var children []*Die
	for {
		entry, err := r.Next()
		if err != nil {
			return nil, err
		}
		if entry == nil {
			return children, nil
		}

		child := newDie(d, entry, uint64(entry.Offset))
		if entry.Children {
			grandchildren, err := readChildren(d, r)
			if err != nil {
				return nil, err
			}
			child.children = grandchildren
		}
		children = append(children, child)
	}
}

// errInvalidDwarf is returned by consumers that want to distinguish a
// structural DWARF problem from an ordinary io.EOF; kept for parity with
// the "UnsupportedDWARF" sentinel pattern the teacher's own dwarf package
// uses (there: dwarf.UnsupportedDWARF).
var errInvalidDwarf = errors.New("dwarfreader: invalid or unsupported DWARF data")

// ErrInvalidDwarf names DWARF data that is present but structurally
// unusable. No function in this package returns it: CompileUnits reports
// DWARF data with no compile units as an empty slice and a nil error.
var ErrInvalidDwarf = errInvalidDwarf
