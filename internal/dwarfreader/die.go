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

import "debug/dwarf"

// Die is a single Debug Information Entry, already resolved to its
// children (see CompileUnits: the whole forest for a CU is read in one
// pass over the shared *dwarf.Reader, so there is no lazy re-entry into the
// reader once CompileUnits has returned).
type Die struct {
	d      *DebugData
	entry  *dwarf.Entry
	offset uint64

	children []*Die
}

func newDie(d *DebugData, entry *dwarf.Entry, offset uint64) *Die {
	return &Die{d: d, entry: entry, offset: offset}
}

// GlobalOffset returns the DIE's offset within .debug_info, a stable
// identifier used as the tree builder's primary key.
func (die *Die) GlobalOffset() uint64 {
	return die.offset
}

// Tag returns the DIE's DWARF tag.
func (die *Die) Tag() uint16 {
	return uint16(die.entry.Tag)
}

// Name returns DW_AT_name, or the empty string if unnamed.
func (die *Die) Name() string {
	fld := die.entry.AttrField(dwarf.AttrName)
	if fld == nil {
		return ""
	}
	s, _ := fld.Val.(string)
	return s
}

// HasAttr reports whether the DIE carries the given attribute.
func (die *Die) HasAttr(attr dwarf.Attr) bool {
	return die.entry.AttrField(attr) != nil
}

// Children returns the DIE's immediate children, in document order.
func (die *Die) Children() []*Die {
	return die.children
}

// AttrKind discriminates the variants of AttrValue.
type AttrKind int

const (
	AttrEmpty AttrKind = iota
	AttrUnknownForm
	AttrReference
	AttrAddress
	AttrBoolean
	AttrUnsigned
	AttrSigned
	AttrBytes
	AttrExprloc
	AttrString
)

// AttrValue is a tagged union over the handful of DWARF attribute value
// shapes the builder cares about. Every variant is produced by dispatching
// on the DWARF form's Class (as reported by debug/dwarf), not the
// attribute's expected type, matching the specification's "dispatching on
// the DWARF form of the attribute".
type AttrValue struct {
	Kind AttrKind

	Ref   uint64
	Addr  uint64
	Bool  bool
	Uint  uint64
	Int   int64
	Bytes []byte
	Str   string
}

// GetAttr resolves attr on the DIE to a typed AttrValue. An absent
// attribute yields AttrEmpty; a form this package does not recognise yields
// AttrUnknownForm rather than a panic or error, per the specification's
// failure contract for per-attribute problems.
func (die *Die) GetAttr(attr dwarf.Attr) AttrValue {
	fld := die.entry.AttrField(attr)
	if fld == nil {
		return AttrValue{Kind: AttrEmpty}
	}

	switch fld.Class {
	case dwarf.ClassAddress:
		if v, ok := fld.Val.(uint64); ok {
			return AttrValue{Kind: AttrAddress, Addr: v}
		}
	case dwarf.ClassBlock:
		if v, ok := fld.Val.([]byte); ok {
			return AttrValue{Kind: AttrBytes, Bytes: v}
		}
	case dwarf.ClassExprLoc:
		if v, ok := fld.Val.([]byte); ok {
			return AttrValue{Kind: AttrExprloc, Bytes: v}
		}
	case dwarf.ClassConstant:
		if v, ok := fld.Val.(int64); ok {
			if v < 0 {
				return AttrValue{Kind: AttrSigned, Int: v}
			}
			return AttrValue{Kind: AttrUnsigned, Uint: uint64(v)}
		}
	case dwarf.ClassFlag:
		if v, ok := fld.Val.(bool); ok {
			return AttrValue{Kind: AttrBoolean, Bool: v}
		}
	case dwarf.ClassString, dwarf.ClassStringAlt:
		if v, ok := fld.Val.(string); ok {
			return AttrValue{Kind: AttrString, Str: v}
		}
	case dwarf.ClassReference, dwarf.ClassReferenceAlt:
		if v, ok := fld.Val.(dwarf.Offset); ok {
			return AttrValue{Kind: AttrReference, Ref: uint64(v)}
		}
	case dwarf.ClassReferenceSig:
		if v, ok := fld.Val.(uint64); ok {
			return AttrValue{Kind: AttrUnsigned, Uint: v}
		}
	}

	return AttrValue{Kind: AttrUnknownForm}
}

// AsSignedInt returns the value as a signed integer regardless of whether
// it arrived as AttrSigned or AttrUnsigned, for callers (e.g. the lower
// bound of a subrange) that only care about the number.
func (v AttrValue) AsSignedInt() (int64, bool) {
	switch v.Kind {
	case AttrSigned:
		return v.Int, true
	case AttrUnsigned:
		return int64(v.Uint), true
	}
	return 0, false
}
