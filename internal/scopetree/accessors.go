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

package scopetree

// This file collects accessors over a bare Node that the builder and
// resolver packages need but that would otherwise require a type switch
// over all four families at every call site. They all go through base(),
// which only this package may call; they read and mutate the common
// attributes of the Node they are handed.

// SetName records name on n (see Base.SetName).
func SetName(n Node, name string) { n.base().SetName(name) }

// HasName reports whether n has ever had a name set.
func HasName(n Node) bool { return n.base().HasName() }

// NameOf returns n's name, or "" if it was never set.
func NameOf(n Node) string { return n.base().Name }

// SetQualifiedNamePrefix records n's synthesized qualified-name prefix.
func SetQualifiedNamePrefix(n Node, prefix string) { n.base().QualifiedNamePrefix = prefix }

// QualifiedNamePrefixOf returns n's qualified-name prefix.
func QualifiedNamePrefixOf(n Node) string { return n.base().QualifiedNamePrefix }

// SetTypeRef records n's type_ref link.
func SetTypeRef(n Node, ref Node) { n.base().TypeRef = ref }

// TypeRefOf returns n's type_ref link, or nil if unset.
func TypeRefOf(n Node) Node { return n.base().TypeRef }

// SetReference records n's declaration/definition reference link.
func SetReference(n Node, ref Node) { n.base().Reference = ref }

// ReferenceOf returns n's reference link, or nil if unset.
func ReferenceOf(n Node) Node { return n.base().Reference }

// SetDwarfOffset records n's global DIE offset.
func SetDwarfOffset(n Node, off uint64) { n.base().DwarfOffset = off }

// DwarfOffsetOf returns n's global DIE offset.
func DwarfOffsetOf(n Node) uint64 { return n.base().DwarfOffset }

// SetDwarfTag records n's original DWARF tag.
func SetDwarfTag(n Node, tag uint16) { n.base().DwarfTag = tag }

// DwarfTagOf returns n's original DWARF tag.
func DwarfTagOf(n Node) uint16 { return n.base().DwarfTag }

// SetSourceFileIndex records n's DW_AT_decl_file, translated into a CU file
// table index.
func SetSourceFileIndex(n Node, idx int) { n.base().SetSourceFileIndex(idx) }

// HasSourceFileIndex reports whether n carries a source file index.
func HasSourceFileIndex(n Node) bool { return n.base().HasSourceFileIndex() }

// SourceFileIndexOf returns n's source file index.
func SourceFileIndexOf(n Node) int { return n.base().SourceFileIndex }

// SetSourceLine records n's DW_AT_decl_line.
func SetSourceLine(n Node, line int) { n.base().SetSourceLine(line) }

// HasSourceLine reports whether n carries a source line.
func HasSourceLine(n Node) bool { return n.base().HasSourceLine() }

// SourceLineOf returns n's source line.
func SourceLineOf(n Node) int { return n.base().SourceLine }

// SetInvalidFileName flags n as referencing a file id outside its CU's file
// table.
func SetInvalidFileName(n Node, v bool) { n.base().InvalidFileName = v }

// InvalidFileNameOf reports whether n was flagged by SetInvalidFileName.
func InvalidFileNameOf(n Node) bool { return n.base().InvalidFileName }

// SetGlobalReference marks n as reachable from another compile unit.
func SetGlobalReference(n Node) { n.base().IsGlobalReference = true }

// IsGlobalReferenceOf reports whether n itself is marked global. The flag
// covers descendants of a global node only after resolve.Globality has
// propagated it.
func IsGlobalReferenceOf(n Node) bool { return n.base().IsGlobalReference }

// ParentOf returns n's enclosing Scope, or nil for the root.
func ParentOf(n Node) *ScopeNode { return n.base().Parent }

// LevelOf returns n's nesting depth.
func LevelOf(n Node) int { return n.base().Level }

// KindOf returns n's family discriminator.
func KindOf(n Node) Kind { return n.base().Kind }

// VariantOf returns n's variant discriminator.
func VariantOf(n Node) Variant { return n.base().Variant }

// ChildrenOf returns n's owned children, in insertion order.
func ChildrenOf(n Node) []Node { return n.base().Children }

// SetChildren replaces n's owned children (used by the sorter).
func SetChildren(n Node, children []Node) { n.base().Children = children }
