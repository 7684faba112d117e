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

// Package scopetree defines the logical-view data model: a rooted tree of
// Objects describing the debug scope of a program, as built from DWARF by
// the dwarfreader/treebuilder packages and completed by the resolve
// package.
//
// The node taxonomy is closed: every Object belongs to exactly one of four
// families (Scope, Type, Symbol, Line). Rather than a single struct with a
// family-specific side table, each family is a distinct Go type embedding
// Base, and the sealed Node interface is the "sum type" dispatch point —
// callers type-switch on Node the way the original C++ used dynamic_cast.
package scopetree

// Kind is the family discriminator. It is set at creation and never
// changes.
type Kind int

const (
	KindScope Kind = iota
	KindType
	KindSymbol
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindScope:
		return "scope"
	case KindType:
		return "type"
	case KindSymbol:
		return "symbol"
	case KindLine:
		return "line"
	default:
		return "?"
	}
}

// Variant is the tag within a family, e.g. which kind of Scope or Type this
// node is. Variant is immutable once the node is created.
type Variant int

const (
	// Scope variants
	VariantRoot Variant = iota
	VariantCompileUnit
	VariantNamespace
	VariantClass
	VariantStruct
	VariantUnion
	VariantEnumeration
	VariantArray
	VariantFunction
	VariantAlias
	VariantBlock
	VariantTemplatePack

	// Type variants
	VariantBase
	VariantConst
	VariantVolatile
	VariantPointer
	VariantPointerMember
	VariantReference
	VariantRestrict
	VariantRvalueReference
	VariantUnspecified
	VariantTypeDef
	VariantEnumerator
	VariantSubrange
	VariantTemplateValue
	VariantTemplateType
	VariantTemplateTemplate
	VariantImportedDeclaration
	VariantImportedModule
	VariantInheritance

	// Symbol variants
	VariantParameter
	VariantUnspecifiedParameter
	VariantMember
	VariantVariable

	// Line has no further variant, but the constant exists for
	// completeness and for use in sibling tie-breaking (sort key #3).
	VariantLine
)

// FunctionKind further distinguishes a Scope(Function) node, mirroring the
// four DWARF tags that map onto it.
type FunctionKind int

const (
	FunctionSubprogram FunctionKind = iota
	FunctionSubroutineType
	FunctionInlined
	FunctionEntryPoint
	FunctionLabel
)

// BlockKind further distinguishes a Scope(Block) node.
type BlockKind int

const (
	BlockLexical BlockKind = iota
	BlockTry
	BlockCatch
)

// AccessSpecifier is carried by Inheritance Type nodes and Member Symbol
// nodes.
type AccessSpecifier int

const (
	AccessUnspecified AccessSpecifier = iota
	AccessPrivate
	AccessProtected
	AccessPublic
)

func (a AccessSpecifier) String() string {
	switch a {
	case AccessPrivate:
		return "private"
	case AccessProtected:
		return "protected"
	case AccessPublic:
		return "public"
	default:
		return "unspecified"
	}
}

// Node is implemented by every node family. The base method is unexported,
// so an outside package cannot write its own base method; Node is satisfied
// by *Base and by any type that embeds Base, which includes the four
// concrete families declared in this package. Outside packages can still
// construct those families directly (e.g. &scopetree.SymbolNode{}).
type Node interface {
	base() *Base
}

// Base holds the attributes common to every Object, regardless of family.
type Base struct {
	Kind    Kind
	Variant Variant
	Level   int

	Name    string
	hasName bool

	QualifiedNamePrefix string

	// TypeRef is the node's DWARF "type" link: a Type, a Scope that
	// represents a type (array, class, struct, union, enum, subroutine),
	// or the imported target of an imported_module/imported_declaration
	// (a Namespace Scope or Member Symbol).
	TypeRef Node

	DwarfOffset uint64
	DwarfTag    uint16

	SourceFileIndex    int
	hasSourceFileIndex bool
	SourceLine         int
	hasSourceLine      bool
	InvalidFileName    bool

	IsGlobalReference bool

	// Reference links a declaration to its definition (DW_AT_specification,
	// DW_AT_abstract_origin, DW_AT_extension). Only ever Scope<->Scope or
	// Symbol<->Symbol; see treebuilder.
	Reference Node

	// Parent is a non-owning back-pointer. Only a Scope can be a parent,
	// so invariant #1 ("the parent is a Scope") is enforced by the type
	// system rather than at runtime.
	Parent *ScopeNode

	// Children is the owning link: the tree's lifetime is exactly the
	// root's lifetime.
	Children []Node
}

func (b *Base) base() *Base { return b }

// SetName records a resolved or DWARF-given name. An empty string is a
// legitimate "no name" for DWARF purposes, so presence is tracked
// separately via HasName.
func (b *Base) SetName(name string) {
	b.Name = name
	b.hasName = true
}

// HasName reports whether DW_AT_name (or a synthesized name) was ever set.
func (b *Base) HasName() bool { return b.hasName }

// SetSourceFileIndex records DW_AT_decl_file, translated via the owning
// compile unit's file table.
func (b *Base) SetSourceFileIndex(idx int) {
	b.SourceFileIndex = idx
	b.hasSourceFileIndex = true
}

// HasSourceFileIndex reports whether DW_AT_decl_file was present.
func (b *Base) HasSourceFileIndex() bool { return b.hasSourceFileIndex }

// SetSourceLine records DW_AT_decl_line.
func (b *Base) SetSourceLine(line int) {
	b.SourceLine = line
	b.hasSourceLine = true
}

// HasSourceLine reports whether DW_AT_decl_line was present.
func (b *Base) HasSourceLine() bool { return b.hasSourceLine }

// ScopeNode is a namespace-like container: compile unit, namespace,
// class/struct/union, enumeration, function, block, array type, template
// pack/alias, or the tree root.
type ScopeNode struct {
	Base

	// FunctionKind is meaningful only when Variant == VariantFunction.
	FunctionKind FunctionKind
	// BlockKind is meaningful only when Variant == VariantBlock.
	BlockKind BlockKind

	IsDeclaration    bool
	IsStatic         bool
	IsDeclaredInline bool
	IsInlined        bool
	IsTemplate       bool
	IsEnumClass      bool

	// FileTable is populated for CompileUnit scopes only: a per-CU mapping
	// from DWARF file id to path. FileTable[0] is always "".
	FileTable []string
}

// TypeNode is a non-container type or type modifier.
type TypeNode struct {
	Base

	ByteSize    int
	hasByteSize bool

	// Value holds the literal for Enumerator, TemplateValue and
	// TemplateTemplate variants.
	Value    string
	hasValue bool

	// AccessSpecifier is meaningful only for Inheritance.
	AccessSpecifier AccessSpecifier
}

// SetByteSize records DW_AT_byte_size.
func (t *TypeNode) SetByteSize(n int) {
	t.ByteSize = n
	t.hasByteSize = true
}

// HasByteSize reports whether DW_AT_byte_size was present.
func (t *TypeNode) HasByteSize() bool { return t.hasByteSize }

// SetValue records the literal value of an Enumerator, TemplateValue or
// TemplateTemplate node.
func (t *TypeNode) SetValue(v string) {
	t.Value = v
	t.hasValue = true
}

// HasValue reports whether a literal value was ever set.
func (t *TypeNode) HasValue() bool { return t.hasValue }

// SymbolNode is a named program entity: variable, parameter,
// unspecified-parameter, or member. Symbols never own children.
type SymbolNode struct {
	Base

	// AccessSpecifier is meaningful only for Member.
	AccessSpecifier AccessSpecifier
}

// LineNode is a single source-line record attached to a CompileUnit.
type LineNode struct {
	Base

	LineNumber     int
	Address        uint64
	Discriminator  uint64
	IsNewStatement bool
	IsNewBasicBlock bool
	IsLineEndSequence bool
	IsEpilogueBegin   bool
	IsPrologueEnd     bool
}

// Tree is a complete scope tree for one input file.
type Tree struct {
	Root *ScopeNode
}

// NewTree creates the synthetic root Scope for inputPath, at the sentinel
// level (-1), so that every compile unit — created at level 0 per the
// specification — is exactly one level below it.
func NewTree(inputPath string) *Tree {
	root := &ScopeNode{}
	root.Kind = KindScope
	root.Variant = VariantRoot
	root.Level = -1
	root.SetName(inputPath)
	return &Tree{Root: root}
}

// NewScope creates a Scope node of the given variant as a child of parent,
// appends it to parent's Children, and sets its back-pointer. level must be
// parent.Level + 1 (invariant #3).
func NewScope(parent *ScopeNode, variant Variant, level int) *ScopeNode {
	n := &ScopeNode{}
	n.Kind = KindScope
	n.Variant = variant
	n.Level = level
	n.Parent = parent
	parent.Children = append(parent.Children, n)
	return n
}

// NewType creates a Type node as a child of parent.
func NewType(parent *ScopeNode, variant Variant, level int) *TypeNode {
	n := &TypeNode{}
	n.Kind = KindType
	n.Variant = variant
	n.Level = level
	n.Parent = parent
	parent.Children = append(parent.Children, n)
	return n
}

// NewSymbol creates a Symbol node as a child of parent.
func NewSymbol(parent *ScopeNode, variant Variant, level int) *SymbolNode {
	n := &SymbolNode{}
	n.Kind = KindSymbol
	n.Variant = variant
	n.Level = level
	n.Parent = parent
	parent.Children = append(parent.Children, n)
	return n
}

// NewLine creates a Line node as a child of parent (a CompileUnit Scope).
func NewLine(parent *ScopeNode, level int) *LineNode {
	n := &LineNode{}
	n.Kind = KindLine
	n.Variant = VariantLine
	n.Level = level
	n.Parent = parent
	parent.Children = append(parent.Children, n)
	return n
}

// AsScope type-asserts n to *ScopeNode, returning ok=false if n is not a
// Scope (or is nil).
func AsScope(n Node) (*ScopeNode, bool) {
	if n == nil {
		return nil, false
	}
	s, ok := n.(*ScopeNode)
	return s, ok
}

// AsType type-asserts n to *TypeNode.
func AsType(n Node) (*TypeNode, bool) {
	if n == nil {
		return nil, false
	}
	s, ok := n.(*TypeNode)
	return s, ok
}

// AsSymbol type-asserts n to *SymbolNode.
func AsSymbol(n Node) (*SymbolNode, bool) {
	if n == nil {
		return nil, false
	}
	s, ok := n.(*SymbolNode)
	return s, ok
}

// AsLine type-asserts n to *LineNode.
func AsLine(n Node) (*LineNode, bool) {
	if n == nil {
		return nil, false
	}
	s, ok := n.(*LineNode)
	return s, ok
}

// Walk visits every node in the tree in depth-first, pre-order fashion,
// starting with the root itself.
func Walk(root Node, visit func(Node)) {
	visit(root)
	for _, c := range root.base().Children {
		Walk(c, visit)
	}
}

// IsTypeLike reports whether a Scope variant may be the target of a
// type_ref link (invariant #2): array, class, struct, union, enum, or a
// function acting as a subroutine type.
func IsTypeLike(s *ScopeNode) bool {
	switch s.Variant {
	case VariantArray, VariantClass, VariantStruct, VariantUnion, VariantEnumeration:
		return true
	case VariantFunction:
		return s.FunctionKind == FunctionSubroutineType
	}
	return false
}
