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

// Package treebuilder walks the DIE forest produced by dwarfreader and
// builds a scopetree.Tree, one node per DIE, recording forward references
// that cannot be resolved until a later DIE is visited.
//
// This is the hardest-engineering component in the repository (the
// specification allots it the largest single share of the original source).
// The two deferred-reference tables (typesToBeSet, referencesToBeSet) are
// exactly the "to-be-set" multimaps of the design notes: classic
// build-time-only structures, drained by the time Build returns.
package treebuilder

import (
	"debug/dwarf"
	"fmt"

	"github.com/jetsetilly/scopeview/internal/dwarfreader"
	"github.com/jetsetilly/scopeview/internal/scopetree"
	"github.com/jetsetilly/scopeview/logger"
	"github.com/jetsetilly/scopeview/scopeerrors"
)

// cuRange is the half-open DWARF offset range of one compile unit, used to
// decide whether a resolved reference crosses a CU boundary (§4.2.3/4.2.4).
type cuRange struct {
	start, end uint64
}

func (r cuRange) contains(offset uint64) bool {
	return offset >= r.start && offset < r.end
}

// builder holds the tables that only exist during the build walk (§5: "owned
// by the reader and live only during the build phase").
type builder struct {
	tree *scopetree.Tree

	createdNodes      map[uint64]scopetree.Node
	typesToBeSet      map[uint64][]scopetree.Node
	referencesToBeSet map[uint64][]scopetree.Node
	unknownTags       map[uint16]bool

	currentCU cuRange
	fileTable []string
}

// Build walks every compile unit in dd and returns the completed (but not
// yet resolved or sorted) scope tree for inputPath.
func Build(dd *dwarfreader.DebugData, inputPath string) (*scopetree.Tree, error) {
	b := &builder{
		tree:              scopetree.NewTree(inputPath),
		createdNodes:      make(map[uint64]scopetree.Node),
		typesToBeSet:      make(map[uint64][]scopetree.Node),
		referencesToBeSet: make(map[uint64][]scopetree.Node),
		unknownTags:       make(map[uint16]bool),
	}

	cus, err := dd.CompileUnits()
	if err != nil {
		return nil, scopeerrors.Errorf(scopeerrors.Messages[scopeerrors.InvalidDwarf], err.Error())
	}

	for _, cu := range cus {
		b.currentCU = cuRange{start: cu.HeaderOffset, end: cu.NextHeaderOffset}

		fileTable, err := cu.Root.SourceFiles()
		if err != nil || len(fileTable) == 0 {
			fileTable = []string{""}
		}
		b.fileTable = fileTable

		b.visit(cu.Root, b.tree.Root, 0)
	}

	// a dangling forward reference is a warning, not a fatal error: the
	// offset was named but never emitted as a DIE.
	for offset := range b.typesToBeSet {
		logger.Logf(logger.Allow, "treebuilder", scopeerrors.Messages[scopeerrors.MissingType], fmt.Sprintf("0x%x", offset))
	}
	for offset := range b.referencesToBeSet {
		logger.Logf(logger.Allow, "treebuilder", scopeerrors.Messages[scopeerrors.MissingReference], fmt.Sprintf("0x%x", offset))
	}

	return b.tree, nil
}

// visit implements the recursive walk of §4.2. parent is always a Scope;
// die's children are only visited if the node just built is itself a Scope
// (the only family that owns children in this tree).
func (b *builder) visit(die *dwarfreader.Die, parent *scopetree.ScopeNode, level int) {
	disp, ok := dispatch[dwarf.Tag(die.Tag())]
	if !ok {
		if !b.unknownTags[die.Tag()] {
			b.unknownTags[die.Tag()] = true
			logger.Logf(logger.Allow, "treebuilder", scopeerrors.Messages[scopeerrors.UnknownDwarfTag], fmt.Sprintf("0x%02x", die.Tag()))
		}
		return
	}

	node := b.instantiate(parent, level, disp)

	offset := die.GlobalOffset()
	b.createdNodes[offset] = node
	scopetree.SetDwarfOffset(node, offset)
	scopetree.SetDwarfTag(node, die.Tag())

	if name := die.Name(); name != "" {
		scopetree.SetName(node, name)
	}
	b.fillDeclLocation(die, node)
	b.applyFamilyAttributes(die, node, disp)
	b.markTemplateParent(parent, disp.variant)

	b.resolveTypeLink(die, node, disp)
	b.resolveReferenceLink(die, node)
	b.backfill(offset, node)

	if scope, ok := node.(*scopetree.ScopeNode); ok {
		if disp.variant == scopetree.VariantCompileUnit {
			scope.FileTable = b.fileTable
			b.emitLines(die, scope, level+1)
		}
		for _, child := range die.Children() {
			b.visit(child, scope, level+1)
		}
	}
}

func (b *builder) instantiate(parent *scopetree.ScopeNode, level int, disp dispatchEntry) scopetree.Node {
	switch disp.family {
	case familyScope:
		s := scopetree.NewScope(parent, disp.variant, level)
		s.FunctionKind = disp.functionKind
		s.BlockKind = disp.blockKind
		return s
	case familyType:
		return scopetree.NewType(parent, disp.variant, level)
	default:
		return scopetree.NewSymbol(parent, disp.variant, level)
	}
}

// fillDeclLocation fills the common decl_line/decl_file attributes (§4.2
// step 5).
func (b *builder) fillDeclLocation(die *dwarfreader.Die, node scopetree.Node) {
	if v := die.GetAttr(dwarf.AttrDeclLine); v.Kind != dwarfreader.AttrEmpty {
		if n, ok := v.AsSignedInt(); ok {
			scopetree.SetSourceLine(node, int(n))
		}
	}
	if v := die.GetAttr(dwarf.AttrDeclFile); v.Kind != dwarfreader.AttrEmpty {
		if n, ok := v.AsSignedInt(); ok {
			idx := int(n)
			scopetree.SetSourceFileIndex(node, idx)
			if idx < 0 || idx >= len(b.fileTable) {
				scopetree.SetInvalidFileName(node, true)
			}
		}
	}
}

func (b *builder) markTemplateParent(parent *scopetree.ScopeNode, variant scopetree.Variant) {
	switch variant {
	case scopetree.VariantTemplateValue, scopetree.VariantTemplateType, scopetree.VariantTemplateTemplate, scopetree.VariantTemplatePack:
		if parent != nil {
			parent.IsTemplate = true
		}
	}
}

// emitLines populates a CompileUnit scope's Line children from its line
// table (§4.2.2: "emit each line table entry as a Line child").
func (b *builder) emitLines(die *dwarfreader.Die, cu *scopetree.ScopeNode, level int) {
	entries, err := die.LineTable()
	if err != nil {
		logger.Logf(logger.Allow, "treebuilder", "could not read line table for %s: %s", cu.Name, err)
		return
	}

	for _, le := range entries {
		ln := scopetree.NewLine(cu, level)
		ln.LineNumber = le.LineNumber
		ln.Address = le.Address
		ln.Discriminator = le.Discriminator
		ln.IsNewStatement = le.IsNewStatement
		ln.IsNewBasicBlock = le.IsNewBasicBlock
		ln.IsLineEndSequence = le.IsLineEndSequence
		ln.IsEpilogueBegin = le.IsEpilogueBegin
		ln.IsPrologueEnd = le.IsPrologueEnd

		if le.FileIndex >= 0 && le.FileIndex < len(b.fileTable) {
			scopetree.SetSourceFileIndex(ln, le.FileIndex)
		} else {
			scopetree.SetInvalidFileName(ln, true)
		}
	}
}
