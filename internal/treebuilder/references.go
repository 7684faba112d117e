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

package treebuilder

import (
	"debug/dwarf"

	"github.com/jetsetilly/scopeview/internal/dwarfreader"
	"github.com/jetsetilly/scopeview/internal/scopetree"
)

// resolveTypeLink implements §4.2.3's type_ref half: DW_AT_type, falling
// back to DW_AT_import for the two imported variants.
func (b *builder) resolveTypeLink(die *dwarfreader.Die, node scopetree.Node, disp dispatchEntry) {
	v := die.GetAttr(dwarf.AttrType)
	if v.Kind != dwarfreader.AttrReference && isImportedVariant(disp.variant) {
		v = die.GetAttr(dwarf.AttrImport)
	}
	if v.Kind != dwarfreader.AttrReference {
		return
	}

	b.linkOrDefer(v.Ref, node, b.typesToBeSet, scopetree.SetTypeRef)
}

// resolveReferenceLink implements §4.2.3's reference half: specification,
// then abstract_origin, then extension, first-present-wins (§9: "this
// ordering is taken as intentional").
func (b *builder) resolveReferenceLink(die *dwarfreader.Die, node scopetree.Node) {
	v := die.GetAttr(dwarf.AttrSpecification)
	if v.Kind != dwarfreader.AttrReference {
		v = die.GetAttr(dwarf.AttrAbstractOrigin)
	}
	if v.Kind != dwarfreader.AttrReference {
		v = die.GetAttr(dwarf.AttrExtension)
	}
	if v.Kind != dwarfreader.AttrReference {
		return
	}

	// the reference link is only ever Scope<->Scope or Symbol<->Symbol;
	// mismatches are silently dropped (§4.2.3 rule 2), enforced both here
	// (immediate target) and in backfill (deferred target).
	if !isReferenceCapable(node) {
		return
	}

	b.linkOrDefer(v.Ref, node, b.referencesToBeSet, func(referrer, target scopetree.Node) {
		if !sameReferenceFamily(referrer, target) {
			return
		}
		scopetree.SetReference(referrer, target)
	})
}

// linkOrDefer sets the link immediately if the target has already been
// built, marking cross-CU globality in either direction; otherwise it
// enqueues the referrer against the target's offset for backfill (§4.2.4).
func (b *builder) linkOrDefer(targetOffset uint64, referrer scopetree.Node, table map[uint64][]scopetree.Node, set func(referrer, target scopetree.Node)) {
	if target, ok := b.createdNodes[targetOffset]; ok {
		set(referrer, target)
		if !b.currentCU.contains(targetOffset) {
			scopetree.SetGlobalReference(target)
		}
		return
	}
	table[targetOffset] = append(table[targetOffset], referrer)
}

// backfill satisfies any deferred links that were waiting on the DIE just
// built at offset (§4.2.4).
func (b *builder) backfill(offset uint64, node scopetree.Node) {
	if referrers, ok := b.typesToBeSet[offset]; ok {
		for _, r := range referrers {
			scopetree.SetTypeRef(r, node)
			if !b.currentCU.contains(scopetree.DwarfOffsetOf(r)) {
				scopetree.SetGlobalReference(node)
			}
		}
		delete(b.typesToBeSet, offset)
	}

	if referrers, ok := b.referencesToBeSet[offset]; ok {
		for _, r := range referrers {
			if !sameReferenceFamily(r, node) {
				continue
			}
			scopetree.SetReference(r, node)
			if !b.currentCU.contains(scopetree.DwarfOffsetOf(r)) {
				scopetree.SetGlobalReference(node)
			}
		}
		delete(b.referencesToBeSet, offset)
	}
}

func isImportedVariant(v scopetree.Variant) bool {
	return v == scopetree.VariantImportedDeclaration || v == scopetree.VariantImportedModule
}

func isReferenceCapable(n scopetree.Node) bool {
	switch n.(type) {
	case *scopetree.ScopeNode, *scopetree.SymbolNode:
		return true
	}
	return false
}

func sameReferenceFamily(a, b scopetree.Node) bool {
	_, aScope := a.(*scopetree.ScopeNode)
	_, bScope := b.(*scopetree.ScopeNode)
	if aScope && bScope {
		return true
	}
	_, aSym := a.(*scopetree.SymbolNode)
	_, bSym := b.(*scopetree.SymbolNode)
	return aSym && bSym
}
