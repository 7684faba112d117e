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
	"fmt"
	"strconv"

	"github.com/jetsetilly/scopeview/internal/dwarfreader"
	"github.com/jetsetilly/scopeview/internal/scopetree"
)

// applyFamilyAttributes dispatches to the §4.2.2 per-family handlers.
func (b *builder) applyFamilyAttributes(die *dwarfreader.Die, node scopetree.Node, disp dispatchEntry) {
	switch disp.family {
	case familyScope:
		b.applyScopeAttributes(die, node.(*scopetree.ScopeNode), disp.variant)
	case familyType:
		b.applyTypeAttributes(die, node.(*scopetree.TypeNode), disp.variant)
	case familySymbol:
		b.applySymbolAttributes(die, node.(*scopetree.SymbolNode), disp.variant)
	}
}

func (b *builder) applyScopeAttributes(die *dwarfreader.Die, scope *scopetree.ScopeNode, variant scopetree.Variant) {
	switch variant {
	case scopetree.VariantEnumeration:
		if v := die.GetAttr(dwarf.AttrEnumClass); v.Kind == dwarfreader.AttrBoolean {
			scope.IsEnumClass = v.Bool
		}

	case scopetree.VariantFunction:
		if v := die.GetAttr(dwarf.AttrDeclaration); v.Kind == dwarfreader.AttrBoolean {
			scope.IsDeclaration = v.Bool
		}
		if v := die.GetAttr(dwarf.AttrInline); v.Kind != dwarfreader.AttrEmpty {
			if n, ok := v.AsSignedInt(); ok {
				scope.IsDeclaredInline = n == inlDeclaredInlined || n == inlDeclaredNotInlined
				scope.IsInlined = n == inlInlined || n == inlDeclaredInlined
			}
		}

		// §4.2.2: "is_static ← (no DW_AT_specification) ∧ ¬DW_AT_external"
		// — this is the optimistic first pass; the reference resolver
		// (§4.4 rule 3) patches it from the specification target once that
		// target is known, per the open question in §9.
		external := false
		if v := die.GetAttr(dwarf.AttrExternal); v.Kind == dwarfreader.AttrBoolean {
			external = v.Bool
		}
		scope.IsStatic = !die.HasAttr(dwarf.AttrSpecification) && !external
	}
}

func (b *builder) applyTypeAttributes(die *dwarfreader.Die, typ *scopetree.TypeNode, variant scopetree.Variant) {
	switch variant {
	case scopetree.VariantBase:
		if v := die.GetAttr(dwarf.AttrByteSize); v.Kind != dwarfreader.AttrEmpty {
			if n, ok := v.AsSignedInt(); ok {
				typ.SetByteSize(int(n))
			}
		}

	case scopetree.VariantEnumerator, scopetree.VariantTemplateValue:
		if v := die.GetAttr(dwarf.AttrConstValue); v.Kind != dwarfreader.AttrEmpty {
			switch v.Kind {
			case dwarfreader.AttrSigned:
				typ.SetValue(strconv.FormatInt(v.Int, 10))
			case dwarfreader.AttrUnsigned:
				typ.SetValue(strconv.FormatUint(v.Uint, 10))
			}
		}

	case scopetree.VariantTemplateTemplate:
		if v := die.GetAttr(attrGNUTemplateName); v.Kind == dwarfreader.AttrString {
			typ.SetValue(v.Str)
		}

	case scopetree.VariantSubrange:
		typ.SetName(subrangeName(die))

	case scopetree.VariantInheritance:
		typ.AccessSpecifier = accessSpecifier(die)
	}
}

func (b *builder) applySymbolAttributes(die *dwarfreader.Die, sym *scopetree.SymbolNode, variant scopetree.Variant) {
	if variant == scopetree.VariantMember {
		sym.AccessSpecifier = accessSpecifier(die)
	}
}

// subrangeName synthesizes a Subrange's name per §4.2.2. The DW_AT_count
// form and DW_AT_upper_bound form are both checked for "reference" shape,
// which signals a runtime-computed bound this tool does not evaluate (§9
// open question): such subranges always render as "[?]".
func subrangeName(die *dwarfreader.Die) string {
	var lower int64
	if v := die.GetAttr(dwarf.AttrLowerBound); v.Kind != dwarfreader.AttrEmpty {
		if n, ok := v.AsSignedInt(); ok {
			lower = n
		}
	}

	if v := die.GetAttr(dwarf.AttrCount); v.Kind != dwarfreader.AttrEmpty {
		if v.Kind == dwarfreader.AttrReference {
			return "[?]"
		}
		if n, ok := v.AsSignedInt(); ok {
			return fmt.Sprintf("[%d]", lower+n)
		}
	}

	if v := die.GetAttr(dwarf.AttrUpperBound); v.Kind != dwarfreader.AttrEmpty {
		if v.Kind == dwarfreader.AttrReference {
			return "[?]"
		}
		if n, ok := v.AsSignedInt(); ok {
			if lower != 0 {
				return fmt.Sprintf("[%d..%d]", lower, n)
			}
			return fmt.Sprintf("[%d]", n+1)
		}
	}

	return "[?]"
}

// DW_ACCESS_* encoding (debug/dwarf does not export these).
const (
	accessPublic    = 1
	accessProtected = 2
	accessPrivate   = 3
)

func accessSpecifier(die *dwarfreader.Die) scopetree.AccessSpecifier {
	v := die.GetAttr(dwarf.AttrAccessibility)
	n, ok := v.AsSignedInt()
	if !ok {
		return scopetree.AccessUnspecified
	}
	switch n {
	case accessPublic:
		return scopetree.AccessPublic
	case accessProtected:
		return scopetree.AccessProtected
	case accessPrivate:
		return scopetree.AccessPrivate
	default:
		return scopetree.AccessUnspecified
	}
}
