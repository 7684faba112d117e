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

	"github.com/jetsetilly/scopeview/internal/scopetree"
)

// a handful of vendor attributes debug/dwarf does not name.
const (
	attrGNUTemplateName dwarf.Attr = 0x2134
)

// DW_AT_inline encoding (debug/dwarf does not export these).
const (
	inlNotInlined        = 0
	inlInlined           = 1
	inlDeclaredNotInlined = 2
	inlDeclaredInlined    = 3
)

// family identifies which scopetree constructor a tag dispatches to.
type family int

const (
	familyScope family = iota
	familyType
	familySymbol
)

type dispatchEntry struct {
	family       family
	variant      scopetree.Variant
	functionKind scopetree.FunctionKind
	blockKind    scopetree.BlockKind
}

// dispatch is the fixed tag→variant table of §4.2.1. A tag absent from this
// map is unknown and is warned about once, then skipped along with its
// subtree.
var dispatch = map[dwarf.Tag]dispatchEntry{
	// Types
	dwarf.TagBaseType:              {family: familyType, variant: scopetree.VariantBase},
	dwarf.TagConstType:             {family: familyType, variant: scopetree.VariantConst},
	dwarf.TagVolatileType:          {family: familyType, variant: scopetree.VariantVolatile},
	dwarf.TagPointerType:           {family: familyType, variant: scopetree.VariantPointer},
	dwarf.TagPtrToMemberType:       {family: familyType, variant: scopetree.VariantPointerMember},
	dwarf.TagReferenceType:         {family: familyType, variant: scopetree.VariantReference},
	dwarf.TagRestrictType:          {family: familyType, variant: scopetree.VariantRestrict},
	dwarf.TagRvalueReferenceType:   {family: familyType, variant: scopetree.VariantRvalueReference},
	dwarf.TagUnspecifiedType:       {family: familyType, variant: scopetree.VariantUnspecified},
	dwarf.TagTypedef:               {family: familyType, variant: scopetree.VariantTypeDef},
	dwarf.TagEnumerator:            {family: familyType, variant: scopetree.VariantEnumerator},
	dwarf.TagSubrangeType:          {family: familyType, variant: scopetree.VariantSubrange},
	dwarf.TagTemplateValueParameter: {family: familyType, variant: scopetree.VariantTemplateValue},
	dwarf.TagTemplateTypeParameter:  {family: familyType, variant: scopetree.VariantTemplateType},
	dwarf.Tag(0x4106) /* DW_TAG_GNU_template_template_param */ : {family: familyType, variant: scopetree.VariantTemplateTemplate},
	dwarf.TagImportedDeclaration: {family: familyType, variant: scopetree.VariantImportedDeclaration},
	dwarf.TagImportedModule:      {family: familyType, variant: scopetree.VariantImportedModule},
	dwarf.TagInheritance:         {family: familyType, variant: scopetree.VariantInheritance},

	// Symbols
	dwarf.TagFormalParameter:         {family: familySymbol, variant: scopetree.VariantParameter},
	dwarf.TagUnspecifiedParameters:   {family: familySymbol, variant: scopetree.VariantUnspecifiedParameter},
	dwarf.TagMember:                  {family: familySymbol, variant: scopetree.VariantMember},
	dwarf.TagVariable:                {family: familySymbol, variant: scopetree.VariantVariable},

	// Scopes
	dwarf.TagCompileUnit:     {family: familyScope, variant: scopetree.VariantCompileUnit},
	dwarf.TagNamespace:       {family: familyScope, variant: scopetree.VariantNamespace},
	dwarf.TagClassType:       {family: familyScope, variant: scopetree.VariantClass},
	dwarf.TagStructType:      {family: familyScope, variant: scopetree.VariantStruct},
	dwarf.TagUnionType:       {family: familyScope, variant: scopetree.VariantUnion},
	dwarf.TagEnumerationType: {family: familyScope, variant: scopetree.VariantEnumeration},
	dwarf.TagArrayType:       {family: familyScope, variant: scopetree.VariantArray},
	dwarf.TagSubprogram:      {family: familyScope, variant: scopetree.VariantFunction, functionKind: scopetree.FunctionSubprogram},
	dwarf.TagSubroutineType:  {family: familyScope, variant: scopetree.VariantFunction, functionKind: scopetree.FunctionSubroutineType},
	dwarf.TagInlinedSubroutine: {family: familyScope, variant: scopetree.VariantFunction, functionKind: scopetree.FunctionInlined},
	dwarf.TagEntryPoint:      {family: familyScope, variant: scopetree.VariantFunction, functionKind: scopetree.FunctionEntryPoint},
	dwarf.TagLabel:           {family: familyScope, variant: scopetree.VariantFunction, functionKind: scopetree.FunctionLabel},
	dwarf.TagTemplateAlias:   {family: familyScope, variant: scopetree.VariantAlias},
	dwarf.TagLexDwarfBlock:   {family: familyScope, variant: scopetree.VariantBlock, blockKind: scopetree.BlockLexical},
	dwarf.TagTryDwarfBlock:   {family: familyScope, variant: scopetree.VariantBlock, blockKind: scopetree.BlockTry},
	dwarf.TagCatchDwarfBlock: {family: familyScope, variant: scopetree.VariantBlock, blockKind: scopetree.BlockCatch},
	dwarf.Tag(0x4107) /* DW_TAG_GNU_template_parameter_pack */ : {family: familyScope, variant: scopetree.VariantTemplatePack},
}
