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

package render

import "github.com/jetsetilly/scopeview/internal/scopetree"

// VariantLabel names n's family/variant the way DIVA's "object" column
// does, used by both renderers (the text prefix and the YAML "object"
// field).
func VariantLabel(n scopetree.Node) string {
	if _, ok := scopetree.AsLine(n); ok {
		return "Line"
	}

	switch scopetree.VariantOf(n) {
	case scopetree.VariantRoot:
		return "Root"
	case scopetree.VariantCompileUnit:
		return "CompileUnit"
	case scopetree.VariantNamespace:
		return "Namespace"
	case scopetree.VariantClass:
		return "Class"
	case scopetree.VariantStruct:
		return "Struct"
	case scopetree.VariantUnion:
		return "Union"
	case scopetree.VariantEnumeration:
		return "Enumeration"
	case scopetree.VariantArray:
		return "Array"
	case scopetree.VariantFunction:
		return "Function"
	case scopetree.VariantAlias:
		return "Alias"
	case scopetree.VariantBlock:
		return "Block"
	case scopetree.VariantTemplatePack:
		return "TemplatePack"
	case scopetree.VariantBase:
		return "BaseType"
	case scopetree.VariantConst:
		return "Const"
	case scopetree.VariantVolatile:
		return "Volatile"
	case scopetree.VariantPointer:
		return "Pointer"
	case scopetree.VariantPointerMember:
		return "PointerToMember"
	case scopetree.VariantReference:
		return "Reference"
	case scopetree.VariantRestrict:
		return "Restrict"
	case scopetree.VariantRvalueReference:
		return "RvalueReference"
	case scopetree.VariantUnspecified:
		return "UnspecifiedType"
	case scopetree.VariantTypeDef:
		return "TypeDef"
	case scopetree.VariantEnumerator:
		return "Enumerator"
	case scopetree.VariantSubrange:
		return "Subrange"
	case scopetree.VariantTemplateValue:
		return "TemplateValue"
	case scopetree.VariantTemplateType:
		return "TemplateType"
	case scopetree.VariantTemplateTemplate:
		return "TemplateTemplate"
	case scopetree.VariantImportedDeclaration:
		return "ImportedDeclaration"
	case scopetree.VariantImportedModule:
		return "ImportedModule"
	case scopetree.VariantInheritance:
		return "Inheritance"
	case scopetree.VariantParameter:
		return "Parameter"
	case scopetree.VariantUnspecifiedParameter:
		return "UnspecifiedParameter"
	case scopetree.VariantMember:
		return "Member"
	case scopetree.VariantVariable:
		return "Variable"
	default:
		return "?"
	}
}
