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

package yaml

import "github.com/jetsetilly/scopeview/internal/scopetree"

type inheritance struct {
	Parent          string `yaml:"parent"`
	AccessSpecifier string `yaml:"access_specifier"`
}

type scopeAttrs struct {
	IsGlobal         bool           `yaml:"is_global"`
	IsDeclaration    *bool          `yaml:"is_declaration,omitempty"`
	IsStatic         *bool          `yaml:"is_static,omitempty"`
	IsDeclaredInline *bool          `yaml:"is_declared_inline,omitempty"`
	IsInlined        *bool          `yaml:"is_inlined,omitempty"`
	IsEnumClass      *bool          `yaml:"is_enum_class,omitempty"`
	IsTemplate       *bool          `yaml:"is_template,omitempty"`
	// InheritsFrom is a pointer so that omitempty only drops it for node
	// kinds where it does not apply (a nil pointer); a class/struct/union
	// with no base classes still has a non-nil pointer to a zero-length
	// slice, which omitempty does not treat as empty, so it renders as the
	// literal "inherits_from: []" rather than being dropped or "null".
	InheritsFrom *[]inheritance `yaml:"inherits_from,omitempty"`
}

type typeAttrs struct {
	ByteSize        *int    `yaml:"byte_size,omitempty"`
	Value           *string `yaml:"value,omitempty"`
	AccessSpecifier *string `yaml:"access_specifier,omitempty"`
}

type symbolAttrs struct {
	AccessSpecifier *string `yaml:"access_specifier,omitempty"`
}

type lineAttrs struct {
	Address           uint64 `yaml:"address"`
	Discriminator     uint64 `yaml:"discriminator"`
	IsNewStatement    bool   `yaml:"is_new_statement"`
	IsNewBasicBlock   bool   `yaml:"is_new_basic_block"`
	IsLineEndSequence bool   `yaml:"is_line_end_sequence"`
	IsEpilogueBegin   bool   `yaml:"is_epilogue_begin"`
	IsPrologueEnd     bool   `yaml:"is_prologue_end"`
}

func attributesFor(n scopetree.Node) interface{} {
	if s, ok := scopetree.AsScope(n); ok {
		return scopeAttributes(s)
	}
	if t, ok := scopetree.AsType(n); ok {
		return typeAttributes(t)
	}
	if s, ok := scopetree.AsSymbol(n); ok {
		return symbolAttributes(s)
	}
	if l, ok := scopetree.AsLine(n); ok {
		return lineAttrs{
			Address:           l.Address,
			Discriminator:     l.Discriminator,
			IsNewStatement:    l.IsNewStatement,
			IsNewBasicBlock:   l.IsNewBasicBlock,
			IsLineEndSequence: l.IsLineEndSequence,
			IsEpilogueBegin:   l.IsEpilogueBegin,
			IsPrologueEnd:     l.IsPrologueEnd,
		}
	}
	return nil
}

func scopeAttributes(s *scopetree.ScopeNode) scopeAttrs {
	a := scopeAttrs{IsGlobal: s.IsGlobalReference}

	switch s.Variant {
	case scopetree.VariantFunction:
		decl, static, inlined := s.IsDeclaration, s.IsStatic, s.IsDeclaredInline
		a.IsDeclaration = &decl
		a.IsStatic = &static
		a.IsDeclaredInline = &inlined
		isInlined := s.IsInlined
		a.IsInlined = &isInlined

	case scopetree.VariantEnumeration:
		enumClass := s.IsEnumClass
		a.IsEnumClass = &enumClass

	case scopetree.VariantClass, scopetree.VariantStruct, scopetree.VariantUnion:
		isTemplate := s.IsTemplate
		a.IsTemplate = &isTemplate
		inherits := inheritsFrom(s)
		a.InheritsFrom = &inherits
	}

	return a
}

func inheritsFrom(s *scopetree.ScopeNode) []inheritance {
	out := []inheritance{}
	for _, c := range s.Children {
		t, ok := scopetree.AsType(c)
		if !ok || t.Variant != scopetree.VariantInheritance {
			continue
		}
		out = append(out, inheritance{
			Parent:          nameOf(scopetree.TypeRefOf(t)),
			AccessSpecifier: t.AccessSpecifier.String(),
		})
	}
	return out
}

func typeAttributes(t *scopetree.TypeNode) typeAttrs {
	var a typeAttrs

	if t.HasByteSize() {
		size := t.ByteSize
		a.ByteSize = &size
	}
	if t.HasValue() {
		value := t.Value
		a.Value = &value
	}
	if t.Variant == scopetree.VariantInheritance {
		access := t.AccessSpecifier.String()
		a.AccessSpecifier = &access
	}

	return a
}

func symbolAttributes(s *scopetree.SymbolNode) symbolAttrs {
	var a symbolAttrs
	if s.Variant == scopetree.VariantMember {
		access := s.AccessSpecifier.String()
		a.AccessSpecifier = &access
	}
	return a
}
