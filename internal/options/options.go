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

// Package options holds the flat view-configuration consumed by the sorter
// and renderer, grounded on DIVA's CmdOptions.h / DivaOptions.cpp. Where
// CmdOptions.h tracks a "seen" bit per group for command-line merge
// purposes, that concern belongs to internal/args during parsing; by the
// time a ViewOptions reaches the renderer every field already holds its
// final value.
package options

import (
	"regexp"

	"github.com/jetsetilly/scopeview/internal/scopetree"
	"github.com/jetsetilly/scopeview/internal/sorttree"
)

// Format selects the renderer.
type Format int

const (
	FormatText Format = iota
	FormatYAML
)

// ShowFlags mirrors CmdOptions.h's object_options: one switch per node
// category, consulted by the renderer rather than the tree builder (a
// node excluded from output is still built and resolved normally).
type ShowFlags struct {
	Alias         bool
	Array         bool
	Block         bool
	Class         bool
	Codeline      bool
	Enum          bool
	Function      bool
	Member        bool
	Namespace     bool
	Parameter     bool
	PrimitiveType bool
	Struct        bool
	Template      bool
	Typedef       bool
	Union         bool
	Using         bool
	Variable      bool
}

// Brief returns the "print brief" default set described by CmdOptions.h's
// setPrintBrief: everything except array types, standalone code lines, and
// primitive (base) types.
func Brief() ShowFlags {
	return ShowFlags{
		Alias:     true,
		Block:     true,
		Class:     true,
		Enum:      true,
		Function:  true,
		Member:    true,
		Namespace: true,
		Parameter: true,
		Struct:    true,
		Template:  true,
		Typedef:   true,
		Union:     true,
		Using:     true,
		Variable:  true,
	}
}

// All returns setPrintAll: Brief plus the three categories brief omits.
func All() ShowFlags {
	f := Brief()
	f.Array = true
	f.Codeline = true
	f.PrimitiveType = true
	return f
}

// ViewOptions is the configuration consumed by internal/sorttree and
// internal/render.
type ViewOptions struct {
	Format Format
	Sort   sorttree.Key

	Show ShowFlags

	// ShowBlockAttributes and ShowCodelineAttributes correspond to
	// CmdOptions.h's print_block_attributes / print_codeline_attributes.
	// Neither renderer reads them; a shown block or codeline is printed the
	// same way whatever their value.
	ShowBlockAttributes    bool
	ShowCodelineAttributes bool

	// Object attribute columns (CmdOptions.h's ObjectAttributeFlags).
	ShowFileName bool
	ShowIsGlobal bool
	ShowLevel    bool
	ShowOffset   bool
	ShowParent   bool
	ShowTag      bool
	ShowType     bool

	QualifiedName bool
	OnlyGlobals   bool
	OnlyLocals    bool
	ShowSummary   bool

	// Filter restricts output to nodes whose qualified name matches, or
	// nil for no filtering (ViewSpecification.cpp's --filter).
	Filter *regexp.Regexp

	Split    bool
	SplitDir string
}

// Default returns the options scopeview uses when no command-line flags
// override them: text output, sort by source line, and the brief object
// set, matching DIVA's own defaults.
func Default() ViewOptions {
	return ViewOptions{
		Format: FormatText,
		Sort:   sorttree.ByLine,
		Show:   Brief(),
	}
}

// Shows reports whether n's variant passes the configured Show filter. A
// Line node is gated by Show.Codeline rather than any Variant, since
// VariantLine carries no further distinction.
func (o ViewOptions) Shows(n scopetree.Node) bool {
	if _, ok := scopetree.AsLine(n); ok {
		return o.Show.Codeline
	}

	switch scopetree.VariantOf(n) {
	case scopetree.VariantAlias:
		return o.Show.Alias
	case scopetree.VariantArray:
		return o.Show.Array
	case scopetree.VariantBlock:
		return o.Show.Block
	case scopetree.VariantClass:
		return o.Show.Class
	case scopetree.VariantStruct:
		return o.Show.Struct
	case scopetree.VariantUnion:
		return o.Show.Union
	case scopetree.VariantEnumeration, scopetree.VariantEnumerator:
		return o.Show.Enum
	case scopetree.VariantFunction:
		return o.Show.Function
	case scopetree.VariantNamespace:
		return o.Show.Namespace
	case scopetree.VariantParameter, scopetree.VariantUnspecifiedParameter:
		return o.Show.Parameter
	case scopetree.VariantMember:
		return o.Show.Member
	case scopetree.VariantBase:
		return o.Show.PrimitiveType
	case scopetree.VariantTemplateValue, scopetree.VariantTemplateType, scopetree.VariantTemplateTemplate, scopetree.VariantTemplatePack:
		return o.Show.Template
	case scopetree.VariantTypeDef:
		return o.Show.Typedef
	case scopetree.VariantImportedDeclaration, scopetree.VariantImportedModule:
		return o.Show.Using
	case scopetree.VariantVariable:
		return o.Show.Variable
	default:
		return true
	}
}

// Globality reports whether n passes the OnlyGlobals/OnlyLocals filter.
func (o ViewOptions) Globality(n scopetree.Node) bool {
	global := scopetree.IsGlobalReferenceOf(n)
	if o.OnlyGlobals && !global {
		return false
	}
	if o.OnlyLocals && global {
		return false
	}
	return true
}

// Matches reports whether n's qualified name passes the configured Filter.
// A nil Filter matches everything.
func (o ViewOptions) Matches(n scopetree.Node) bool {
	if o.Filter == nil {
		return true
	}
	return o.Filter.MatchString(scopetree.QualifiedNamePrefixOf(n) + scopetree.NameOf(n))
}
