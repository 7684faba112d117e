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

// Package scopeerrors names every error condition the DWARF reader, tree
// builder, resolvers, and argument parser can raise, and builds them as
// plain Go errors via Errorf.
//
// A curated error wraps a format string and its arguments rather than a
// pre-rendered message, so that Head/Is/Has can match on the format string
// itself instead of re-parsing rendered text. Chains of curated errors
// (one wrapping another, as happens when a lower layer's error is reported
// by the layer that called it) are flattened on Error() so that a segment
// repeated back to back is not printed twice.
//
// Errno groups every condition into one of three categories, matching the
// disposition table in this repository's error-handling design: ArgParsing
// and Filesystem errors are always fatal and are reported by the driver;
// BuilderWarning errors never reach the driver at all — they are recorded
// via the logger package and construction continues.
package scopeerrors
