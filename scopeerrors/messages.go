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

package scopeerrors

// Messages maps each Errno to the format string used to build its curated
// error message. Message arguments are supplied by the caller via
// scopeerrors.Errorf(Messages[errno], values...).
var Messages = map[Errno]string{
	UnknownArg:                "unrecognised argument '%s'",
	MissingValue:              "argument '%s' requires a value",
	UnexpectedValue:           "argument '%s' does not accept a value",
	UnexpectedNegative:        "argument '%s' cannot be negated",
	InvalidChoice:             "'%s' is not a valid value for argument '%s'",
	ShortcutWithArgumentValue: "shortcut '%s' cannot be combined with a value",
	InvalidRegex:              "invalid filter pattern: %s",

	InvalidFile:    "not a valid input file: %s",
	InvalidDwarf:   "could not read DWARF data: %s",
	FileNotFound:   "file not found: %s",
	OpenFailure:    "could not open %s: %s",
	MakeDirFailure: "could not create directory %s: %s",
	GetCwd:         "could not determine the current working directory: %s",
	AbsPath:        "could not resolve absolute path of %s: %s",

	UnknownDwarfTag:  "unrecognised DWARF tag %s",
	UnrecognisedForm: "unrecognised DWARF form for attribute %s",
	AmbiguousName:    "ambiguous name resolution for %s",
	MissingType:      "DWARF offset %s was never emitted as a type",
	MissingReference: "DWARF offset %s was never emitted as a reference target",
}
