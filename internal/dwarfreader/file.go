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

package dwarfreader

import "os"

// elfOpenRaw opens path for the magic-number sniff that happens before the
// (heavier) debug/elf.Open parse, so that a non-ELF file is rejected
// cheaply rather than via a debug/elf parse failure.
func elfOpenRaw(path string) (*os.File, error) {
	return os.Open(path)
}
