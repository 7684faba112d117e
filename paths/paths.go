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

// Package paths collects the filesystem helpers used by the split-output
// renderer: directory creation and the flattening of a compile
// unit's name into a safe file name.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jetsetilly/scopeview/scopeerrors"
)

// EnsureDir creates dir (and any missing parents) if it does not already
// exist.
func EnsureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return scopeerrors.Errorf(scopeerrors.Messages[scopeerrors.MakeDirFailure], dir, "exists and is not a directory")
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return scopeerrors.Errorf(scopeerrors.Messages[scopeerrors.MakeDirFailure], dir, err.Error())
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return scopeerrors.Errorf(scopeerrors.Messages[scopeerrors.MakeDirFailure], dir, err.Error())
	}
	return nil
}

// FlattenCUName turns a compile unit name into a file-system safe base name,
// as required for split output: '.', '/' and (on Windows-like hosts) ':'
// are replaced with '_'.
func FlattenCUName(name string) string {
	r := strings.NewReplacer(".", "_", "/", "_")
	flat := r.Replace(name)
	if runtime.GOOS == "windows" {
		flat = strings.ReplaceAll(flat, ":", "_")
	}
	return flat
}

// SplitOutputPath builds the path for a split-output file: outputDir joined
// with the flattened compile unit name plus ext (ext includes the leading
// dot, e.g. ".txt" or ".yaml").
func SplitOutputPath(outputDir, cuName, ext string) string {
	return filepath.Join(outputDir, FlattenCUName(cuName)+ext)
}
