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

import (
	"os"

	"github.com/jetsetilly/scopeview/paths"
	"github.com/jetsetilly/scopeview/scopeerrors"
)

// SplitWriter opens one output file per compile unit under dir, named by
// paths.SplitOutputPath. The caller closes the returned file when done
// with it.
type SplitWriter struct {
	dir string
}

// NewSplitWriter ensures dir exists and returns a SplitWriter rooted there.
func NewSplitWriter(dir string) (*SplitWriter, error) {
	if err := paths.EnsureDir(dir); err != nil {
		return nil, err
	}
	return &SplitWriter{dir: dir}, nil
}

// Create opens the output file for the named compile unit. extension
// includes the leading dot (".txt", ".yaml").
func (s *SplitWriter) Create(cuName, extension string) (*os.File, error) {
	path := paths.SplitOutputPath(s.dir, cuName, extension)
	f, err := os.Create(path)
	if err != nil {
		return nil, scopeerrors.Errorf(scopeerrors.Messages[scopeerrors.OpenFailure], path, err.Error())
	}
	return f, nil
}
