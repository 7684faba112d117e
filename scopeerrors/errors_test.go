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

package scopeerrors_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/scopeview/scopeerrors"
	"github.com/jetsetilly/scopeview/test"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"

func TestDuplicateErrors(t *testing.T) {
	e := scopeerrors.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := scopeerrors.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")
}

func TestIs(t *testing.T) {
	e := scopeerrors.Errorf(testError, "foo")
	test.ExpectSuccess(t, scopeerrors.Is(e, testError))

	// Has() should fail because we haven't included testErrorB anywhere in the error
	test.ExpectFailure(t, scopeerrors.Has(e, testErrorB))

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := scopeerrors.Errorf(testErrorB, e)
	test.ExpectFailure(t, scopeerrors.Is(f, testError))
	test.ExpectSuccess(t, scopeerrors.Is(f, testErrorB))
	test.ExpectSuccess(t, scopeerrors.Has(f, testError))
	test.ExpectSuccess(t, scopeerrors.Has(f, testErrorB))

	// IsAny should return true for these errors also
	test.ExpectSuccess(t, scopeerrors.IsAny(e))
	test.ExpectSuccess(t, scopeerrors.IsAny(f))
}

func TestPlainErrors(t *testing.T) {
	// test plain errors that haven't been formatted with our scopeerrors package

	e := fmt.Errorf("plain test error")
	test.ExpectFailure(t, scopeerrors.IsAny(e))

	test.ExpectFailure(t, scopeerrors.Has(e, testError))
}

func TestCategories(t *testing.T) {
	test.ExpectEquality(t, scopeerrors.UnknownArg.Category(), scopeerrors.CategoryArgParsing)
	test.ExpectEquality(t, scopeerrors.InvalidRegex.Category(), scopeerrors.CategoryArgParsing)
	test.ExpectEquality(t, scopeerrors.InvalidFile.Category(), scopeerrors.CategoryFilesystem)
	test.ExpectEquality(t, scopeerrors.AbsPath.Category(), scopeerrors.CategoryFilesystem)
	test.ExpectEquality(t, scopeerrors.UnknownDwarfTag.Category(), scopeerrors.CategoryBuilderWarning)
	test.ExpectEquality(t, scopeerrors.MissingReference.Category(), scopeerrors.CategoryBuilderWarning)
}

func TestMessageCoverage(t *testing.T) {
	for errno := scopeerrors.UnknownArg; errno <= scopeerrors.MissingReference; errno++ {
		if _, ok := scopeerrors.Messages[errno]; !ok {
			t.Errorf("no message registered for errno %d", errno)
		}
	}
}
