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

import (
	"fmt"
	"strings"
)

// Values holds the arguments substituted into a curated error's message
// format string.
type Values []interface{}

// curated is a named error condition: a format string plus the arguments to
// fill it, kept apart rather than pre-rendered so that Head/Is/Has can match
// on the format string itself.
type curated struct {
	message string
	values  Values
}

// Errorf builds a curated error from one of the format strings in Messages
// (or any other "%s"-style format string) and its arguments.
func Errorf(message string, values ...interface{}) error {
	return curated{message: message, values: values}
}

// Error renders the full causal chain and drops any segment that repeats
// the segment before it — which happens whenever a curated error's
// own formatted message is passed back in as one of its values, producing
// "X: X: detail" instead of "X: detail".
//
// Implements the go language error interface.
func (er curated) Error() string {
	rendered := fmt.Sprintf(er.message, er.values...)
	segments := strings.Split(rendered, ": ")

	collapsed := segments[:1]
	for _, s := range segments[1:] {
		if s == collapsed[len(collapsed)-1] {
			continue
		}
		collapsed = append(collapsed, s)
	}

	return strings.Join(collapsed, ": ")
}

// Head returns the error's message format string, or, for a plain error not
// built by Errorf, its rendered text. Useful in a switch over error kinds.
func Head(err error) string {
	er, ok := err.(curated)
	if !ok {
		return err.Error()
	}
	return er.message
}

// IsAny reports whether err was built by Errorf.
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(curated)
	return ok
}

// Is reports whether err was built by Errorf with the given message format
// string.
func Is(err error, head string) bool {
	er, ok := err.(curated)
	return ok && er.message == head
}

// Has reports whether head appears anywhere in err's causal chain: err
// itself, or recursively among its wrapped curated values.
func Has(err error, head string) bool {
	er, ok := err.(curated)
	if !ok {
		return false
	}
	if er.message == head {
		return true
	}
	for _, v := range er.values {
		if wrapped, ok := v.(error); ok && Has(wrapped, head) {
			return true
		}
	}
	return false
}
