/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package collector

import (
	"errors"
	"fmt"
)

// ErrInput indicates malformed preference input.
var ErrInput = errors.New("malformed input")

// InputError reports a malformed row.
type InputError struct {
	// Source names the input, usually a file path.
	Source string
	// Line is the 1-based line number, 0 when the error is not tied to a line.
	Line int
	// Field is the 1-based field number within the row, 0 for the whole row.
	Field int
	// Reason describes the problem.
	Reason string
	// Err is the underlying error, if any.
	Err error
}

func (e *InputError) Error() string {
	var where string
	switch {
	case e.Line > 0 && e.Field > 0:
		where = fmt.Sprintf("%s:%d: field %d", e.Source, e.Line, e.Field)
	case e.Line > 0:
		where = fmt.Sprintf("%s:%d", e.Source, e.Line)
	default:
		where = e.Source
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", where, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", where, e.Reason)
}

// Is reports whether target is ErrInput.
func (e *InputError) Is(target error) bool {
	return target == ErrInput
}

func (e *InputError) Unwrap() error {
	return e.Err
}
