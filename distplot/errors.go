// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distplot

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration indicates a bad column name or option.
	ErrConfiguration = errors.New("invalid chart configuration")

	// ErrDegenerateAxis indicates that there is no data to size
	// an axis from.
	ErrDegenerateAxis = errors.New("degenerate axis")

	// ErrNoData indicates that a computation needs at least one
	// bin or point.
	ErrNoData = errors.New("no data")

	// ErrBoundOutOfRange indicates a value UpperBound cannot
	// round.
	ErrBoundOutOfRange = errors.New("value out of axis bound range")

	// ErrEmptyBin indicates a bin with no non-missing values.
	ErrEmptyBin = errors.New("empty bin")
)

// ColumnError reports a problem with a designated table column.
type ColumnError struct {
	Column string
	Err    error
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("column %q: %v", e.Column, e.Err)
}

func (e *ColumnError) Unwrap() error {
	return e.Err
}

// Is makes every ColumnError match ErrConfiguration.
func (e *ColumnError) Is(target error) bool {
	return target == ErrConfiguration
}
