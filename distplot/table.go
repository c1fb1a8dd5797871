// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package distplot

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

var (
	errNoColumn   = errors.New("no such column")
	errNotNumeric = errors.New("not a numeric column")
)

// An Observation is one row of a distribution table. A NaN Value is
// a missing value.
type Observation struct {
	Bin   string
	Value float64
}

// NewTable returns a table with a string column binCol and a float64
// column valueCol holding obs in order.
func NewTable(binCol, valueCol string, obs []Observation) *table.Table {
	bins := make([]string, len(obs))
	vals := make([]float64, len(obs))
	for i, o := range obs {
		bins[i], vals[i] = o.Bin, o.Value
	}
	return new(table.Builder).Add(binCol, bins).Add(valueCol, vals).Done()
}

// binColumn returns column col of t as bin labels. Non-string columns
// are formatted with fmt.Sprint.
func binColumn(t *table.Table, col string) ([]string, error) {
	seq := t.Column(col)
	if seq == nil {
		return nil, &ColumnError{col, errNoColumn}
	}
	if labels, ok := seq.([]string); ok {
		return labels, nil
	}
	v := reflect.ValueOf(seq)
	labels := make([]string, v.Len())
	for i := range labels {
		labels[i] = fmt.Sprint(v.Index(i).Interface())
	}
	return labels, nil
}

// valueColumn returns a copy of column col of t as float64s, with
// missing values as NaN. Columns of *float64 use nil for missing
// values; other numeric columns are converted as is.
func valueColumn(t *table.Table, col string) ([]float64, error) {
	seq := t.Column(col)
	if seq == nil {
		return nil, &ColumnError{col, errNoColumn}
	}
	switch seq := seq.(type) {
	case []float64:
		return append([]float64(nil), seq...), nil
	case []*float64:
		xs := make([]float64, len(seq))
		for i, p := range seq {
			if p == nil {
				xs[i] = math.NaN()
			} else {
				xs[i] = *p
			}
		}
		return xs, nil
	}

	switch reflect.TypeOf(seq).Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		var xs []float64
		slice.Convert(&xs, seq)
		return xs, nil
	}
	return nil, &ColumnError{col, fmt.Errorf("%w: %T", errNotNumeric, seq)}
}
