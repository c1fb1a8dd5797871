// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// ValueParser parses a raw configuration value or returns an error
// if it can't.
type ValueParser func(string) (interface{}, error)

// DefaultValueParsers are tried in order by ParseValues.
var DefaultValueParsers = []ValueParser{
	func(s string) (interface{}, error) { return strconv.Atoi(s) },
	func(s string) (interface{}, error) { return strconv.ParseFloat(s, 64) },
	func(s string) (interface{}, error) { return time.ParseDuration(s) },
}

// ParseValues sets Config.Value for every configuration key in
// benchmarks. Each key uses the first parser that accepts all of its
// raw values, falling back to the raw string. If parsers is nil, it
// uses DefaultValueParsers.
func ParseValues(benchmarks []*Benchmark, parsers []ValueParser) {
	if parsers == nil {
		parsers = DefaultValueParsers
	}
	for _, key := range configKeys(benchmarks) {
		// Block configuration is shared between benchmarks, so
		// collect distinct Configs.
		var cs []*Config
		seen := make(map[*Config]bool)
		for _, b := range benchmarks {
			if c, ok := b.Config[key]; ok && !seen[c] {
				seen[c] = true
				cs = append(cs, c)
			}
		}
		parseKey(cs, parsers)
	}
}

func parseKey(cs []*Config, parsers []ValueParser) {
	vals := make([]interface{}, len(cs))
tryParsers:
	for _, vp := range parsers {
		for i, c := range cs {
			v, err := vp(c.RawValue)
			if err != nil {
				continue tryParsers
			}
			vals[i] = v
		}
		for i, c := range cs {
			c.Value = vals[i]
		}
		return
	}
	for _, c := range cs {
		c.Value = c.RawValue
	}
}

func configKeys(benchmarks []*Benchmark) []string {
	set := make(map[string]bool)
	for _, b := range benchmarks {
		for k := range b.Config {
			set[k] = true
		}
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BinOrder returns the distinct bin labels of benchmarks for key, as
// resolved by Benchmark.Bin. Labels are ordered by parsed Value if
// ParseValues found a numeric or duration type for key, and by first
// appearance otherwise. Benchmarks without key are skipped.
func BinOrder(benchmarks []*Benchmark, key string) []string {
	type bin struct {
		label string
		value interface{}
	}
	var bins []bin
	seen := make(map[string]bool)
	for _, b := range benchmarks {
		label, ok := b.Bin(key)
		if !ok || seen[label] {
			continue
		}
		seen[label] = true
		var v interface{}
		if c := b.Config[key]; c != nil && key != NameKey {
			v = c.Value
		}
		bins = append(bins, bin{label, v})
	}
	sort.SliceStable(bins, func(i, j int) bool {
		return less(bins[i].value, bins[j].value)
	})
	out := make([]string, len(bins))
	for i, b := range bins {
		out[i] = b.label
	}
	return out
}

// less orders parsed configuration values. Values of different or
// unordered types compare equal.
func less(a, b interface{}) bool {
	switch a := a.(type) {
	case int:
		b, ok := b.(int)
		return ok && a < b
	case float64:
		b, ok := b.(float64)
		return ok && a < b
	case time.Duration:
		b, ok := b.(time.Duration)
		return ok && a < b
	}
	return false
}

// Units returns every result unit reported by benchmarks. "ns/op"
// and "MB/s" come first, followed by the rest in sorted order.
func Units(benchmarks []*Benchmark) []string {
	set := make(map[string]bool)
	for _, b := range benchmarks {
		for u := range b.Result {
			set[u] = true
		}
	}
	units := make([]string, 0, len(set))
	for u := range set {
		units = append(units, u)
	}
	sort.Sort(unitSorter(units))
	return units
}

var fixedUnits = map[string]int{
	"ns/op": -2,
	"MB/s":  -1,
}

type unitSorter []string

func (s unitSorter) Len() int {
	return len(s)
}

func (s unitSorter) Less(i, j int) bool {
	if fixedUnits[s[i]] != fixedUnits[s[j]] {
		return fixedUnits[s[i]] < fixedUnits[s[j]]
	}
	return s[i] < s[j]
}

func (s unitSorter) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

func (c *Config) String() string {
	if c.Value != nil {
		return fmt.Sprint(c.Value)
	}
	return c.RawValue
}
