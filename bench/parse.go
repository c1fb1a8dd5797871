// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench reads Go benchmark result files as samples for a
// distribution plot.
//
// The file format is specified at:
// https://github.com/golang/proposal/blob/master/design/14313-benchmark-format.md
package bench

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Benchmark is one benchmark result line.
type Benchmark struct {
	// Name is the name of the benchmark, without the "Benchmark"
	// prefix, any "/key:value" configuration, and the trailing
	// GOMAXPROCS number.
	Name string

	Iterations int

	// Config holds both block configuration in effect at this
	// line and configuration from the benchmark name. A trailing
	// "-N" on the name is stored as "gomaxprocs".
	Config map[string]*Config

	// Result maps units to values, e.g. "ns/op" to 1234.
	Result map[string]float64
}

// Config is a single configuration value.
type Config struct {
	// Value is set by ParseValues.
	Value interface{}

	// RawValue is the value exactly as written in the file.
	RawValue string

	// InBlock is set if the value came from a configuration line
	// rather than the benchmark name.
	InBlock bool
}

// NameKey is the pseudo-configuration key that Bin resolves to the
// benchmark name.
const NameKey = "name"

// Bin returns the value of configuration key, or the benchmark name
// if key is "" or NameKey. ok is false if b has no such
// configuration.
func (b *Benchmark) Bin(key string) (label string, ok bool) {
	if key == "" || key == NameKey {
		return b.Name, true
	}
	c, ok := b.Config[key]
	if !ok {
		return "", false
	}
	return c.RawValue, true
}

// Metric returns b's result in unit, or NaN if b did not report it.
func (b *Benchmark) Metric(unit string) float64 {
	v, ok := b.Result[unit]
	if !ok {
		return math.NaN()
	}
	return v
}

var configRe = regexp.MustCompile(`^(\p{Ll}[^\p{Lu}\s\x85\xa0\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}]*):(?:[ \t]+(.*))?$`)

// Parse reads a benchmark results file. There is one Benchmark per
// well-formed result line, in file order. Lines that are neither
// configuration nor results are ignored.
//
// Config values have RawValue set and a nil Value. Use ParseValues
// to fill in Value.
func Parse(r io.Reader) ([]*Benchmark, error) {
	p := parser{config: make(map[string]*Config)}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		p.line(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading benchmarks: %w", err)
	}
	return p.out, nil
}

type parser struct {
	config map[string]*Config
	out    []*Benchmark
}

func (p *parser) line(line string) {
	if m := configRe.FindStringSubmatch(line); m != nil {
		p.config[m[1]] = &Config{RawValue: m[2], InBlock: true}
		return
	}
	if !strings.HasPrefix(line, "Benchmark") {
		return
	}
	if b := p.benchmark(strings.Fields(line)); b != nil {
		p.out = append(p.out, b)
	}
}

func (p *parser) benchmark(f []string) *Benchmark {
	if len(f) < 4 {
		return nil
	}
	name := strings.TrimPrefix(f[0], "Benchmark")
	if next, _ := utf8.DecodeRuneInString(name); name != "" && !unicode.IsUpper(next) {
		return nil
	}
	n, err := strconv.Atoi(f[1])
	if err != nil || n <= 0 {
		return nil
	}

	b := &Benchmark{
		Iterations: n,
		Config:     make(map[string]*Config, len(p.config)+1),
		Result:     make(map[string]float64),
	}
	for k, v := range p.config {
		b.Config[k] = v
	}
	b.Name = splitName(name, b.Config)

	for i := 2; i+2 <= len(f); i += 2 {
		val, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			continue
		}
		b.Result[f[i+1]] = val
	}
	return b
}

// splitName strips name configuration from name into config and
// returns the bare benchmark name.
func splitName(name string, config map[string]*Config) string {
	parts := strings.Split(name, "/")
	name = parts[0]
	for _, part := range parts[1:] {
		if i := strings.Index(part, ":"); i >= 0 {
			config[part[:i]] = &Config{RawValue: part[i+1:]}
		}
	}
	if len(parts) == 1 {
		if i := strings.LastIndex(name, "-"); i >= 0 {
			if _, err := strconv.Atoi(name[i+1:]); err == nil {
				config["gomaxprocs"] = &Config{RawValue: name[i+1:]}
				name = name[:i]
			}
		}
	}
	if config["gomaxprocs"] == nil {
		config["gomaxprocs"] = &Config{RawValue: "1"}
	}
	return name
}
