// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aclements/go-distplot/bench"
	"github.com/aclements/go-distplot/distplot"
)

const input = `
goos: linux
BenchmarkSort/size:10	100	120 ns/op	16 B/op
BenchmarkSort/size:1000	10	9100 ns/op
BenchmarkSort/size:100	50	1500 ns/op	32 B/op
BenchmarkSort/size:10	100	130 ns/op
BenchmarkFind-8	1000	12 ns/op
`

func parse(t *testing.T) []*bench.Benchmark {
	bs, err := bench.Parse(strings.NewReader(input))
	require.NoError(t, err)
	bench.ParseValues(bs, nil)
	return bs
}

func TestBenchmarksToTable(t *testing.T) {
	log, hook := logtest.NewNullLogger()

	tab, err := benchmarksToTable(log, parse(t), bench.NameKey, "ns/op")
	require.NoError(t, err)
	assert.Equal(t, []string{binCol, "iterations", "ns/op"}, tab.Columns())
	assert.Equal(t, []string{"Sort", "Sort", "Sort", "Sort", "Find"}, tab.MustColumn(binCol))
	assert.Equal(t, []float64{120, 9100, 1500, 130, 12}, tab.MustColumn("ns/op"))
	assert.Empty(t, hook.AllEntries())

	tab, err = benchmarksToTable(log, parse(t), "size", "B/op")
	require.NoError(t, err)
	assert.Equal(t, []string{binCol, "name", "iterations", "B/op"}, tab.Columns())
	assert.Equal(t, []string{"10", "1000", "100", "10"}, tab.MustColumn(binCol))
	vals := tab.MustColumn("B/op").([]float64)
	assert.Equal(t, 16.0, vals[0])
	assert.True(t, math.IsNaN(vals[1]))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, 1, hook.LastEntry().Data["skipped"])
}

func TestBenchmarksToTableErrors(t *testing.T) {
	log, _ := logtest.NewNullLogger()

	_, err := benchmarksToTable(log, parse(t), "commit", "ns/op")
	assert.ErrorIs(t, err, errNoResults)

	_, err = benchmarksToTable(log, parse(t), bench.NameKey, "allocs/op")
	assert.ErrorIs(t, err, errNoResults)
	assert.Contains(t, err.Error(), "ns/op, B/op")
}

func TestSummarize(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	tab, err := benchmarksToTable(log, parse(t), "size", "ns/op")
	require.NoError(t, err)

	out, err := summarize(tab, "ns/op", []string{"10", "100", "1000", "99"})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"bin", "n", "mean", "median", "stddev", "min", "max"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"10", "2", "125", "125", "7", "120", "130"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"1000", "1", "9,100", "9,100", "NaN", "9,100", "9,100"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"99", "0"}, strings.Fields(lines[4]))
}

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	log, _ := logtest.NewNullLogger()
	cmd := newCommand(log)
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandTable(t *testing.T) {
	out, err := runCommand(t, input, "--table", "--bin", "size")
	require.NoError(t, err)
	assert.Contains(t, out, "iterations")
	assert.Contains(t, out, "stddev")
}

func TestCommandPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	_, err := runCommand(t, input, "-o", path, "--median", "--grid", "--title", "Sort")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestCommandFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(in, []byte(input), 0644))
	conf := filepath.Join(dir, "opts.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("title: From config\nmedian_line: true\n"), 0644))

	for _, engine := range []string{"gonum", "gg"} {
		out, err := runCommand(t, "", "--engine", engine, "--format", "svg", "--config", conf, in)
		require.NoError(t, err, "engine %s", engine)
		assert.Contains(t, out, "<svg", "engine %s", engine)
	}
}

func TestCommandLargeValues(t *testing.T) {
	slow := `
BenchmarkSlow	1	2500000000 ns/op
BenchmarkSlow	1	2600000000 ns/op
`
	_, err := runCommand(t, slow, "--format", "svg")
	require.Error(t, err)
	assert.ErrorIs(t, err, distplot.ErrBoundOutOfRange)
	assert.Contains(t, err.Error(), "--max")

	out, err := runCommand(t, slow, "--format", "svg", "--max", "3e9")
	require.NoError(t, err)
	assert.Contains(t, out, "<svg")
}

func TestCommandErrors(t *testing.T) {
	for _, args := range [][]string{
		{"--engine", "cairo"},
		{"--format", "gif"},
		{"--engine", "gg", "--format", "png"},
		{"--bin-order", "Sort"},
		{"--config", filepath.Join(t.TempDir(), "missing.yaml")},
	} {
		_, err := runCommand(t, input, args...)
		assert.Error(t, err, "args %v", args)
	}
}
