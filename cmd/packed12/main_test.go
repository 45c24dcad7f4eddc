package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stdinFromString(t *testing.T, s string) *os.File {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	go func() {
		_, _ = w.WriteString(s)
		w.Close()
	}()
	return r
}

func TestReadStdinPathsSplitsLines(t *testing.T) {
	r := stdinFromString(t, "a.p12\nb.p12\nc.p12\n")
	paths, err := readStdinPaths(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.p12", "b.p12", "c.p12"}, paths)
}

func TestReadStdinPathsSkipsBlankLines(t *testing.T) {
	r := stdinFromString(t, "a.p12\n\nb.p12\n")
	paths, err := readStdinPaths(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.p12", "b.p12"}, paths)
}

func TestReadStdinPathsRejectsOverlongLine(t *testing.T) {
	longPath := strings.Repeat("x", maxStdinPathLen+1)
	r := stdinFromString(t, longPath+"\n")
	_, err := readStdinPaths(r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestReadStdinPathsAcceptsExactLimit(t *testing.T) {
	path := strings.Repeat("x", maxStdinPathLen)
	r := stdinFromString(t, path+"\n")
	paths, err := readStdinPaths(r)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, paths)
}

func TestReadStdinPathsEmpty(t *testing.T) {
	r := stdinFromString(t, "")
	paths, err := readStdinPaths(r)
	require.NoError(t, err)
	assert.Nil(t, paths)
}
