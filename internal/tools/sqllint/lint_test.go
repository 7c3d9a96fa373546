package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGo(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLintAcceptsMarkedQueries(t *testing.T) {
	dir := t.TempDir()
	writeGo(t, dir, "q.go", "package q\n\nconst QOne = `--sql 11111111-2222-3333-4444-555555555555\nselect 1;\n`\n\nconst Label = \"not sql at all\"\n")

	vs, err := lintTarget(dir, map[string]markerSite{})
	require.NoError(t, err)
	assert.Empty(t, vs)
}

func TestLintReportsMissingMarker(t *testing.T) {
	dir := t.TempDir()
	writeGo(t, dir, "q.go", "package q\n\nconst QBad = `select * from generated_names;`\n")

	vs, err := lintTarget(dir, map[string]markerSite{})
	require.NoError(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, "QBad", vs[0].name)
	assert.Equal(t, 3, vs[0].line)
	assert.Contains(t, vs[0].String(), "missing or invalid --sql <uuid> marker")
}

func TestLintReportsDuplicateMarkersAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	marker := "--sql aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee\n"
	writeGo(t, dir, "a.go", "package q\n\nconst QA = `"+marker+"select 1;`\n")
	writeGo(t, dir, "b.go", "package q\n\nconst QB = `"+marker+"select 2;`\n")

	vs, err := lintTarget(dir, map[string]markerSite{})
	require.NoError(t, err)
	require.Len(t, vs, 1)
	assert.Equal(t, "QB", vs[0].name)
	assert.Contains(t, vs[0].message, "already used by QA")
}

func TestLintRepositoryQueries(t *testing.T) {
	vs, err := lintTarget(filepath.Join("..", "..", "sqlinline"), map[string]markerSite{})
	require.NoError(t, err)
	assert.Empty(t, vs)
}
