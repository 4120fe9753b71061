package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overlapScene = `
scene:
  kind: children
  children:
    - kind: id
      id: 00000000-0000-4000-8000-000000000001
      child: {kind: path, rect: [0, 0, 100, 100]}
    - kind: cursor
      cursor: pointer
      child:
        kind: id
        id: 00000000-0000-4000-8000-000000000002
        child: {kind: path, rect: [50, 50, 100, 100]}
points:
  - [75, 75]
  - [25, 25]
  - [500, 500]
`

func writeFixture(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestBounds(t *testing.T) {
	out, _, err := run(t, "bounds", writeFixture(t, overlapScene))
	require.NoError(t, err)
	assert.Equal(t, "[0 0 150 150]\n", out)
}

func TestBounds_None(t *testing.T) {
	scene := `
scene:
  kind: clip
  rect: [0, 0, 10, 10]
  child: {kind: path, rect: [20, 20, 5, 5]}
`
	out, _, err := run(t, "bounds", writeFixture(t, scene))
	require.NoError(t, err)
	assert.Equal(t, "none\n", out)
}

func TestHit_FixturePoints(t *testing.T) {
	out, _, err := run(t, "hit", writeFixture(t, overlapScene))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "75,75 hit local=75,75 ids=00000000-0000-4000-8000-000000000002 cursor=pointer", lines[0])
	assert.Equal(t, "25,25 hit local=25,25 ids=00000000-0000-4000-8000-000000000001", lines[1])
	assert.Equal(t, "500,500 miss", lines[2])
}

func TestHit_PointFlag(t *testing.T) {
	out, _, err := run(t, "hit", writeFixture(t, overlapScene), "--point", "125,125", "--point", "-1,-1")
	require.NoError(t, err)
	assert.Equal(t,
		"125,125 hit local=125,125 ids=00000000-0000-4000-8000-000000000002 cursor=pointer\n-1,-1 miss\n",
		out)
}

func TestHit_Workers(t *testing.T) {
	args := []string{"hit", writeFixture(t, overlapScene), "--workers", "2"}
	for range 10 {
		args = append(args, "--point", "125,125", "--point", "-1,-1")
	}
	out, _, err := run(t, args...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 20)
	for i, line := range lines {
		if i%2 == 0 {
			assert.True(t, strings.HasPrefix(line, "125,125 hit "), line)
		} else {
			assert.Equal(t, "-1,-1 miss", line)
		}
	}
}

func TestHit_BadPoint(t *testing.T) {
	_, _, err := run(t, "hit", writeFixture(t, overlapScene), "--point", "seven")
	assert.ErrorContains(t, err, "seven")
}

func TestHit_NoPoints(t *testing.T) {
	scene := "scene: {kind: path, rect: [0, 0, 1, 1]}\n"
	_, _, err := run(t, "hit", writeFixture(t, scene))
	assert.ErrorContains(t, err, "no points")
}

func TestLocals(t *testing.T) {
	scene := `
scene:
  kind: children
  children:
    - {kind: translate, x: 100, y: 200, child: {kind: path, rect: [0, 0, 1, 1]}}
    - kind: absolute
      x: 100
      y: 100
      child:
        kind: scale
        x: 2
        y: 2
        child: {kind: image, rect: [0, 0, 4, 4]}
`
	out, _, err := run(t, "locals", writeFixture(t, scene), "--point", "10,10")
	require.NoError(t, err)
	assert.Equal(t, "0 image -45,-45\n1 path -90,-190\n", out)
}

func TestLocals_RequiresPoint(t *testing.T) {
	_, _, err := run(t, "locals", writeFixture(t, overlapScene))
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	out, _, err := run(t, "stats", writeFixture(t, overlapScene), "--repeat", "5", "--cache-capacity", "16")
	require.NoError(t, err)

	assert.Contains(t, out, "rtree_bounds_cache_hits_total 4")
	assert.Contains(t, out, "rtree_bounds_cache_misses_total 1")
	assert.Contains(t, out, "rtree_bounds_cache_entries 1")
	assert.Contains(t, out, "rtree_bounds_cache_capacity 16")
	assert.Contains(t, out, `rtree_query_duration_seconds_count{query="bounds"} 5`)
	assert.Contains(t, out, `rtree_query_duration_seconds_count{query="hit"} 15`)
	assert.Contains(t, out, "rtree_shape_cache_entries")
}

func TestStats_BadRepeat(t *testing.T) {
	_, _, err := run(t, "stats", writeFixture(t, overlapScene), "--repeat", "0")
	assert.ErrorContains(t, err, "--repeat")
}

func TestLogLevelFlag(t *testing.T) {
	_, stderr, err := run(t, "bounds", writeFixture(t, overlapScene), "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "fixture loaded")
}

func TestLogLevelFlag_Invalid(t *testing.T) {
	_, _, err := run(t, "bounds", writeFixture(t, overlapScene), "--log-level", "chatty")
	assert.ErrorContains(t, err, "chatty")
}

func TestMissingFixture(t *testing.T) {
	_, _, err := run(t, "bounds", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewLogger_RenamesError(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, 0).Info("failed", "error", "boom")
	assert.Contains(t, buf.String(), "err=boom")
	assert.NotContains(t, buf.String(), "error=boom")
}
