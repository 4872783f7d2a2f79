package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/relia1/unconfrs/obslog"
	"github.com/relia1/unconfrs/schedconf"
	"github.com/relia1/unconfrs/schedule/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunREPL_RenderAndQuit(t *testing.T) {
	cfg := schedconf.Default()
	cfg.Rooms, cfg.Slots = 2, 2

	in := strings.NewReader("render\nquit\n")
	var out strings.Builder

	err := runREPL(cfg, obslog.Discard{}, in, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Row 1:")
	assert.Contains(t, out.String(), "bye")
}

func TestRunREPL_ImproveThenEvaluate(t *testing.T) {
	cfg := schedconf.Default()
	cfg.Rooms, cfg.Slots, cfg.Restarts, cfg.Workers = 2, 1, 1, 2

	in := strings.NewReader("improve\nevaluate\nexit\n")
	var out strings.Builder

	err := runREPL(cfg, obslog.Discard{}, in, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "optimized score:")
	assert.Contains(t, out.String(), "brute-force optimum:")
}

func TestRunREPL_UnknownCommandThenQuit(t *testing.T) {
	cfg := schedconf.Default()
	cfg.Rooms, cfg.Slots = 1, 1

	in := strings.NewReader("bogus\nquit\n")
	var out strings.Builder

	err := runREPL(cfg, obslog.Discard{}, in, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "unknown command: bogus")
}

func TestRunREPL_ResetChangesDimensions(t *testing.T) {
	cfg := schedconf.Default()
	cfg.Rooms, cfg.Slots = 2, 2

	in := strings.NewReader("reset 3 1\nrender\nquit\n")
	var out strings.Builder

	err := runREPL(cfg, obslog.Discard{}, in, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "reset to 3 rooms x 1 slots")
}

func captureStdout(t *testing.T, fn func(*os.File)) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	fn(w)
	require.NoError(t, w.Close())

	buf := make([]byte, 64*1024)
	n, _ := r.Read(buf)
	require.NoError(t, r.Close())
	return string(buf[:n])
}

func TestBenchmark_PrintsScoresAndGrid(t *testing.T) {
	cfg := schedconf.Default()
	cfg.Rooms, cfg.Slots, cfg.Restarts = 2, 2, 1
	params := testdata.Uniform(cfg.Rooms, cfg.Slots)

	out := captureStdout(t, func(w *os.File) {
		err := benchmark(context.Background(), cfg, params, obslog.Discard{}, false, w)
		require.NoError(t, err)
	})

	assert.Contains(t, out, "initial score:")
	assert.Contains(t, out, "optimized score")
	assert.Contains(t, out, "Row 1:")
}

func TestBenchmark_WithEvaluateAddsOptimumLine(t *testing.T) {
	cfg := schedconf.Default()
	cfg.Rooms, cfg.Slots, cfg.Restarts, cfg.Workers = 2, 1, 1, 2
	params := testdata.Uniform(cfg.Rooms, cfg.Slots)

	out := captureStdout(t, func(w *os.File) {
		err := benchmark(context.Background(), cfg, params, obslog.Discard{}, true, w)
		require.NoError(t, err)
	})

	assert.True(t, strings.Contains(out, "brute-force optimum:"))
}

func TestRun_RejectsUnknownFlag(t *testing.T) {
	err := run([]string{"-does-not-exist"}, os.Stdout)
	assert.Error(t, err)
}

func TestRun_LoadsTomlConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schedbench.toml")
	require.NoError(t, os.WriteFile(path, []byte("rooms = 2\nslots = 2\nrestarts = 1\n"), 0o644))

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	runErr := run([]string{"-config", path}, w)
	require.NoError(t, w.Close())

	require.NoError(t, runErr)
}
