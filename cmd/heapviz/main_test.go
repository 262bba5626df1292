package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvheap/core"
	"github.com/katalvlaran/lvheap/session"
	"github.com/katalvlaran/lvheap/workload"
)

func TestParseScript(t *testing.T) {
	cmds, err := parseScript("insert 5; INSERT -3\nextract ;; peek # look\n# only a comment\npop")
	require.NoError(t, err)
	assert.Equal(t, []command{
		{op: session.OpInsert, raw: "5"},
		{op: session.OpInsert, raw: "-3"},
		{op: session.OpExtractMin},
		{op: session.OpPeekMin},
		{op: session.OpExtractMin},
	}, cmds)

	cmds, err = parseScript("")
	require.NoError(t, err)
	assert.Empty(t, cmds)
}

func TestParseScript_Errors(t *testing.T) {
	_, err := parseScript("insert 1; fly")
	assert.ErrorIs(t, err, errScript)
	_, err = parseScript("insert 1 2")
	assert.ErrorIs(t, err, errScript)
}

func TestFromWorkload(t *testing.T) {
	cmds := fromWorkload([]workload.Op{
		{Kind: workload.Insert, Value: 4},
		{Kind: workload.ExtractMin},
	})
	assert.Equal(t, []string{"insert 4", "extract"}, []string{cmds[0].String(), cmds[1].String()})
}

func TestRecoverable(t *testing.T) {
	assert.True(t, recoverable(core.ErrEmpty))
	assert.True(t, recoverable(core.ErrCapacityExceeded))
	assert.True(t, recoverable(core.ErrInvalidInput))
	assert.False(t, recoverable(core.ErrInvariantViolation))
	assert.False(t, recoverable(errScript))
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	err := run(context.Background(), args, &out, &logs)

	return out.String(), err
}

func TestRun_Script(t *testing.T) {
	out, err := runCLI(t, "-structure", "binary", "-ops", "insert 5; insert 3; extract; peek; extract; extract; insert x")
	require.NoError(t, err)

	assert.Contains(t, out, "v1 insert 5 (1 steps)\n  structural-change/insert nodes=[0] values=[5]\n")
	assert.Contains(t, out, "  swap-or-link/swap nodes=[1 0] values=[3 5]\n")
	assert.Contains(t, out, "v3 extract 3")
	assert.Contains(t, out, "peek = 5\n")
	assert.Contains(t, out, "extract: core: structure is empty\n")
	assert.Contains(t, out, "insert x: core: invalid input")
	assert.True(t, strings.HasPrefix(lastBlock(out), "binary size=0"), out)
}

func TestRun_RandomOnEveryStructure(t *testing.T) {
	for _, s := range []string{"binary", "binomial", "fibonacci", "twothree"} {
		t.Run(s, func(t *testing.T) {
			out, err := runCLI(t, "-structure", s, "-random", "40", "-seed", "3", "-capacity", "0")
			require.NoError(t, err)
			assert.Contains(t, out, s+" size=")
		})
	}
}

func TestRun_CapacityIsRecoverable(t *testing.T) {
	out, err := runCLI(t, "-structure", "fibonacci", "-capacity", "1", "-ops", "insert 1; insert 2")
	require.NoError(t, err)
	assert.Contains(t, out, "insert 2: core: capacity exceeded")
	assert.Contains(t, out, "fibonacci size=1")
}

func TestRun_Errors(t *testing.T) {
	_, err := runCLI(t, "-structure", "treap")
	assert.Error(t, err)

	_, err = runCLI(t, "-ops", "jump")
	assert.ErrorIs(t, err, errScript)

	_, err = runCLI(t, "-log-level", "loud")
	assert.Error(t, err)

	_, err = runCLI(t, "-no-such-flag")
	assert.Error(t, err)
}

func TestLoadConfig_FileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
structure = "fibonacci"
ops       = "insert 2; extract"
initial   = [3, 9, 8]
seed      = 9
interval  = "250ms"
capacity  = 0
log_level = "debug"
`), 0o600))

	cfg, err := loadConfig([]string{"-config", path, "-structure", "twothree", "-seed", "4"})
	require.NoError(t, err)
	assert.Equal(t, "twothree", cfg.Structure, "flag wins")
	assert.Equal(t, int64(4), cfg.Seed, "flag wins")
	assert.Equal(t, "insert 2; extract", cfg.Ops)
	assert.Equal(t, []int{3, 9, 8}, cfg.Initial)
	assert.Equal(t, 250*time.Millisecond, cfg.Interval.Duration)
	assert.Equal(t, 0, cfg.Capacity)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`interval = "soon"`), 0o600))
	_, err := loadConfig([]string{"-config", path})
	assert.Error(t, err)

	_, err = loadConfig([]string{"-config", filepath.Join(t.TempDir(), "missing.toml")})
	assert.Error(t, err)
}

func TestNewQueue_Initial(t *testing.T) {
	cfg := defaultConfig()
	cfg.Initial = []int{3, 9, 8, 12, 15}
	q, err := newQueue(cfg)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 9, 8, 12, 15}, q.Snapshot().Values)

	cfg.Structure = "binomial"
	q, err = newQueue(cfg)
	require.NoError(t, err)
	m, err := q.PeekMin()
	require.NoError(t, err)
	assert.Equal(t, 3, m)
	assert.Equal(t, 5, q.Size())

	cfg.Capacity = 2
	_, err = newQueue(cfg)
	assert.ErrorIs(t, err, core.ErrCapacityExceeded)
}

// lastBlock returns the final binary snapshot printed by run.
func lastBlock(out string) string {
	i := strings.LastIndex(out, "binary size=")
	if i < 0 {
		return ""
	}

	return out[i:]
}
