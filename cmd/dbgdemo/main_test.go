package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bjaus/dbg"
)

func nopLogger(bool) (*zap.Logger, error) { return zap.NewNop(), nil }

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(nopLogger)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSamples(t *testing.T) {
	t.Parallel()
	tests := map[string][]string{
		"default": {"--color", "never"},
		"samples": {"samples", "--color", "never"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out, err := run(t, args...)
			require.NoError(t, err)
			for _, want := range []string{
				"  bool1 = true\n",
				"  int1 = 2147483647\n",
				"  float1 = 3.14\n",
				"  char1 = 'a'\n",
				"  bytes1 = { 104, 105 }\n",
				"  vec2 = { { 1, 2, 3 }, { 4, 5, 6 } }\n",
				"  seq1 = { 1, 2, 3 }\n",
				"  list1 = { 0, 0, 3 }\n",
				`  map1 = { 1: "one", 2: "two" }` + "\n",
				`  map2 = { "item1": { 1 }, "item2": { 2 }, "item10": { 10 } }` + "\n",
				"  stack1 = { 3, 2, 1 }\n",
				"  queue1 = { 1, 2, 3 }\n",
				"  priorityQueue1 = { 3, 2, 1 }\n",
				`  pair1 = { 1, "one" }` + "\n",
				`  tuple1 = { 1, "one", 3.14 }` + "\n",
				"  unknown1 = Not implemented\n",
				" - nestedSample]\n  varInFunc = 1234\n",
			} {
				assert.Contains(t, out, want)
			}
			assert.Contains(t, out, "[samples.go:")
			assert.NotContains(t, out, "writeSamples")
			assert.NotContains(t, out, "\x1b[")
		})
	}
}

func TestSamplesFlags(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args []string
		want string
	}{
		"align": {
			args: []string{"--color", "never", "--align"},
			want: "  int1    = 2147483647\n  int2    = 9223372036854775807\n",
		},
		"max depth": {
			args: []string{"--color", "never", "--max-depth", "1"},
			want: "  vec2 = { { ... }, { ... } }\n",
		},
		"color": {
			args: []string{"--color", "always"},
			want: "\x1b[92mtrue\x1b[0m",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()
	out, err := run(t, "split", `m[K, V]{}, f(a, b), "x,y"`)
	require.NoError(t, err)
	assert.Equal(t, "m[K, V]{}\nf(a, b)\n\"x,y\"\n", out)

	_, err = run(t, "split")
	require.Error(t, err)
}

func TestTheme(t *testing.T) {
	t.Parallel()
	out, err := run(t, "theme", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "header    bold yellow\n")
	assert.Contains(t, out, "separator bright-black\n")

	out, err = run(t, "theme", "--yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "operator: bold cyan\n")
}

func TestThemeFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("header: none\n"), 0o600))

	out, err := run(t, "theme", "--color", "never", "--theme", path)
	require.NoError(t, err)
	assert.Contains(t, out, "header    none\n")

	out, err = run(t, "samples", "--color", "always", "--theme", path)
	require.NoError(t, err)
	assert.Contains(t, out, "[samples.go:")
}

func TestErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args []string
		is   error
	}{
		"color mode": {
			args: []string{"--color", "sometimes"},
			is:   dbg.ErrUnsupportedColorMode,
		},
		"missing theme": {
			args: []string{"--theme", filepath.Join(t.TempDir(), "missing.yaml")},
			is:   os.ErrNotExist,
		},
		"extra args": {
			args: []string{"samples", "extra"},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := run(t, tt.args...)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestLoggerFailure(t *testing.T) {
	t.Parallel()
	errBuild := errors.New("no sink")
	cmd := newRootCmd(func(bool) (*zap.Logger, error) { return nil, errBuild })
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"split", "a"})
	err := cmd.Execute()
	require.ErrorIs(t, err, errBuild)
	assert.Contains(t, err.Error(), "failed to initialize logger")
}

func TestNewLogger(t *testing.T) {
	t.Parallel()
	logger, err := newLogger(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	logger, err = newLogger(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
}
