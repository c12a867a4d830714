package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/dshills/parsebuf/internal/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	require.Contains(t, out, "parsebuf dev")
}

func TestScanStdin(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.toml")
	out, _, err := execute(t, "ab\n😀c\n", "scan", "--config", missing, "--verify", "--graphemes")
	require.NoError(t, err)
	require.Contains(t, out, "units")
	require.Regexp(t, `scalars\s+6\n`, out)
	require.Regexp(t, `lines\s+2\n`, out)
	require.Regexp(t, `graphemes\s+6\n`, out)
	require.Regexp(t, `bytes\s+9 B\n`, out)
	require.Contains(t, out, "verified")
}

func TestScanReportsBOMEncoding(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte{0xFE, 0xFF, 0, 'o', 0, 'k'}, 0o644))

	out, _, err := execute(t, "", "scan", "--config", filepath.Join(dir, "none.toml"), input)
	require.NoError(t, err)
	require.Regexp(t, `encoding\s+utf-16be\n`, out)
	require.Regexp(t, `units\s+2\n`, out)
}

func TestScanFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(input, []byte(strings.Repeat("x", 2000)), 0o644))

	cfgPath := filepath.Join(dir, "parsebuf.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[input]\nchunk_size = 100\n"), 0o644))

	out, _, err := execute(t, "", "scan", "--config", cfgPath, input)
	require.NoError(t, err)
	require.Regexp(t, `chunks\s+20\n`, out)
	require.Regexp(t, `units\s+2,000\n`, out)
	require.NotContains(t, out, "graphemes")
}

func TestScanDebugLogging(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.toml")
	_, errOut, err := execute(t, "abc", "scan", "--config", missing, "--log-level", "debug")
	require.NoError(t, err)
	require.Contains(t, errOut, "chunk appended")
}

func TestScanErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "none.toml")

	_, _, err := execute(t, "", "scan", "--config", missing, "--encoding", "klingon")
	require.True(t, errors.Is(err, config.ErrValidationFailed))

	_, _, err = execute(t, "", "scan", "--config", missing, filepath.Join(t.TempDir(), "absent.txt"))
	require.True(t, errors.Is(err, os.ErrNotExist))

	_, _, err = execute(t, "", "scan", "a", "b")
	require.Error(t, err)
}

func TestResolveLayering(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "parsebuf.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[input]\nencoding = \"utf-16le\"\nchunk_size = 10\n"), 0o644))

	env := map[string]string{"PARSEBUF_CHUNK_SIZE": "20", "PARSEBUF_LOG_LEVEL": "warn"}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	tests := []struct {
		name      string
		args      []string
		chunkSize int
	}{
		{"env over file", []string{"--config", cfgPath}, 20},
		{"flag over env", []string{"--config", cfgPath, "--chunk-size", "30"}, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts scanOptions
			flags := pflag.NewFlagSet("scan", pflag.ContinueOnError)
			opts.bind(flags)
			require.NoError(t, flags.Parse(tt.args))

			cfg, err := opts.resolve(flags, lookup)
			require.NoError(t, err)
			require.Equal(t, "utf-16le", cfg.Input.Encoding)
			require.Equal(t, tt.chunkSize, cfg.Input.ChunkSize)
			require.Equal(t, "warn", cfg.Logging.Level)
		})
	}
}

func TestResolveBadEnv(t *testing.T) {
	var opts scanOptions
	flags := pflag.NewFlagSet("scan", pflag.ContinueOnError)
	opts.bind(flags)
	require.NoError(t, flags.Parse([]string{"--config", filepath.Join(t.TempDir(), "none.toml")}))

	_, err := opts.resolve(flags, func(k string) (string, bool) {
		if k == "PARSEBUF_VERIFY" {
			return "sometimes", true
		}
		return "", false
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "PARSEBUF_VERIFY")
}
