package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ejolly/demo-project/demo"
	"github.com/ejolly/demo-project/internal/apperr"
)

type result struct {
	stdout string
	stderr string
}

// run executes the command tree against cfgFile with args and returns captured output.
func run(t *testing.T, cfgFile string, args ...string) (result, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	level := &slog.LevelVar{}
	logger := slog.New(slog.NewTextHandler(&stderr, &slog.HandlerOptions{Level: level}))

	err := Execute(append([]string{"--config=" + cfgFile}, args...), strings.NewReader(""), &stdout, &stderr, logger, level)
	return result{stdout: stdout.String(), stderr: stderr.String()}, err
}

func tempConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.yaml")
}

func TestHello_Text(t *testing.T) {
	res, err := run(t, tempConfig(t), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", res.stdout)
	assert.Empty(t, res.stderr)
}

func TestHello_Plain(t *testing.T) {
	res, err := run(t, tempConfig(t), "hello", "-o", "plain")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", res.stdout)
}

func TestHello_JSON(t *testing.T) {
	res, err := run(t, tempConfig(t), "hello", "--output=json")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, map[string]string{"greeting": demo.Greeting}, got)
}

func TestHello_Verbose(t *testing.T) {
	res, err := run(t, tempConfig(t), "hello", "--verbose")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", res.stdout)
	assert.Contains(t, res.stderr, "emitting greeting")
}

func TestHello_RejectsArgs(t *testing.T) {
	_, err := run(t, tempConfig(t), "hello", "there")
	require.Error(t, err)
}

func TestInvalidOutputFormat(t *testing.T) {
	_, err := run(t, tempConfig(t), "hello", "--output=xml")
	require.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestOutputFromConfigFile(t *testing.T) {
	cfgFile := tempConfig(t)
	require.NoError(t, os.WriteFile(cfgFile, []byte("output: json\n"), 0o600))

	res, err := run(t, cfgFile, "hello")
	require.NoError(t, err)
	assert.JSONEq(t, `{"greeting":"hello world"}`, res.stdout)
}

func TestVersionFlag(t *testing.T) {
	res, err := run(t, tempConfig(t), "--version")
	require.NoError(t, err)
	assert.Equal(t, "demo version "+demo.Version+"\n", res.stdout)
}

func TestVersionCmd(t *testing.T) {
	res, err := run(t, tempConfig(t), "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.stdout, "demo version 0.1.0 (commit: "), "got %q", res.stdout)
}

func TestVersionCmd_JSON(t *testing.T) {
	res, err := run(t, tempConfig(t), "version", "-o", "json")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, "0.1.0", got["version"])
	assert.Contains(t, got, "commit")
	assert.Contains(t, got, "date")
}

func TestCompletion(t *testing.T) {
	cfgFile := tempConfig(t)
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			res, err := run(t, cfgFile, "completion", shell)
			require.NoError(t, err)
			assert.NotEmpty(t, res.stdout)
		})
	}

	_, err := os.Stat(cfgFile)
	assert.True(t, os.IsNotExist(err), "completion must not create the config file")
}

func TestCompletion_UnknownShell(t *testing.T) {
	_, err := run(t, tempConfig(t), "completion", "tcsh")
	require.Error(t, err)
}
