package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ejolly/demo-project/internal/config"
)

func TestConfigPath(t *testing.T) {
	cfgFile := tempConfig(t)
	res, err := run(t, cfgFile, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, cfgFile+"\n", res.stdout)
}

func TestConfigShow_Plain(t *testing.T) {
	res, err := run(t, tempConfig(t), "config", "show", "-o", "plain")
	require.NoError(t, err)
	assert.Equal(t, "output=plain\nverbose=false\n", res.stdout)
}

func TestConfigShow_JSON(t *testing.T) {
	res, err := run(t, tempConfig(t), "config", "show", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"output":"json","verbose":"false"}`, res.stdout)
}

func TestConfigShow_Table(t *testing.T) {
	res, err := run(t, tempConfig(t), "config", "show")
	require.NoError(t, err)
	assert.Contains(t, res.stdout, "KEY")
	assert.Contains(t, res.stdout, "VALUE")
	assert.Contains(t, res.stdout, "output")
	assert.Contains(t, res.stdout, "text")
}

func TestConfigGet(t *testing.T) {
	res, err := run(t, tempConfig(t), "config", "get", "output")
	require.NoError(t, err)
	assert.Equal(t, "text\n", res.stdout)

	_, err = run(t, tempConfig(t), "config", "get", "proxy")
	require.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestConfigSet_WritesOnlyNamedKey(t *testing.T) {
	cfgFile := tempConfig(t)

	_, err := run(t, cfgFile, "config", "set", "output", "json")
	require.NoError(t, err)

	raw := readYAML(t, cfgFile)
	assert.Equal(t, map[string]any{"output": "json"}, raw)

	res, err := run(t, cfgFile, "hello")
	require.NoError(t, err)
	assert.JSONEq(t, `{"greeting":"hello world"}`, res.stdout)
}

func TestConfigSet_PreservesOtherKeys(t *testing.T) {
	cfgFile := tempConfig(t)
	require.NoError(t, os.WriteFile(cfgFile, []byte("output: plain\n"), 0o600))

	_, err := run(t, cfgFile, "config", "set", "verbose", "true")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"output": "plain", "verbose": true}, readYAML(t, cfgFile))
}

func TestConfigSet_Invalid(t *testing.T) {
	cfgFile := tempConfig(t)

	_, err := run(t, cfgFile, "config", "set", "nope", "x")
	require.ErrorIs(t, err, config.ErrUnknownKey)

	_, err = run(t, cfgFile, "config", "set", "output", "xml")
	require.Error(t, err)

	assert.Empty(t, readYAML(t, cfgFile))
}

func readYAML(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	raw := map[string]any{}
	require.NoError(t, yaml.Unmarshal(data, &raw))
	return raw
}
