package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePathsDefault(t *testing.T) {
	t.Setenv("LLMRELAY_HOME", "")
	os.Unsetenv("LLMRELAY_HOME")

	paths, err := ResolvePaths()
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".llmrelay"), paths.Base)
	assert.Equal(t, filepath.Join(paths.Base, "config.yaml"), paths.Config)
}

func TestResolvePathsHomeOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LLMRELAY_HOME", dir)

	paths, err := ResolvePaths()
	require.NoError(t, err)
	assert.Equal(t, dir, paths.Base)
	assert.Equal(t, filepath.Join(dir, "logs"), paths.Logs)
}

func TestEnsureDirs(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LLMRELAY_HOME", filepath.Join(dir, "relay"))

	paths, err := ResolvePaths()
	require.NoError(t, err)
	require.NoError(t, paths.EnsureDirs())

	for _, d := range []string{paths.Base, paths.Logs} {
		info, err := os.Stat(d)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestParseConfigPath(t *testing.T) {
	tests := []struct {
		input   string
		want    []string
		wantErr bool
	}{
		{"server.port", []string{"server", "port"}, false},
		{"llm.url", []string{"llm", "url"}, false},
		{"logging", []string{"logging"}, false},
		{"", nil, true},
		{"server..port", nil, true},
		{".server", nil, true},
		{"server.", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseConfigPath(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestGetSetUnsetValueAtPath(t *testing.T) {
	root := map[string]any{
		"server": map[string]any{"port": 8000},
	}

	val, ok := GetValueAtPath(root, []string{"server", "port"})
	assert.True(t, ok)
	assert.Equal(t, 8000, val)

	_, ok = GetValueAtPath(root, []string{"server", "missing"})
	assert.False(t, ok)

	SetValueAtPath(root, []string{"llm", "model"}, "gemma3-27b")
	val, ok = GetValueAtPath(root, []string{"llm", "model"})
	assert.True(t, ok)
	assert.Equal(t, "gemma3-27b", val)

	assert.True(t, UnsetValueAtPath(root, []string{"llm", "model"}))
	assert.False(t, UnsetValueAtPath(root, []string{"llm", "model"}))
}
