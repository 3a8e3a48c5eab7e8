package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pixelforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadExample(t *testing.T) {
	cfg, err := Load("pixelforge.example.yaml")
	require.NoError(t, err)
	assert.Equal(t, "localhost:9090", cfg.Address())
	assert.Equal(t, 32768, cfg.ChunkSize())
	assert.Equal(t, 30*time.Second, cfg.Transfer.Timeout)
	assert.Equal(t, 3, cfg.Palette.ColorsPerRow)
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "transfer:\n  chunk_size: 32\n"))
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.ChunkSize())
	assert.Equal(t, Default().Server, cfg.Server)
	assert.Equal(t, Default().Transfer.Timeout, cfg.Transfer.Timeout)
}

func TestLoadRejects(t *testing.T) {
	for name, body := range map[string]string{
		"unknown field": "server:\n  colour: red\n",
		"zero chunk":    "transfer:\n  chunk_size: 0\n",
		"bad port":      "server:\n  port: 70000\n",
		"bad format":    "log:\n  format: xml\n",
	} {
		_, err := Load(writeConfig(t, body))
		assert.Error(t, err, name)
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApplyFlagsOverridesFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  port: 7000\ntransfer:\n  chunk_size: 64\n"))
	require.NoError(t, err)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--chunk-size=32", "--timeout=2s"}))
	require.NoError(t, cfg.ApplyFlags(fs))

	assert.Equal(t, 7000, cfg.Server.Port, "unset flag must not clobber the file")
	assert.Equal(t, 32, cfg.Transfer.ChunkSize)
	assert.Equal(t, 2*time.Second, cfg.Transfer.Timeout)

	require.NoError(t, fs.Parse([]string{"--chunk-size=0"}))
	assert.Error(t, cfg.ApplyFlags(fs))
}
