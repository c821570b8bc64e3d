package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCandidates подменяет список мест поиска caesar.toml на время теста.
func stubCandidates(t *testing.T, paths ...string) {
	t.Helper()
	old := candidates
	candidates = func() []string { return paths }
	t.Cleanup(func() { candidates = old })
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	stubCandidates(t, filepath.Join(t.TempDir(), "caesar.toml"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "russian_dict.txt", cfg.Dictionary.Russian)
	assert.Equal(t, 40, cfg.Mixed.WindowSize)
}

func TestLoadDiscoversFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "caesar.toml")
	require.NoError(t, os.WriteFile(p, []byte("[mixed]\nwindow_size = 50\n"), 0o644))
	stubCandidates(t, p)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Mixed.WindowSize)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "нет.toml"))
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	p := filepath.Join(t.TempDir(), "caesar.toml")
	require.NoError(t, os.WriteFile(p, []byte(`
[dictionary]
dirs = ["/opt/dicts"]
russian = "ru.txt"

[redis]
addr = "localhost:6379"
db = 2

[mixed]
window_size = 60
`), 0o644))

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"/opt/dicts"}, cfg.Dictionary.Dirs)
	assert.Equal(t, "ru.txt", cfg.Dictionary.Russian)
	assert.Equal(t, "english_dict.txt", cfg.Dictionary.English, "незатронутые поля сохраняют умолчания")
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)

	cc := cfg.CrackerConfig()
	assert.Equal(t, 60, cc.WindowSize)
	assert.Equal(t, 15, cc.MinSegment)
}
