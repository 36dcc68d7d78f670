package main

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/simon/audio"
	"github.com/lixenwraith/simon/config"
)

// withOptions swaps the global flag values for the duration of the test
func withOptions(t *testing.T, o playOptions) {
	t.Helper()
	saved := opts
	opts = o
	t.Cleanup(func() { opts = saved })
}

func TestNoAudioFlagBeatsEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvAudioEnabled, "true")
	withOptions(t, playOptions{
		configPath: filepath.Join(dir, "none.yaml"),
		envFile:    filepath.Join(dir, "none.env"),
		noAudio:    true,
	})

	cfg, err := loadConfig(&cobra.Command{})
	require.NoError(t, err)
	assert.False(t, cfg.Audio.Enabled)

	ac := cfg.ToAudioConfig()
	assert.False(t, ac.Enabled)
	assert.True(t, audio.NewSoundManager(ac).IsMuted())
}

func TestEnvironmentDisablesAudio(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvAudioEnabled, "false")
	withOptions(t, playOptions{
		configPath: filepath.Join(dir, "none.yaml"),
		envFile:    filepath.Join(dir, "none.env"),
	})

	cfg, err := loadConfig(&cobra.Command{})
	require.NoError(t, err)
	assert.False(t, cfg.ToAudioConfig().Enabled)
}
