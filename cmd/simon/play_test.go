package main

import (
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/simon/config"
	"github.com/lixenwraith/simon/game"
	"github.com/lixenwraith/simon/journal"
)

func newTestSession(t *testing.T, strict bool) *session {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	cfg := config.Default()
	cfg.Seed = 7
	cfg.Strict = strict
	cfg.Audio.Enabled = false

	s := newSession(screen, cfg, "legend")
	s.loop.Start()
	return s
}

func TestSessionDispatchRecordsInputs(t *testing.T) {
	s := newTestSession(t, false)

	require.True(t, s.loop.Sync(func() { s.dispatch(game.PowerPressed()) }))
	require.True(t, s.loop.Sync(func() { s.dispatch(game.ColorPressed(game.Red)) }))

	var snap game.Snapshot
	s.loop.Sync(func() { snap = s.seq.Snapshot() })
	assert.True(t, snap.PowerOn)
	assert.False(t, snap.StrictMode)
	assert.Equal(t, game.PhaseReady, snap.Phase)

	js := s.close()
	require.Len(t, js.Inputs, 2)
	assert.Equal(t, "power", js.Inputs[0].Input)
	assert.Equal(t, "red", js.Inputs[1].Color)
	assert.Equal(t, int64(7), js.Seed)
}

func TestSessionStrictPreferenceAppliesOnPowerUp(t *testing.T) {
	s := newTestSession(t, true)

	s.loop.Sync(func() { s.dispatch(game.PowerPressed()) })

	var snap game.Snapshot
	s.loop.Sync(func() { snap = s.seq.Snapshot() })
	assert.True(t, snap.StrictMode)
	assert.Equal(t, "Ready", s.presenter.Status())

	// Power-off clears strict; the next power-up restores it
	s.loop.Sync(func() { s.dispatch(game.PowerPressed()) })
	s.loop.Sync(func() { s.dispatch(game.PowerPressed()) })
	s.loop.Sync(func() { snap = s.seq.Snapshot() })
	assert.True(t, snap.StrictMode)

	js := s.close()
	var kinds []string
	for _, e := range js.Inputs {
		kinds = append(kinds, e.Input)
	}
	assert.Equal(t, []string{"power", "strict", "power", "power", "strict"}, kinds)

	// The journal reproduces the strict state on replay
	_, replayed, err := journal.Replay(js)
	require.NoError(t, err)
	assert.True(t, replayed.StrictMode)
	assert.True(t, replayed.PowerOn)
}

func TestSaveJournal(t *testing.T) {
	dir := t.TempDir()
	js := journal.NewSession(1, testStart)
	js.Inputs = append(js.Inputs, journal.NewEntry(0, game.PowerPressed()))

	// Nothing configured: nothing written
	require.NoError(t, saveJournal(js, config.Default(), playOptions{}))

	cfg := config.Default()
	cfg.Journal = dir
	require.NoError(t, saveJournal(js, cfg, playOptions{}))
	loaded, err := journal.LoadFile(filepath.Join(dir, js.ID+".yaml"))
	require.NoError(t, err)
	assert.Equal(t, js.ID, loaded.ID)

	explicit := filepath.Join(dir, "explicit.yaml")
	require.NoError(t, saveJournal(js, cfg, playOptions{record: explicit}))
	_, err = journal.LoadFile(explicit)
	assert.NoError(t, err)

	err = saveJournal(js, cfg, playOptions{record: filepath.Join(dir, "missing", "x.yaml")})
	assert.Error(t, err)
}
