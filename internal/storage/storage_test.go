package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worktick/internal/config"
)

func TestSettingsRoundTrip(t *testing.T) {
	dir := t.TempDir()

	settings := config.Default()
	settings.IdleTimeout = 5 * time.Minute
	settings.PollInterval = 250 * time.Millisecond
	settings.Goal = 8 * time.Hour
	settings.ShowBorderWhenInactive = true
	settings.AddProgramHotkey = "ctrl+shift+f9"

	require.NoError(t, SaveSettings(dir, settings))

	loaded, err := LoadSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	loaded, err := LoadSettings(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, config.Default(), loaded)
}

func TestLoadSettingsCorruptFileDegradesToDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, settingsFileName), []byte("{not yaml"), 0o644))

	loaded, err := LoadSettings(dir)

	assert.Error(t, err)
	assert.Equal(t, config.Default(), loaded)
}

func TestProgramsRoundTripPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	paths := []string{`C:\Work\app.exe`, "/usr/bin/code", "/usr/bin/vim"}

	require.NoError(t, SavePrograms(dir, paths))

	loaded, err := LoadPrograms(dir)
	require.NoError(t, err)
	assert.Equal(t, paths, loaded)
}

func TestLoadProgramsMissingFileIsEmpty(t *testing.T) {
	loaded, err := LoadPrograms(t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadProgramsCorruptFileDegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, programsFileName), []byte("\tnope"), 0o644))

	loaded, err := LoadPrograms(dir)

	assert.Error(t, err)
	assert.Empty(t, loaded)
}

func TestLedgerSaveLoad(t *testing.T) {
	dir := t.TempDir()
	ledger, err := OpenLedger(dir)
	require.NoError(t, err)
	defer ledger.Close()

	total, err := ledger.Load()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), total, "fresh database starts at zero")

	require.NoError(t, ledger.Save(90*time.Minute))
	require.NoError(t, ledger.Save(91*time.Minute))

	total, err = ledger.Load()
	require.NoError(t, err)
	assert.Equal(t, 91*time.Minute, total)
}

func TestLedgerSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	ledger, err := OpenLedger(dir)
	require.NoError(t, err)
	require.NoError(t, ledger.Save(time.Hour))
	require.NoError(t, ledger.Close())

	reopened, err := OpenLedger(dir)
	require.NoError(t, err)
	defer reopened.Close()

	total, err := reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, total)
}

func TestSessionHistoryDedupesAndTrims(t *testing.T) {
	ledger, err := OpenLedger(t.TempDir())
	require.NoError(t, err)
	defer ledger.Close()

	for _, total := range []time.Duration{
		1 * time.Hour,
		2 * time.Hour,
		3 * time.Hour,
		2 * time.Hour, // duplicate moves to the front
		4 * time.Hour,
		5 * time.Hour,
		6 * time.Hour,
	} {
		require.NoError(t, ledger.RecordSession(total))
	}

	history, err := ledger.History()
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{
		6 * time.Hour,
		5 * time.Hour,
		4 * time.Hour,
		2 * time.Hour,
		3 * time.Hour,
	}, history)

	last, err := ledger.LastSession()
	require.NoError(t, err)
	assert.Equal(t, 6*time.Hour, last)
}

func TestRecordSessionIgnoresZero(t *testing.T) {
	ledger, err := OpenLedger(t.TempDir())
	require.NoError(t, err)
	defer ledger.Close()

	require.NoError(t, ledger.RecordSession(0))

	history, err := ledger.History()
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestStoreWithoutLedgerDegrades(t *testing.T) {
	store := NewStore(t.TempDir(), nil, nil)

	assert.NoError(t, store.SaveLedger(time.Hour))
	assert.NoError(t, store.RecordSession(time.Hour))

	last, err := store.LastSession()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), last)
}

func TestStoreSavePrograms(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, nil, nil)

	require.NoError(t, store.SavePrograms([]string{"/a", "/b"}))

	loaded, err := LoadPrograms(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a", "/b"}, loaded)
}
