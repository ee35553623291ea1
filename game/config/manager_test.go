package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	settings := Default()

	assert.Equal(t, float64(600), settings.SpawnX)
	assert.Equal(t, float64(300), settings.SpawnY)
	assert.Equal(t, "Guest", settings.DefaultUsername)
	assert.Equal(t, 60, settings.PongWaitSeconds)
	assert.Equal(t, int64(512), settings.MaxMessageSize)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	settings, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), settings)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), settings)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"spawn_x": 100, "spawn_y": 200}`), 0o644))

	settings, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, float64(100), settings.SpawnX)
	assert.Equal(t, float64(200), settings.SpawnY)
	// Fields absent from the file keep their defaults
	assert.Equal(t, "Guest", settings.DefaultUsername)
	assert.Equal(t, 60, settings.PongWaitSeconds)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty username", `{"default_username": ""}`},
		{"zero pong wait", `{"pong_wait_seconds": 0}`},
		{"negative message size", `{"max_message_size": -1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			_, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestSpawnPosition(t *testing.T) {
	settings := &Settings{SpawnX: 42, SpawnY: 7, DefaultUsername: "Guest", PongWaitSeconds: 60, MaxMessageSize: 512}
	pos := settings.SpawnPosition()
	assert.Equal(t, float64(42), pos.X)
	assert.Equal(t, float64(7), pos.Y)
}
