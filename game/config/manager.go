package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/voicebazaar/bazaar-server/game/room"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Settings holds the tunable server parameters. Every field has a sensible
// default so the server runs without any settings file at all.
type Settings struct {
	// SpawnX and SpawnY are the default spawn position for joining players.
	SpawnX float64 `json:"spawn_x"`
	SpawnY float64 `json:"spawn_y"`

	// DefaultUsername is the placeholder name until a client sets one.
	DefaultUsername string `json:"default_username"`

	// PongWaitSeconds is the idle-liveness threshold: a connection that has
	// not answered a ping within this window is forcibly closed.
	PongWaitSeconds int `json:"pong_wait_seconds"`

	// MaxMessageSize caps the size of a single inbound message in bytes.
	MaxMessageSize int64 `json:"max_message_size"`
}

// Default returns the built-in settings, matching the values the browser
// client was written against.
func Default() *Settings {
	return &Settings{
		SpawnX:          600,
		SpawnY:          300,
		DefaultUsername: room.DefaultUsername,
		PongWaitSeconds: 60,
		MaxMessageSize:  512,
	}
}

// Load reads settings from a JSON file, falling back to defaults for a
// missing file or an empty path. Fields absent from the file keep their
// default values.
func Load(path string) (*Settings, error) {
	settings := Default()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := json.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if err := Validate(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// Validate checks that settings values are usable.
func Validate(s *Settings) error {
	if s.DefaultUsername == "" {
		return fmt.Errorf("%w: default_username must not be empty", ErrInvalidConfig)
	}
	if s.PongWaitSeconds <= 0 {
		return fmt.Errorf("%w: pong_wait_seconds must be positive", ErrInvalidConfig)
	}
	if s.MaxMessageSize <= 0 {
		return fmt.Errorf("%w: max_message_size must be positive", ErrInvalidConfig)
	}
	return nil
}

// SpawnPosition returns the configured default spawn point.
func (s *Settings) SpawnPosition() room.Position {
	return room.Position{X: s.SpawnX, Y: s.SpawnY}
}
