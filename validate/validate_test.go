package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func TestValidateSettings_Valid(t *testing.T) {
	path := writeFile(t, "settings.json", `{"spawn_x": 600, "spawn_y": 300}`)

	result := validateSettings(path)
	if !result.Valid {
		t.Errorf("Expected valid result, got errors: %v", result.Errors)
	}
}

func TestValidateSettings_MissingFile(t *testing.T) {
	result := validateSettings(filepath.Join(t.TempDir(), "nope.json"))
	if result.Valid {
		t.Error("Expected missing file to fail validation")
	}
}

func TestValidateSettings_BadJSON(t *testing.T) {
	path := writeFile(t, "settings.json", `{broken`)

	result := validateSettings(path)
	if result.Valid {
		t.Error("Expected malformed JSON to fail validation")
	}
	if len(result.Errors) == 0 {
		t.Error("Expected at least one error message")
	}
}

func TestValidateSettings_BadValues(t *testing.T) {
	path := writeFile(t, "settings.json", `{"pong_wait_seconds": -5}`)

	result := validateSettings(path)
	if result.Valid {
		t.Error("Expected invalid values to fail validation")
	}
}
