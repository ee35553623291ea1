// Command validate provides a small CLI that validates server settings JSON
// files before deployment. It checks:
//   - JSON structure
//   - A non-empty default username
//   - Positive pong-wait and message-size values
//
// Usage:
//
//	go run ./validate settings.json [more.json ...]
//
// With no arguments it validates "settings.json" in the working directory.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/voicebazaar/bazaar-server/game/config"
)

// ValidationResult captures the outcome of validating a single file.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateSettings loads and validates a single settings JSON file.
func validateSettings(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	if _, err := os.Stat(filePath); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to stat file: %v", err))
		return result
	}

	settings, err := config.Load(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	if err := config.Validate(settings); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
	}

	return result
}

func main() {
	paths := os.Args[1:]
	if len(paths) == 0 {
		paths = []string{"settings.json"}
	}

	failed := 0
	for _, path := range paths {
		result := validateSettings(path)
		if result.Valid {
			fmt.Printf("OK   %s\n", result.File)
			continue
		}

		failed++
		fmt.Printf("FAIL %s\n", result.File)
		for _, msg := range result.Errors {
			fmt.Printf("     - %s\n", msg)
		}
	}

	if failed > 0 {
		fmt.Printf("\n%d of %d files failed validation\n", failed, len(paths))
		os.Exit(1)
	}
}
