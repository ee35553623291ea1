// Package config provides server settings for the bazaar multiplayer server.
//
// Settings are loaded from an optional JSON file; a missing file means
// built-in defaults. The defaults mirror what the browser client expects:
// players spawn at (600, 300) as "Guest", and idle connections are closed
// after 60 seconds without a pong.
//
// Usage:
//
//	settings, err := config.Load("settings.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	spawn := settings.SpawnPosition()
package config
