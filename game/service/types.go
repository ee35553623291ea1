package service

import "time"

// StatsInfo summarizes the live state of the server process.
type StatsInfo struct {
	Rooms     int       `json:"rooms"`
	Players   int       `json:"players"`
	StartedAt time.Time `json:"started_at"`
	UptimeSec float64   `json:"uptime_seconds"`
}
