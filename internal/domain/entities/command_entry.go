package entities

import "time"

// CommandEntry records one command entered during a session.
type CommandEntry struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	Input      string    `json:"input"`
	Feedback   string    `json:"feedback"`
	Succeeded  bool      `json:"succeeded"`
	ExecutedAt time.Time `json:"executed_at"`
}
