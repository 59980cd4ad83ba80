package domain

import "time"

// BuildInfo records the last successful compilation of a program.
type BuildInfo struct {
	Program   string    `json:"program,omitzero"`
	InputHash string    `json:"input_hash,omitzero"`
	Mode      string    `json:"mode,omitzero"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}
