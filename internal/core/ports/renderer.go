package ports

import "time"

// Renderer presents the phases of an invocation as they start and finish.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPhaseStart is called when a phase begins.
	// parentID is empty for top-level phases.
	OnPhaseStart(spanID, parentID, name string, startTime time.Time)

	// OnPhaseComplete is called when a phase finishes. err is nil on success.
	OnPhaseComplete(spanID string, endTime time.Time, err error)
}
