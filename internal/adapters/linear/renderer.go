// Package linear reports invocation phases as plain, chronological log lines.
package linear

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.trai.ch/runner/internal/core/ports"
	"go.trai.ch/runner/internal/ui/style"
)

// Renderer implements ports.Renderer on top of the debug log.
// Nested phases are indented under their parent.
type Renderer struct {
	logger ports.Logger

	mu     sync.Mutex
	phases map[string]*phase
}

type phase struct {
	name      string
	depth     int
	startTime time.Time
}

// NewRenderer creates a Renderer writing through logger.
func NewRenderer(logger ports.Logger) *Renderer {
	return &Renderer{
		logger: logger,
		phases: make(map[string]*phase),
	}
}

// OnPhaseStart records the phase and prints its name.
func (r *Renderer) OnPhaseStart(spanID, parentID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	depth := 0
	if parent, ok := r.phases[parentID]; ok {
		depth = parent.depth + 1
	}
	r.phases[spanID] = &phase{name: name, depth: depth, startTime: startTime}

	r.logger.Debug(fmt.Sprintf("%s%s %s", indent(depth), style.Arrow, name))
}

// OnPhaseComplete prints the outcome and duration of a known phase.
func (r *Renderer) OnPhaseComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.phases[spanID]
	if !ok {
		return
	}
	delete(r.phases, spanID)

	elapsed := endTime.Sub(p.startTime).Round(time.Millisecond)
	if err != nil {
		r.logger.Debug(fmt.Sprintf("%s%s %s failed after %v: %v", indent(p.depth), style.Cross, p.name, elapsed, err))
		return
	}
	r.logger.Debug(fmt.Sprintf("%s%s %s completed in %v", indent(p.depth), style.Check, p.name, elapsed))
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}
