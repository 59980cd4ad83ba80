package logger

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/runner/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

// EnvFormat selects the log format; "json" switches to slog's JSON handler.
const EnvFormat = "RUNNER_LOG_FORMAT"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return newFromEnv(os.Getenv), nil
		},
	})
}

func newFromEnv(getenv func(string) string) ports.Logger {
	l := New()
	if getenv(EnvFormat) == "json" {
		if jl, ok := l.(*Logger); ok {
			jl.SetJSON(true)
		}
	}
	return l
}
