package linear_test

import (
	"errors"
	"testing"
	"time"

	"go.trai.ch/runner/internal/adapters/linear"
	"go.trai.ch/runner/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRenderer_PhaseLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	r := linear.NewRenderer(log)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	gomock.InOrder(
		log.EXPECT().Debug("→ run"),
		log.EXPECT().Debug("  → compile"),
		log.EXPECT().Debug("  ✓ compile completed in 1.5s"),
		log.EXPECT().Debug("✓ run completed in 2s"),
	)

	r.OnPhaseStart("a", "", "run", start)
	r.OnPhaseStart("b", "a", "compile", start)
	r.OnPhaseComplete("b", start.Add(1500*time.Millisecond), nil)
	r.OnPhaseComplete("a", start.Add(2*time.Second), nil)
}

func TestRenderer_PhaseFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	r := linear.NewRenderer(log)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	log.EXPECT().Debug("→ cache.build.release")
	log.EXPECT().Debug("✗ cache.build.release failed after 250ms: cargo build failed")

	r.OnPhaseStart("a", "", "cache.build.release", start)
	r.OnPhaseComplete("a", start.Add(250*time.Millisecond), errors.New("cargo build failed"))
}

func TestRenderer_UnknownPhase(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	r := linear.NewRenderer(log)

	// No expectations: completing a phase that never started prints nothing.
	r.OnPhaseComplete("missing", time.Now(), nil)
}

func TestRenderer_UnknownParent(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	r := linear.NewRenderer(log)

	log.EXPECT().Debug("→ transform")
	r.OnPhaseStart("a", "gone", "transform", time.Now())
}
