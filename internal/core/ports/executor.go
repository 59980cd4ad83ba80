// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/runner/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command and waits for it to complete.
	//
	// A command that exits with a non-zero status returns a *domain.ExitError.
	Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error
}
