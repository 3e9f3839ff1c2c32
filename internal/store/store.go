// Package store persists the history of kb_Msuite run calls.
package store

import (
	"context"

	"github.com/me/msuite/pkg/model"
)

// Store defines the persistence layer for run history.
type Store interface {
	CreateRun(ctx context.Context, run *model.Run) error
	GetRun(ctx context.Context, id string) (*model.Run, error)
	ListRuns(ctx context.Context, opts model.ListOptions) ([]*model.Run, int, error)
	UpdateRun(ctx context.Context, run *model.Run) error

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}
