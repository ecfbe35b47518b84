package persistence

import (
	"context"
	"time"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
)

// Store is the local persistence collaborator. State lives under a single
// well-known key as one serialized blob; the reconcile checkpoint and the
// device id live under their own keys so they can change independently of
// full-state writes.
type Store interface {
	SaveSnapshot(ctx context.Context, snap domain.Snapshot) error
	// LoadSnapshot returns (nil, nil) when no snapshot has been saved yet.
	// Malformed data is reported as domain.ErrInvalidSnapshot.
	LoadSnapshot(ctx context.Context) (*domain.Snapshot, error)

	SaveCheckpoint(ctx context.Context, t time.Time) error
	// LoadCheckpoint returns (nil, nil) when no checkpoint exists.
	LoadCheckpoint(ctx context.Context) (*time.Time, error)

	SaveDeviceID(ctx context.Context, id string) error
	LoadDeviceID(ctx context.Context) (string, error)
}
