// Package identity resolves who the local player is. Without an account
// system the device itself is the identity: a generated id is persisted on
// first launch and reused forever after, so remote rows stay keyed to the
// same player across restarts.
package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hiperworks/HiperClicker_Go/internal/logger"
	"github.com/hiperworks/HiperClicker_Go/internal/persistence"
)

// Provider supplies the player identity used to key remote state.
type Provider interface {
	// UserID returns the stable player id, false when no identity is
	// established and remote sync must be skipped.
	UserID() (string, bool)
	Username() string
}

// DeviceProvider is a Provider backed by a persisted device id.
type DeviceProvider struct {
	id       string
	username string
}

// NewDeviceProvider loads the device id from the store, generating and
// persisting a fresh one on first launch.
func NewDeviceProvider(ctx context.Context, store persistence.Store) (*DeviceProvider, error) {
	log := logger.FromContext(ctx)

	id, err := store.LoadDeviceID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load device id: %w", err)
	}

	if id == "" {
		id = uuid.NewString()
		if err := store.SaveDeviceID(ctx, id); err != nil {
			return nil, fmt.Errorf("failed to persist device id: %w", err)
		}
		log.Info("Generated new device identity", "device_id", id)
	}

	return &DeviceProvider{
		id:       id,
		username: displayName(id),
	}, nil
}

func (p *DeviceProvider) UserID() (string, bool) {
	return p.id, p.id != ""
}

func (p *DeviceProvider) Username() string {
	return p.username
}

// displayName derives a stable default username from the device id.
func displayName(id string) string {
	short := id
	if len(short) > 8 {
		short = short[:8]
	}
	return "player-" + short
}

// Anonymous is a Provider with no identity; remote sync is disabled.
type Anonymous struct{}

func (Anonymous) UserID() (string, bool) { return "", false }
func (Anonymous) Username() string       { return "" }
