package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Booster errors
	ErrMsgEmptyInventory = "booster inventory is empty"
	ErrMsgUnknownBooster = "unknown booster kind"

	// Upgrade errors
	ErrMsgUnknownUpgrade = "unknown upgrade kind"

	// Persistence errors
	ErrMsgInvalidSnapshot    = "invalid snapshot"
	ErrMsgPersistenceFailure = "local persistence failed"

	// Sync errors
	ErrMsgSyncFailure = "remote sync failed"
	ErrMsgLocalOnly   = "no user identity, running local-only"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Booster errors
	ErrEmptyInventory = errors.New(ErrMsgEmptyInventory)
	ErrUnknownBooster = errors.New(ErrMsgUnknownBooster)

	// Upgrade errors
	ErrUnknownUpgrade = errors.New(ErrMsgUnknownUpgrade)

	// Persistence errors
	ErrInvalidSnapshot    = errors.New(ErrMsgInvalidSnapshot)
	ErrPersistenceFailure = errors.New(ErrMsgPersistenceFailure)

	// Sync errors
	ErrSyncFailure = errors.New(ErrMsgSyncFailure)
	ErrLocalOnly   = errors.New(ErrMsgLocalOnly)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
