package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest = "Invalid request body"

	// Query parameter error messages
	ErrMsgInvalidLimit = "Invalid limit parameter"

	// Engine operation error messages
	ErrMsgTapFailed            = "Failed to register tap"
	ErrMsgInsufficientViews    = "Not enough views"
	ErrMsgUnknownUpgradeKind   = "Unknown upgrade"
	ErrMsgUnknownBoosterKind   = "Unknown booster"
	ErrMsgNoBoosterInInventory = "No booster of that kind in inventory"
	ErrMsgPurchaseFailed       = "Failed to complete purchase"
	ErrMsgActivationFailed     = "Failed to activate booster"
	ErrMsgRewardFailed         = "Failed to apply reward"
	ErrMsgResetFailed          = "Failed to reset progress"
	ErrMsgSaveFailed           = "Failed to save progress"

	// Sync error messages
	ErrMsgSyncUnavailable      = "Remote sync is not configured"
	ErrMsgSyncPushFailed       = "Failed to push progress to remote store"
	ErrMsgSyncPullFailed       = "Failed to pull progress from remote store"
	ErrMsgGetLeaderboardFailed = "Failed to retrieve leaderboard"
)

// Success messages for API responses
const (
	MsgProgressResetSuccess = "Progress reset successfully"
	MsgProgressSavedSuccess = "Progress saved successfully"
	MsgSyncPushedSuccess    = "Progress pushed to remote store"
	MsgSyncPulledSuccess    = "Remote progress restored"
	MsgNoAdFill             = "No ad available right now"
)
