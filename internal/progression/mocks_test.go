package progression

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
)

// MockBridge is a testify mock of the remote sync bridge.
type MockBridge struct {
	mock.Mock
}

func NewMockBridge() *MockBridge {
	return &MockBridge{}
}

func (m *MockBridge) PushProgress(ctx context.Context, userID string, p domain.ProgressSummary) error {
	args := m.Called(ctx, userID, p)
	return args.Error(0)
}

func (m *MockBridge) PushUpgrades(ctx context.Context, userID string, levels map[domain.UpgradeKind]int) error {
	args := m.Called(ctx, userID, levels)
	return args.Error(0)
}

func (m *MockBridge) PushBoosterInventory(ctx context.Context, userID string, counts map[domain.BoosterKind]int) error {
	args := m.Called(ctx, userID, counts)
	return args.Error(0)
}

func (m *MockBridge) PushProfile(ctx context.Context, userID, username string, totalViews float64) error {
	args := m.Called(ctx, userID, username, totalViews)
	return args.Error(0)
}

func (m *MockBridge) PullProgress(ctx context.Context, userID string) (*domain.ProgressSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProgressSummary), args.Error(1)
}

func (m *MockBridge) PullUpgrades(ctx context.Context, userID string) (map[domain.UpgradeKind]int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.UpgradeKind]int), args.Error(1)
}

func (m *MockBridge) PullBoosterInventory(ctx context.Context, userID string) (map[domain.BoosterKind]int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.BoosterKind]int), args.Error(1)
}

// fixedIdentity is a stub identity provider for tests.
type fixedIdentity struct {
	id   string
	name string
}

func (f fixedIdentity) UserID() (string, bool) { return f.id, f.id != "" }
func (f fixedIdentity) Username() string       { return f.name }
