package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
	"github.com/hiperworks/HiperClicker_Go/internal/progression"
)

// MockEngine is a testify mock of the progression engine.
type MockEngine struct {
	mock.Mock
}

func NewMockEngine() *MockEngine {
	return &MockEngine{}
}

func (m *MockEngine) Tap(ctx context.Context) (progression.TapOutcome, error) {
	args := m.Called(ctx)
	return args.Get(0).(progression.TapOutcome), args.Error(1)
}

func (m *MockEngine) BuyUpgrade(ctx context.Context, kind domain.UpgradeKind) (domain.UpgradeState, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(domain.UpgradeState), args.Error(1)
}

func (m *MockEngine) BuyBooster(ctx context.Context, kind domain.BoosterKind) (int, error) {
	args := m.Called(ctx, kind)
	return args.Int(0), args.Error(1)
}

func (m *MockEngine) ActivateBooster(ctx context.Context, kind domain.BoosterKind) (domain.ActiveBooster, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(domain.ActiveBooster), args.Error(1)
}

func (m *MockEngine) ApplyReward(ctx context.Context, outcome domain.RewardOutcome) error {
	args := m.Called(ctx, outcome)
	return args.Error(0)
}

func (m *MockEngine) AccruePassive(ctx context.Context, elapsed time.Duration) float64 {
	args := m.Called(ctx, elapsed)
	return args.Get(0).(float64)
}

func (m *MockEngine) SweepBoosters(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

func (m *MockEngine) ReconcileOffline(ctx context.Context) (progression.OfflineCredit, error) {
	args := m.Called(ctx)
	return args.Get(0).(progression.OfflineCredit), args.Error(1)
}

func (m *MockEngine) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEngine) Snapshot() domain.Snapshot {
	args := m.Called()
	return args.Get(0).(domain.Snapshot)
}

func (m *MockEngine) Summary() domain.ProgressSummary {
	args := m.Called()
	return args.Get(0).(domain.ProgressSummary)
}

func (m *MockEngine) Save(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEngine) PushRemote(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEngine) PullRemote(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEngine) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// stubAds is a fixed-answer reward service for handler tests.
type stubAds struct {
	outcome      domain.RewardOutcome
	interstitial bool
}

func (s *stubAds) WatchRewarded(ctx context.Context) domain.RewardOutcome {
	return s.outcome
}

func (s *stubAds) RecordAction(ctx context.Context) bool {
	return s.interstitial
}
