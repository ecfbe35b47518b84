package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
)

// mockBoards is a testify mock of the leaderboard service.
type mockBoards struct {
	mock.Mock
}

func (m *mockBoards) Top(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func TestHandleGetLeaderboard_Success(t *testing.T) {
	boards := &mockBoards{}
	boards.On("Top", mock.Anything, 0).Return([]domain.LeaderboardEntry{
		{Rank: 1, UserID: "u1", Username: "alpha", TotalViews: 900},
		{Rank: 2, UserID: "u2", Username: "beta", TotalViews: 500},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
	rec := httptest.NewRecorder()
	HandleGetLeaderboard(boards)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []domain.LeaderboardEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "alpha", resp.Data[0].Username)
}

func TestHandleGetLeaderboard_CustomLimit(t *testing.T) {
	boards := &mockBoards{}
	boards.On("Top", mock.Anything, 5).Return([]domain.LeaderboardEntry{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/leaderboard?limit=5", nil)
	rec := httptest.NewRecorder()
	HandleGetLeaderboard(boards)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	boards.AssertExpectations(t)
}

func TestHandleGetLeaderboard_InvalidLimit(t *testing.T) {
	boards := &mockBoards{}

	req := httptest.NewRequest(http.MethodGet, "/leaderboard?limit=abc", nil)
	rec := httptest.NewRecorder()
	HandleGetLeaderboard(boards)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	boards.AssertNotCalled(t, "Top")
}

func TestHandleGetLeaderboard_LocalOnly(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
	rec := httptest.NewRecorder()
	HandleGetLeaderboard(nil)(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleGetLeaderboard_RepositoryError(t *testing.T) {
	boards := &mockBoards{}
	boards.On("Top", mock.Anything, 0).Return(nil, errors.New("connection reset"))

	req := httptest.NewRequest(http.MethodGet, "/leaderboard", nil)
	rec := httptest.NewRecorder()
	HandleGetLeaderboard(boards)(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
