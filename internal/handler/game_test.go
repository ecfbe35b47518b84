package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hiperworks/HiperClicker_Go/internal/domain"
	"github.com/hiperworks/HiperClicker_Go/internal/progression"
)

func TestHandleTap_Success(t *testing.T) {
	engine := NewMockEngine()
	engine.On("Tap", mock.Anything).Return(progression.TapOutcome{
		Amount:   2.0,
		Critical: false,
		Views:    42.0,
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/tap", nil)
	rec := httptest.NewRecorder()
	HandleTap(engine)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp TapResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2.0, resp.Amount)
	assert.Equal(t, 42.0, resp.Views)
	assert.False(t, resp.Critical)
}

func TestHandleTap_EngineError(t *testing.T) {
	engine := NewMockEngine()
	engine.On("Tap", mock.Anything).Return(progression.TapOutcome{}, errors.New("boom"))

	req := httptest.NewRequest(http.MethodPost, "/tap", nil)
	rec := httptest.NewRecorder()
	HandleTap(engine)(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleGetProgress(t *testing.T) {
	engine := NewMockEngine()
	engine.On("Snapshot").Return(domain.Snapshot{
		Views:        100,
		ClickValue:   2,
		PassiveRate:  0.5,
		TotalTaps:    50,
		CriticalTaps: 3,
	})

	req := httptest.NewRequest(http.MethodGet, "/progress", nil)
	rec := httptest.NewRecorder()
	HandleGetProgress(engine)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ProgressResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 100.0, resp.Views)
	assert.Equal(t, int64(50), resp.TotalTaps)
}

func TestHandleReset(t *testing.T) {
	engine := NewMockEngine()
	engine.On("Reset", mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/reset", nil)
	rec := httptest.NewRecorder()
	HandleReset(engine)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	engine.AssertExpectations(t)
}

func TestHandleSave_Failure(t *testing.T) {
	engine := NewMockEngine()
	engine.On("Save", mock.Anything).Return(domain.ErrPersistenceFailure)

	req := httptest.NewRequest(http.MethodPost, "/save", nil)
	rec := httptest.NewRecorder()
	HandleSave(engine)(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
