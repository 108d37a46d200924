package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-eje-planner/internal/types"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Issue(ctx context.Context) (*types.SessionToken, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SessionToken), args.Error(1)
}

func (m *MockSessionService) ParseToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func TestHandlerImpl_CreateSession(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(MockSessionService)
		h := NewHandlerImpl(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
		exp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		svc.On("Issue", mock.Anything).Return(&types.SessionToken{Token: "tok", SessionID: "s1", ExpiresAt: exp}, nil).Once()

		rr := httptest.NewRecorder()
		h.CreateSession(rr, httptest.NewRequest(http.MethodPost, "/sessions", nil))

		require.Equal(t, http.StatusCreated, rr.Code)
		var got types.SessionToken
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "tok", got.Token)
		assert.Equal(t, "s1", got.SessionID)
		assert.True(t, exp.Equal(got.ExpiresAt))
		svc.AssertExpectations(t)
	})

	t.Run("signing failure", func(t *testing.T) {
		svc := new(MockSessionService)
		h := NewHandlerImpl(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
		svc.On("Issue", mock.Anything).Return(nil, errors.New("boom")).Once()

		rr := httptest.NewRecorder()
		h.CreateSession(rr, httptest.NewRequest(http.MethodPost, "/sessions", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
