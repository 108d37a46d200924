package chat

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appMiddleware "github.com/FACorreiaa/go-eje-planner/app/middleware"
	"github.com/FACorreiaa/go-eje-planner/internal/types"
)

type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) SendMessage(ctx context.Context, sessionID, text string) types.ChatMessage {
	args := m.Called(ctx, sessionID, text)
	return args.Get(0).(types.ChatMessage)
}

func (m *MockChatService) History(ctx context.Context, sessionID string) types.ChatHistory {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(types.ChatHistory)
}

func setupChatHandlerTest() (*HandlerImpl, *MockChatService) {
	svc := new(MockChatService)
	return NewHandlerImpl(svc, slog.New(slog.NewTextHandler(io.Discard, nil))), svc
}

func withSession(req *http.Request) *http.Request {
	return req.WithContext(appMiddleware.WithSessionID(context.Background(), "s1"))
}

func TestHandlerImpl_SendMessage(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		session    bool
		setupMock  func(m *MockChatService)
		wantStatus int
	}{
		{
			name:    "success",
			body:    `{"message":"  ¿Dónde dormir?  "}`,
			session: true,
			setupMock: func(m *MockChatService) {
				m.On("SendMessage", mock.Anything, "s1", "¿Dónde dormir?").
					Return(types.ChatMessage{Seq: 3, ReplyTo: 2, Role: types.RoleModel, Text: "En Armenia."}).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "blank message",
			body:       `{"message":"   "}`,
			session:    true,
			setupMock:  func(m *MockChatService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid json",
			body:       `{"message":`,
			session:    true,
			setupMock:  func(m *MockChatService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "no session",
			body:       `{"message":"hola"}`,
			setupMock:  func(m *MockChatService) {},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := setupChatHandlerTest()
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/chat/messages", strings.NewReader(tt.body))
			if tt.session {
				req = withSession(req)
			}
			rr := httptest.NewRecorder()
			h.SendMessage(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				var msg types.ChatMessage
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &msg))
				assert.Equal(t, "En Armenia.", msg.Text)
				assert.Equal(t, int64(2), msg.ReplyTo)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandlerImpl_GetMessages(t *testing.T) {
	h, svc := setupChatHandlerTest()
	svc.On("History", mock.Anything, "s1").Return(types.ChatHistory{
		Messages: []types.ChatMessage{{Seq: 1, Role: types.RoleModel, Text: WelcomeMessage}},
	}).Once()

	rr := httptest.NewRecorder()
	h.GetMessages(rr, withSession(httptest.NewRequest(http.MethodGet, "/chat/messages", nil)))

	require.Equal(t, http.StatusOK, rr.Code)
	var history types.ChatHistory
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &history))
	require.Len(t, history.Messages, 1)
	assert.Equal(t, WelcomeMessage, history.Messages[0].Text)
	svc.AssertExpectations(t)
}
