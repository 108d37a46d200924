package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	appMiddleware "github.com/FACorreiaa/go-eje-planner/app/middleware"
	"github.com/FACorreiaa/go-eje-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-eje-planner/internal/api/budget"
	"github.com/FACorreiaa/go-eje-planner/internal/api/catalog"
	"github.com/FACorreiaa/go-eje-planner/internal/api/chat"
	"github.com/FACorreiaa/go-eje-planner/internal/api/selection"
	"github.com/FACorreiaa/go-eje-planner/internal/api/session"
	"github.com/FACorreiaa/go-eje-planner/internal/types"
)

func setupTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m, err := metrics.New(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	formatter, err := budget.NewFormatter("es-CO", "COP")
	require.NoError(t, err)

	sessions := session.NewServiceImpl(session.Config{
		Secret:   []byte("router-test"),
		Issuer:   "eje-planner",
		Audience: "eje-planner-web",
		TokenTTL: time.Hour,
	}, logger)
	catalogService := catalog.NewServiceImpl(logger)
	selectionService := selection.NewServiceImpl(selection.NewStore(time.Hour, time.Hour), catalogService, m, logger)
	chatService := chat.NewServiceImpl(nil, chat.NewHistoryStore(time.Hour), time.Second, m, logger)

	return SetupRouter(&Config{
		SessionHandler:         session.NewHandlerImpl(sessions, logger),
		BudgetHandler:          budget.NewHandlerImpl(budget.NewServiceImpl(budget.DefaultLimits(), formatter, m, logger), logger),
		CatalogHandler:         catalog.NewHandlerImpl(catalogService, logger),
		SelectionHandler:       selection.NewHandlerImpl(selectionService, logger),
		ChatHandler:            chat.NewHandlerImpl(chatService, logger),
		AuthenticateMiddleware: appMiddleware.Authenticate(sessions),
	})
}

func do(t *testing.T, h http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRouter_PublicRoutes(t *testing.T) {
	h := setupTestRouter(t)

	tests := []struct {
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{http.MethodGet, "/ping", "", http.StatusOK},
		{http.MethodGet, "/api/v1/budget/styles", "", http.StatusOK},
		{http.MethodPost, "/api/v1/budget/estimate", `{"days":3,"travelers":2,"style_id":"mid"}`, http.StatusOK},
		{http.MethodGet, "/api/v1/budget/estimate?days=3&travelers=2&style=mid", "", http.StatusOK},
		{http.MethodGet, "/api/v1/itineraries", "", http.StatusOK},
		{http.MethodGet, "/api/v1/itineraries/5", "", http.StatusOK},
		{http.MethodGet, "/api/v1/pois?category=town", "", http.StatusOK},
		{http.MethodGet, "/api/v1/pois/4", "", http.StatusOK},
		{http.MethodGet, "/api/v1/map/markers", "", http.StatusOK},
		{http.MethodGet, "/api/v1/map/focus/5", "", http.StatusOK},
		{http.MethodGet, "/api/v1/locations", "", http.StatusOK},
		{http.MethodGet, "/api/v1/travel-times", "", http.StatusOK},
		{http.MethodPost, "/api/v1/sessions", "", http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := do(t, h, tt.method, tt.path, tt.body, "")
			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
		})
	}
}

func TestRouter_SessionRoutesRequireToken(t *testing.T) {
	h := setupTestRouter(t)

	for _, path := range []string{"/api/v1/selection", "/api/v1/chat/messages"} {
		rr := do(t, h, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, path)

		rr = do(t, h, http.MethodGet, path, "", "forged")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, path)
	}
}

func TestRouter_SessionFlow(t *testing.T) {
	h := setupTestRouter(t)

	rr := do(t, h, http.MethodPost, "/api/v1/sessions", "", "")
	require.Equal(t, http.StatusCreated, rr.Code)
	var tok types.SessionToken
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tok))

	rr = do(t, h, http.MethodPost, "/api/v1/selection", `{"poi_id":"4"}`, tok.Token)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = do(t, h, http.MethodGet, "/api/v1/selection/contains/Salento", "", tok.Token)
	require.Equal(t, http.StatusOK, rr.Code)
	var contains types.SelectionContains
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &contains))
	assert.True(t, contains.Contains)

	rr = do(t, h, http.MethodPost, "/api/v1/chat/messages", `{"message":"hola"}`, tok.Token)
	require.Equal(t, http.StatusOK, rr.Code)
	var reply types.ChatMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &reply))
	assert.Equal(t, chat.MissingKeyReply, reply.Text)

	// A second session does not see the first one's route.
	rr = do(t, h, http.MethodPost, "/api/v1/sessions", "", "")
	require.Equal(t, http.StatusCreated, rr.Code)
	var other types.SessionToken
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &other))

	rr = do(t, h, http.MethodGet, "/api/v1/selection", "", other.Token)
	require.Equal(t, http.StatusOK, rr.Code)
	var view types.SelectionView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Equal(t, 0, view.Count)
}
