package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appMiddleware "github.com/FACorreiaa/go-eje-planner/app/middleware"
)

type decodeTarget struct {
	Days int `json:"days"`
}

func TestDecodeJSONBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"days": 3}`},
		{name: "empty", body: ``, wantErr: "body must not be empty"},
		{name: "unknown field", body: `{"nights": 3}`, wantErr: `body contains unknown key "nights"`},
		{name: "wrong type", body: `{"days": "three"}`, wantErr: `incorrect JSON type for field "days"`},
		{name: "two values", body: `{"days": 3}{"days": 4}`, wantErr: "single JSON value"},
		{name: "malformed", body: `{"days": 3`, wantErr: "badly-formed JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			var dst decodeTarget

			err := DecodeJSONBody(rec, req, &dst)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, 3, dst.Days)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestErrorResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	ErrorResponse(rec, req, http.StatusBadRequest, "bad style")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "bad style", body["error"])
}

func TestSessionID(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		_, ok := SessionID(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(appMiddleware.WithSessionID(req.Context(), "abc"))
		id, ok := SessionID(httptest.NewRecorder(), req)
		assert.True(t, ok)
		assert.Equal(t, "abc", id)
	})
}

func TestVerifyAudience(t *testing.T) {
	assert.True(t, VerifyAudience(jwt.ClaimStrings{"web"}, ""))
	assert.True(t, VerifyAudience(jwt.ClaimStrings{"cli", "web"}, "web"))
	assert.False(t, VerifyAudience(jwt.ClaimStrings{"cli"}, "web"))
	assert.False(t, VerifyAudience(nil, "web"))
}
