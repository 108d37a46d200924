package catalog

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-eje-planner/internal/types"
)

func setupCatalogRouter() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandlerImpl(NewServiceImpl(logger), logger)

	r := chi.NewRouter()
	r.Get("/itineraries", h.GetItineraries)
	r.Get("/itineraries/{days}", h.GetItineraryByDuration)
	r.Get("/pois", h.GetPointsOfInterest)
	r.Get("/pois/{poiID}", h.GetPOI)
	r.Get("/map/markers", h.GetMarkers)
	r.Get("/map/focus/{poiID}", h.GetFocus)
	r.Get("/locations", h.GetLocations)
	r.Get("/travel-times", h.GetTravelTimes)
	return r
}

func TestCatalogHandler_Statuses(t *testing.T) {
	router := setupCatalogRouter()

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/itineraries", http.StatusOK},
		{"/itineraries/3", http.StatusOK},
		{"/itineraries/9", http.StatusNotFound},
		{"/itineraries/abc", http.StatusBadRequest},
		{"/pois", http.StatusOK},
		{"/pois?category=nature", http.StatusOK},
		{"/pois?category=beach", http.StatusBadRequest},
		{"/pois/8", http.StatusOK},
		{"/pois/404", http.StatusNotFound},
		{"/map/markers", http.StatusOK},
		{"/map/focus/5", http.StatusOK},
		{"/map/focus/nope", http.StatusNotFound},
		{"/locations", http.StatusOK},
		{"/travel-times", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCatalogHandler_MarkersByCategory(t *testing.T) {
	router := setupCatalogRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/map/markers?category=park", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var markers []types.MapMarker
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &markers))
	require.Len(t, markers, 2)
	for _, m := range markers {
		assert.Equal(t, types.CategoryPark, m.Category)
		assert.Equal(t, "#9333ea", m.Color)
	}
}

func TestCatalogHandler_Focus(t *testing.T) {
	router := setupCatalogRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/map/focus/13", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var focus types.MapFocus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &focus))
	assert.Equal(t, "Nevado del Ruiz", focus.Name)
	assert.Equal(t, 13, focus.Zoom)
}
