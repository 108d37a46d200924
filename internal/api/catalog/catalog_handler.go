package catalog

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-eje-planner/internal/api"
	"github.com/FACorreiaa/go-eje-planner/internal/types"
)

type HandlerImpl struct {
	service Service
	logger  *slog.Logger
}

func NewHandlerImpl(service Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		service: service,
		logger:  logger,
	}
}

func (h *HandlerImpl) startSpan(r *http.Request, name, route string) (*http.Request, trace.Span) {
	ctx, span := otel.Tracer("CatalogHandler").Start(r.Context(), name, trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String(route),
	))
	return r.WithContext(ctx), span
}

func (h *HandlerImpl) GetItineraries(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "GetItineraries", "/itineraries")
	defer span.End()

	api.WriteJSONResponse(w, r, http.StatusOK, h.service.Itineraries(r.Context()))
}

func (h *HandlerImpl) GetItineraryByDuration(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "GetItineraryByDuration", "/itineraries/{days}")
	defer span.End()

	days, err := strconv.Atoi(chi.URLParam(r, "days"))
	if err != nil || days < 1 {
		api.ErrorResponse(w, r, http.StatusBadRequest, "days must be a positive integer")
		return
	}

	it, err := h.service.ItineraryByDuration(r.Context(), days)
	if err != nil {
		h.writeLookupError(w, r, "GetItineraryByDuration", err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, it)
}

func (h *HandlerImpl) GetPointsOfInterest(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "GetPointsOfInterest", "/pois")
	defer span.End()

	pois, err := h.service.PointsOfInterest(r.Context(), types.POICategory(r.URL.Query().Get("category")))
	if err != nil {
		h.writeLookupError(w, r, "GetPointsOfInterest", err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, pois)
}

func (h *HandlerImpl) GetPOI(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "GetPOI", "/pois/{poiID}")
	defer span.End()

	poi, err := h.service.POIByID(r.Context(), chi.URLParam(r, "poiID"))
	if err != nil {
		h.writeLookupError(w, r, "GetPOI", err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, poi)
}

// GetMarkers returns the marker placement data for the map view.
func (h *HandlerImpl) GetMarkers(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "GetMarkers", "/map/markers")
	defer span.End()

	markers, err := h.service.Markers(r.Context(), types.POICategory(r.URL.Query().Get("category")))
	if err != nil {
		h.writeLookupError(w, r, "GetMarkers", err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, markers)
}

// GetFocus returns the fly-to target for a clicked marker.
func (h *HandlerImpl) GetFocus(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "GetFocus", "/map/focus/{poiID}")
	defer span.End()

	focus, err := h.service.FocusOn(r.Context(), chi.URLParam(r, "poiID"))
	if err != nil {
		h.writeLookupError(w, r, "GetFocus", err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, focus)
}

func (h *HandlerImpl) GetLocations(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "GetLocations", "/locations")
	defer span.End()

	api.WriteJSONResponse(w, r, http.StatusOK, h.service.Locations(r.Context()))
}

func (h *HandlerImpl) GetTravelTimes(w http.ResponseWriter, r *http.Request) {
	r, span := h.startSpan(r, "GetTravelTimes", "/travel-times")
	defer span.End()

	api.WriteJSONResponse(w, r, http.StatusOK, h.service.TravelTimes(r.Context()))
}

func (h *HandlerImpl) writeLookupError(w http.ResponseWriter, r *http.Request, handler string, err error) {
	switch {
	case errors.Is(err, ErrPOINotFound), errors.Is(err, ErrItineraryNotFound):
		api.ErrorResponse(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUnknownCategory):
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "Catalog lookup failed", slog.String("handler", handler), slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Internal Server Error")
	}
}
