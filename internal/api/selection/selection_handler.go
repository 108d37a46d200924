package selection

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-eje-planner/internal/api"
	"github.com/FACorreiaa/go-eje-planner/internal/api/catalog"
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

func (h *HandlerImpl) GetSelection(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SelectionHandler").Start(r.Context(), "GetSelection", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/selection"),
	))
	defer span.End()

	sessionID, ok := api.SessionID(w, r)
	if !ok {
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, h.service.Get(ctx, sessionID))
}

// AddToSelection is the map view's "add to my route" action.
func (h *HandlerImpl) AddToSelection(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SelectionHandler").Start(r.Context(), "AddToSelection", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/selection"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "AddToSelection"))

	sessionID, ok := api.SessionID(w, r)
	if !ok {
		return
	}

	var req types.AddToSelectionRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.POIID == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "POI ID is required")
		return
	}

	view, added, err := h.service.Add(ctx, sessionID, req.POIID)
	if err != nil {
		if errors.Is(err, catalog.ErrPOINotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Point of interest not found")
			return
		}
		l.ErrorContext(ctx, "Failed to add place", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to add place to route")
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	api.WriteJSONResponse(w, r, status, view)
}

func (h *HandlerImpl) RemoveFromSelection(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SelectionHandler").Start(r.Context(), "RemoveFromSelection", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/selection/{name}"),
	))
	defer span.End()

	sessionID, ok := api.SessionID(w, r)
	if !ok {
		return
	}

	view, _ := h.service.Remove(ctx, sessionID, chi.URLParam(r, "name"))
	api.WriteJSONResponse(w, r, http.StatusOK, view)
}

func (h *HandlerImpl) ContainsPlace(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SelectionHandler").Start(r.Context(), "ContainsPlace", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/selection/contains/{name}"),
	))
	defer span.End()

	sessionID, ok := api.SessionID(w, r)
	if !ok {
		return
	}

	name := chi.URLParam(r, "name")
	api.WriteJSONResponse(w, r, http.StatusOK, types.SelectionContains{
		Name:     name,
		Contains: h.service.Contains(ctx, sessionID, name),
	})
}
