package budget

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-eje-planner/internal/api"
	"github.com/FACorreiaa/go-eje-planner/internal/api/pricing"
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

// GetStyles lists the travel styles with their cost items.
func (h *HandlerImpl) GetStyles(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("BudgetHandler").Start(r.Context(), "GetStyles", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/budget/styles"),
	))
	defer span.End()

	api.WriteJSONResponse(w, r, http.StatusOK, h.service.Styles(ctx))
}

// EstimateBudget handles POST /budget/estimate with a JSON body.
func (h *HandlerImpl) EstimateBudget(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("BudgetHandler").Start(r.Context(), "EstimateBudget", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/budget/estimate"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "EstimateBudget"))

	var req types.EstimateRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	h.estimate(w, r.WithContext(ctx), l, req)
}

// EstimateBudgetQuery handles GET /budget/estimate?days=&travelers=&style=,
// used by the calculator to recompute on every slider change.
func (h *HandlerImpl) EstimateBudgetQuery(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("BudgetHandler").Start(r.Context(), "EstimateBudgetQuery", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/budget/estimate"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "EstimateBudgetQuery"))
	q := r.URL.Query()

	req := types.EstimateRequest{StyleID: q.Get("style")}
	var err error
	if req.Days, err = intParam(q.Get("days")); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "days must be an integer")
		return
	}
	if req.Travelers, err = intParam(q.Get("travelers")); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "travelers must be an integer")
		return
	}

	h.estimate(w, r.WithContext(ctx), l, req)
}

func (h *HandlerImpl) estimate(w http.ResponseWriter, r *http.Request, l *slog.Logger, req types.EstimateRequest) {
	estimate, err := h.service.EstimateTrip(r.Context(), req)
	if err != nil {
		if errors.Is(err, pricing.ErrUnknownStyle) {
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		l.ErrorContext(r.Context(), "Failed to estimate budget", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to estimate budget")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, estimate)
}

// intParam parses an optional integer query value; empty means zero, which
// the clamping later lifts to the minimum.
func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
