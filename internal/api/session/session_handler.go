package session

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-eje-planner/internal/api"
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

// CreateSession starts an anonymous planner session.
func (h *HandlerImpl) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SessionHandler").Start(r.Context(), "CreateSession", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/sessions"),
	))
	defer span.End()

	token, err := h.service.Issue(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to issue session", slog.String("handler", "CreateSession"), slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to create session")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusCreated, token)
}
