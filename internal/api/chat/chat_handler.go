package chat

import (
	"log/slog"
	"net/http"
	"strings"

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

// SendMessage forwards the user's question to the assistant and returns the
// reply. Assistant failures still answer 200 with a fallback text.
func (h *HandlerImpl) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ChatHandler").Start(r.Context(), "SendMessage", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/chat/messages"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "SendMessage"))

	sessionID, ok := api.SessionID(w, r)
	if !ok {
		return
	}

	var req types.SendMessageRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	text := strings.TrimSpace(req.Message)
	if text == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Message must not be empty")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, h.service.SendMessage(ctx, sessionID, text))
}

func (h *HandlerImpl) GetMessages(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ChatHandler").Start(r.Context(), "GetMessages", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/chat/messages"),
	))
	defer span.End()

	sessionID, ok := api.SessionID(w, r)
	if !ok {
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, h.service.History(ctx, sessionID))
}
