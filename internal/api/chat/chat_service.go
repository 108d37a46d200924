package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-eje-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-eje-planner/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service is the planner's chat assistant. SendMessage always produces a
// reply; failures turn into a fallback text rather than an error.
type Service interface {
	SendMessage(ctx context.Context, sessionID, text string) types.ChatMessage
	History(ctx context.Context, sessionID string) types.ChatHistory
}

type ServiceImpl struct {
	logger    *slog.Logger
	generator Generator
	histories *HistoryStore
	timeout   time.Duration
	metrics   *metrics.AppMetrics
}

// NewServiceImpl builds the chat service. A nil generator means no API key
// was configured; every send then answers with MissingKeyReply.
func NewServiceImpl(generator Generator, histories *HistoryStore, timeout time.Duration, m *metrics.AppMetrics, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		generator: generator,
		histories: histories,
		timeout:   timeout,
		metrics:   m,
	}
}

func (s *ServiceImpl) SendMessage(ctx context.Context, sessionID, text string) types.ChatMessage {
	ctx, span := otel.Tracer("ChatService").Start(ctx, "SendMessage", trace.WithAttributes(
		attribute.Int("message.length", len(text)),
	))
	defer span.End()

	l := s.logger.With(slog.String("session", sessionID))
	history := s.histories.GetOrCreate(sessionID)
	question := history.AddUser(text)
	s.metrics.ChatRequestsTotal.Add(ctx, 1)

	reply, outcome := s.ask(ctx, text)
	if outcome != "ok" {
		s.metrics.ChatFailuresTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", outcome)))
		span.SetStatus(codes.Error, outcome)
		l.WarnContext(ctx, "Assistant answered with fallback", slog.String("reason", outcome), slog.Int64("seq", question.Seq))
	}

	answer := history.AddReply(reply, question.Seq)
	span.SetAttributes(attribute.Int64("chat.seq", question.Seq), attribute.String("chat.outcome", outcome))
	return answer
}

// ask calls the generator and maps every failure to its user-facing text.
// The second result names the outcome for logs and metrics.
func (s *ServiceImpl) ask(ctx context.Context, text string) (string, string) {
	if s.generator == nil {
		return MissingKeyReply, "missing_key"
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	reply, err := s.generator.Generate(ctx, BriefingContext, text)
	s.metrics.ChatDurationSeconds.Record(ctx, time.Since(start).Seconds())

	switch {
	case errors.Is(err, ErrMissingAPIKey):
		return MissingKeyReply, "missing_key"
	case err != nil:
		s.logger.ErrorContext(ctx, "Error calling Gemini", slog.Any("error", err))
		return FailureReply, "error"
	case strings.TrimSpace(reply) == "":
		return EmptyReply, "empty"
	}
	return reply, "ok"
}

func (s *ServiceImpl) History(ctx context.Context, sessionID string) types.ChatHistory {
	_, span := otel.Tracer("ChatService").Start(ctx, "History")
	defer span.End()
	return s.histories.GetOrCreate(sessionID).Snapshot()
}
