package budget

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-eje-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-eje-planner/internal/api/pricing"
	"github.com/FACorreiaa/go-eje-planner/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service defines the budget planning operations exposed over HTTP.
type Service interface {
	Styles(ctx context.Context) []types.TravelStyle
	EstimateTrip(ctx context.Context, req types.EstimateRequest) (*types.BudgetEstimate, error)
}

type ServiceImpl struct {
	logger    *slog.Logger
	limits    Limits
	formatter *Formatter
	metrics   *metrics.AppMetrics
}

func NewServiceImpl(limits Limits, formatter *Formatter, m *metrics.AppMetrics, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		limits:    limits,
		formatter: formatter,
		metrics:   m,
	}
}

func (s *ServiceImpl) Styles(ctx context.Context) []types.TravelStyle {
	_, span := otel.Tracer("BudgetService").Start(ctx, "Styles")
	defer span.End()
	return pricing.Styles()
}

// EstimateTrip clamps the request, runs the estimator and attaches display values.
func (s *ServiceImpl) EstimateTrip(ctx context.Context, req types.EstimateRequest) (*types.BudgetEstimate, error) {
	ctx, span := otel.Tracer("BudgetService").Start(ctx, "EstimateTrip", trace.WithAttributes(
		attribute.Int("request.days", req.Days),
		attribute.Int("request.travelers", req.Travelers),
		attribute.String("request.style", req.StyleID),
	))
	defer span.End()

	params, err := Normalize(req, s.limits)
	if err != nil {
		s.logger.WarnContext(ctx, "Rejected budget request", slog.String("style", req.StyleID), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid parameters")
		return nil, fmt.Errorf("invalid trip parameters: %w", err)
	}

	// Normalize only lets catalog ids through.
	style := pricing.MustStyle(params.StyleID)
	result := Estimate(style, params)
	perTraveler := PerTraveler(result, params.Travelers)

	breakdown := make([]string, len(result.Breakdown))
	for i, entry := range result.Breakdown {
		breakdown[i] = s.formatter.Format(entry.Cost)
	}

	styleAttr := metric.WithAttributes(attribute.String("style", string(params.StyleID)))
	s.metrics.BudgetEstimatesTotal.Add(ctx, 1, styleAttr)
	s.metrics.BudgetEstimateCOP.Record(ctx, result.Total, styleAttr)

	s.logger.DebugContext(ctx, "Budget estimated",
		slog.Int("days", params.Days),
		slog.Int("travelers", params.Travelers),
		slog.String("style", string(params.StyleID)),
		slog.Float64("total", result.Total),
	)
	span.SetAttributes(attribute.Float64("estimate.total", result.Total))
	span.SetStatus(codes.Ok, "estimated")

	return &types.BudgetEstimate{
		Parameters:           params,
		Style:                style,
		Result:               result,
		PerTraveler:          perTraveler,
		TotalFormatted:       s.formatter.Format(result.Total),
		PerTravelerFormatted: s.formatter.Format(perTraveler),
		BreakdownFormatted:   breakdown,
		Currency:             s.formatter.Currency(),
	}, nil
}
