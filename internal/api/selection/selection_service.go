package selection

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
	"github.com/FACorreiaa/go-eje-planner/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// POILookup resolves a point of interest id coming from the map view.
type POILookup interface {
	POIByID(ctx context.Context, id string) (*types.PointOfInterest, error)
}

// Service manages the per-session "Mi Ruta" selection.
type Service interface {
	Get(ctx context.Context, sessionID string) types.SelectionView
	Add(ctx context.Context, sessionID, poiID string) (types.SelectionView, bool, error)
	Remove(ctx context.Context, sessionID, name string) (types.SelectionView, bool)
	Contains(ctx context.Context, sessionID, name string) bool
}

type ServiceImpl struct {
	logger  *slog.Logger
	store   *Store
	pois    POILookup
	metrics *metrics.AppMetrics
}

func NewServiceImpl(store *Store, pois POILookup, m *metrics.AppMetrics, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:  logger,
		store:   store,
		pois:    pois,
		metrics: m,
	}
}

func (s *ServiceImpl) Get(ctx context.Context, sessionID string) types.SelectionView {
	_, span := otel.Tracer("SelectionService").Start(ctx, "Get")
	defer span.End()

	sel, ok := s.store.Get(sessionID)
	if !ok {
		return types.SelectionView{Places: []string{}}
	}
	return sel.View()
}

// Add puts the place with poiID on the session route. The bool reports
// whether it was newly added.
func (s *ServiceImpl) Add(ctx context.Context, sessionID, poiID string) (types.SelectionView, bool, error) {
	ctx, span := otel.Tracer("SelectionService").Start(ctx, "Add", trace.WithAttributes(
		attribute.String("poi.id", poiID),
	))
	defer span.End()

	poi, err := s.pois.POIByID(ctx, poiID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "poi lookup failed")
		return types.SelectionView{}, false, fmt.Errorf("failed to add place to route: %w", err)
	}

	sel := s.store.GetOrCreate(sessionID)
	added := sel.Add(*poi)
	if added {
		s.metrics.SelectionChangesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("op", "add")))
		s.logger.InfoContext(ctx, "Place added to route", slog.String("session", sessionID), slog.String("place", poi.Name))
	} else {
		s.logger.DebugContext(ctx, "Place already on route", slog.String("session", sessionID), slog.String("place", poi.Name))
	}

	span.SetAttributes(attribute.Bool("selection.added", added), attribute.Int("selection.count", sel.Len()))
	return sel.View(), added, nil
}

// Remove takes name off the session route. Removing an absent name is not an error.
func (s *ServiceImpl) Remove(ctx context.Context, sessionID, name string) (types.SelectionView, bool) {
	ctx, span := otel.Tracer("SelectionService").Start(ctx, "Remove", trace.WithAttributes(
		attribute.String("place", name),
	))
	defer span.End()

	sel, ok := s.store.Get(sessionID)
	if !ok {
		return types.SelectionView{Places: []string{}}, false
	}

	removed := sel.Remove(name)
	if removed {
		s.metrics.SelectionChangesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("op", "remove")))
		s.logger.InfoContext(ctx, "Place removed from route", slog.String("session", sessionID), slog.String("place", name))
	}
	return sel.View(), removed
}

func (s *ServiceImpl) Contains(ctx context.Context, sessionID, name string) bool {
	_, span := otel.Tracer("SelectionService").Start(ctx, "Contains")
	defer span.End()

	sel, ok := s.store.Get(sessionID)
	return ok && sel.Contains(name)
}
