package catalog

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-eje-planner/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service exposes the read-only catalogs to handlers and to the selection service.
type Service interface {
	Itineraries(ctx context.Context) []types.Itinerary
	ItineraryByDuration(ctx context.Context, days int) (*types.Itinerary, error)
	PointsOfInterest(ctx context.Context, category types.POICategory) ([]types.PointOfInterest, error)
	POIByID(ctx context.Context, id string) (*types.PointOfInterest, error)
	Markers(ctx context.Context, category types.POICategory) ([]types.MapMarker, error)
	FocusOn(ctx context.Context, id string) (*types.MapFocus, error)
	Locations(ctx context.Context) []types.LocationInfo
	TravelTimes(ctx context.Context) []types.TravelTime
}

type ServiceImpl struct {
	logger *slog.Logger
}

func NewServiceImpl(logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger}
}

func (s *ServiceImpl) Itineraries(ctx context.Context) []types.Itinerary {
	_, span := otel.Tracer("CatalogService").Start(ctx, "Itineraries")
	defer span.End()
	return Itineraries()
}

func (s *ServiceImpl) ItineraryByDuration(ctx context.Context, days int) (*types.Itinerary, error) {
	ctx, span := otel.Tracer("CatalogService").Start(ctx, "ItineraryByDuration", trace.WithAttributes(
		attribute.Int("itinerary.days", days),
	))
	defer span.End()

	it, err := ItineraryByDuration(days)
	if err != nil {
		s.logger.DebugContext(ctx, "Itinerary not found", slog.Int("days", days))
		span.RecordError(err)
		span.SetStatus(codes.Error, "not found")
		return nil, err
	}
	return &it, nil
}

func (s *ServiceImpl) PointsOfInterest(ctx context.Context, category types.POICategory) ([]types.PointOfInterest, error) {
	_, span := otel.Tracer("CatalogService").Start(ctx, "PointsOfInterest", trace.WithAttributes(
		attribute.String("poi.category", string(category)),
	))
	defer span.End()

	pois, err := POIsByCategory(category)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("poi.count", len(pois)))
	return pois, nil
}

func (s *ServiceImpl) POIByID(ctx context.Context, id string) (*types.PointOfInterest, error) {
	_, span := otel.Tracer("CatalogService").Start(ctx, "POIByID", trace.WithAttributes(
		attribute.String("poi.id", id),
	))
	defer span.End()

	p, err := POIByID(id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &p, nil
}

func (s *ServiceImpl) Markers(ctx context.Context, category types.POICategory) ([]types.MapMarker, error) {
	ctx, span := otel.Tracer("CatalogService").Start(ctx, "Markers")
	defer span.End()

	pois, err := s.PointsOfInterest(ctx, category)
	if err != nil {
		return nil, err
	}
	markers := make([]types.MapMarker, len(pois))
	for i, p := range pois {
		markers[i] = Marker(p)
	}
	return markers, nil
}

func (s *ServiceImpl) FocusOn(ctx context.Context, id string) (*types.MapFocus, error) {
	p, err := s.POIByID(ctx, id)
	if err != nil {
		return nil, err
	}
	f := Focus(*p)
	return &f, nil
}

func (s *ServiceImpl) Locations(ctx context.Context) []types.LocationInfo {
	_, span := otel.Tracer("CatalogService").Start(ctx, "Locations")
	defer span.End()
	return Locations()
}

func (s *ServiceImpl) TravelTimes(ctx context.Context) []types.TravelTime {
	_, span := otel.Tracer("CatalogService").Start(ctx, "TravelTimes")
	defer span.End()
	return TravelTimes()
}
