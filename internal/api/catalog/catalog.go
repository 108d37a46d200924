// Package catalog serves the static itineraries, points of interest and
// regional reference data. All tables are read-only for the process lifetime.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/FACorreiaa/go-eje-planner/internal/types"
)

var (
	ErrPOINotFound       = errors.New("point of interest not found")
	ErrItineraryNotFound = errors.New("itinerary not found")
	ErrUnknownCategory   = errors.New("unknown point of interest category")
)

func Itineraries() []types.Itinerary {
	out := make([]types.Itinerary, len(itineraries))
	for i, it := range itineraries {
		out[i] = cloneItinerary(it)
	}
	return out
}

func ItineraryByDuration(days int) (types.Itinerary, error) {
	for _, it := range itineraries {
		if it.Duration == days {
			return cloneItinerary(it), nil
		}
	}
	return types.Itinerary{}, fmt.Errorf("%w: %d days", ErrItineraryNotFound, days)
}

func PointsOfInterest() []types.PointOfInterest {
	return slices.Clone(pointsOfInterest)
}

func POIByID(id string) (types.PointOfInterest, error) {
	for _, p := range pointsOfInterest {
		if p.ID == id {
			return p, nil
		}
	}
	return types.PointOfInterest{}, fmt.Errorf("%w: id %q", ErrPOINotFound, id)
}

// POIByName matches names case-insensitively.
func POIByName(name string) (types.PointOfInterest, error) {
	for _, p := range pointsOfInterest {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return types.PointOfInterest{}, fmt.Errorf("%w: name %q", ErrPOINotFound, name)
}

// POIsByCategory filters by category; an empty category returns everything.
func POIsByCategory(category types.POICategory) ([]types.PointOfInterest, error) {
	if category == "" {
		return PointsOfInterest(), nil
	}
	if !IsValidCategory(category) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	var out []types.PointOfInterest
	for _, p := range pointsOfInterest {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func IsValidCategory(category types.POICategory) bool {
	switch category {
	case types.CategoryCity, types.CategoryTown, types.CategoryNature, types.CategoryFarm, types.CategoryPark:
		return true
	}
	return false
}

func Locations() []types.LocationInfo {
	out := make([]types.LocationInfo, len(locations))
	for i, l := range locations {
		l.Activities = slices.Clone(l.Activities)
		out[i] = l
	}
	return out
}

func TravelTimes() []types.TravelTime {
	return slices.Clone(travelTimes)
}

func MarkerColor(category types.POICategory) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return defaultMarkerColor
}

// Marker converts a point of interest into what the map needs to place it.
func Marker(p types.PointOfInterest) types.MapMarker {
	return types.MapMarker{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Lat:      p.Lat,
		Lng:      p.Lng,
		Color:    MarkerColor(p.Category),
	}
}

// Focus is the fly-to target the map uses when a marker is clicked.
func Focus(p types.PointOfInterest) types.MapFocus {
	return types.MapFocus{ID: p.ID, Name: p.Name, Lat: p.Lat, Lng: p.Lng, Zoom: focusZoom}
}

func cloneItinerary(it types.Itinerary) types.Itinerary {
	days := make([]types.DayPlan, len(it.Days))
	for i, d := range it.Days {
		d.Activities = slices.Clone(d.Activities)
		days[i] = d
	}
	it.Days = days
	return it
}
