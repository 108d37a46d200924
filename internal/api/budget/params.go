package budget

import (
	"github.com/FACorreiaa/go-eje-planner/internal/api/pricing"
	"github.com/FACorreiaa/go-eje-planner/internal/types"
)

// Limits are the input bounds applied before a request reaches the estimator.
type Limits struct {
	MinDays      int
	MaxDays      int
	MaxTravelers int
	DefaultStyle types.StyleID
}

func DefaultLimits() Limits {
	return Limits{
		MinDays:      2,
		MaxDays:      15,
		MaxTravelers: 10,
		DefaultStyle: types.DefaultStyle,
	}
}

// Normalize clamps days and travelers into range and resolves the style.
// An empty style falls back to the default; an unknown one is an error.
func Normalize(req types.EstimateRequest, limits Limits) (types.TripParameters, error) {
	styleID := types.StyleID(req.StyleID)
	if styleID == "" {
		styleID = limits.DefaultStyle
	}
	if _, err := pricing.Lookup(styleID); err != nil {
		return types.TripParameters{}, err
	}

	return types.TripParameters{
		Days:      clamp(req.Days, limits.MinDays, limits.MaxDays),
		Travelers: clamp(req.Travelers, 1, limits.MaxTravelers),
		StyleID:   styleID,
	}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if hi > 0 && v > hi {
		return hi
	}
	return v
}
