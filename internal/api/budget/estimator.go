package budget

import "github.com/FACorreiaa/go-eje-planner/internal/types"

// travelersPerRoom is the group-sizing policy for per-group daily costs:
// one room (or vehicle) serves up to two travelers.
const travelersPerRoom = 2

// Estimate computes the trip total and per-category breakdown for the given
// style. It is pure: no rounding, no state, same input gives the same output.
// p.Days >= 2 and p.Travelers >= 1 are assumed.
func Estimate(style types.TravelStyle, p types.TripParameters) types.BudgetResult {
	result := types.BudgetResult{
		Breakdown: make([]types.BreakdownEntry, 0, len(style.Costs)),
	}
	for _, item := range style.Costs {
		itemTotal := ItemTotal(item, p.Days, p.Travelers)
		result.Breakdown = append(result.Breakdown, types.BreakdownEntry{
			Category: item.Category,
			Cost:     itemTotal,
		})
		result.Total += itemTotal
	}
	return result
}

// ItemTotal prices a single cost item for the trip.
func ItemTotal(item types.CostItem, days, travelers int) float64 {
	avgCost := (item.CostLow + item.CostHigh) / 2

	if item.Frequency == types.FrequencyOnce {
		if item.PerPerson {
			return avgCost * float64(travelers)
		}
		return avgCost
	}

	if item.PerPerson {
		return avgCost * float64(days) * float64(travelers)
	}
	return avgCost * float64(days) * float64(Rooms(travelers))
}

// Rooms is ceil(travelers/2).
func Rooms(travelers int) int {
	return (travelers + travelersPerRoom - 1) / travelersPerRoom
}

// PerTraveler is the display value total/travelers. travelers must be >= 1.
func PerTraveler(result types.BudgetResult, travelers int) float64 {
	return result.Total / float64(travelers)
}
