package types

// Frequency says whether a cost recurs every day of the trip or is paid once.
type Frequency string

const (
	FrequencyDaily Frequency = "daily"
	FrequencyOnce  Frequency = "once"
)

// StyleID identifies a travel style. The set is closed.
type StyleID string

const (
	StyleBudget StyleID = "budget"
	StyleMid    StyleID = "mid"
	StyleLuxury StyleID = "luxury"
)

const DefaultStyle = StyleMid

// CostItem is one priced component of a travel style.
type CostItem struct {
	Category  string    `json:"category"`
	CostLow   float64   `json:"cost_low"`
	CostHigh  float64   `json:"cost_high"`
	PerPerson bool      `json:"per_person"` // false means per group (room, car)
	Frequency Frequency `json:"frequency"`
}

// TravelStyle is a named pricing tier.
type TravelStyle struct {
	ID          StyleID    `json:"id"`
	Label       string     `json:"label"`
	Description string     `json:"description"`
	Costs       []CostItem `json:"costs"`
}

// TripParameters is the estimator input. Days >= 2 and Travelers >= 1
// are guaranteed by the caller.
type TripParameters struct {
	Days      int     `json:"days"`
	Travelers int     `json:"travelers"`
	StyleID   StyleID `json:"style_id"`
}

type BreakdownEntry struct {
	Category string  `json:"category"`
	Cost     float64 `json:"cost"`
}

// BudgetResult is the estimator output. Total is the exact, unrounded sum.
type BudgetResult struct {
	Total     float64          `json:"total"`
	Breakdown []BreakdownEntry `json:"breakdown"`
}

// EstimateRequest is the raw request body before boundary clamping.
type EstimateRequest struct {
	Days      int    `json:"days"`
	Travelers int    `json:"travelers"`
	StyleID   string `json:"style_id"`
}

// BudgetEstimate is what the budget endpoint returns: the raw result plus
// display values.
type BudgetEstimate struct {
	Parameters           TripParameters `json:"parameters"`
	Style                TravelStyle    `json:"style"`
	Result               BudgetResult   `json:"result"`
	PerTraveler          float64        `json:"per_traveler"`
	TotalFormatted       string         `json:"total_formatted"`
	PerTravelerFormatted string         `json:"per_traveler_formatted"`
	BreakdownFormatted   []string       `json:"breakdown_formatted"`
	Currency             string         `json:"currency"`
}
