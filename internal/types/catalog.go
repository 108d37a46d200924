package types

// POICategory is one of the fixed point-of-interest categories.
type POICategory string

const (
	CategoryCity   POICategory = "city"
	CategoryTown   POICategory = "town"
	CategoryNature POICategory = "nature"
	CategoryFarm   POICategory = "farm"
	CategoryPark   POICategory = "park"
)

// PointOfInterest is a geolocated attraction shown on the map.
type PointOfInterest struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    POICategory `json:"category"`
	Lat         float64     `json:"lat"`
	Lng         float64     `json:"lng"`
	Description string      `json:"description"`
	Contact     string      `json:"contact,omitempty"`
}

type DayPlan struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Activities []string `json:"activities"`
}

// Itinerary is a suggested multi-day plan.
type Itinerary struct {
	Duration    int       `json:"duration"` // days
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Days        []DayPlan `json:"days"`
}

// LocationInfo describes a lodging base in the region.
type LocationInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Activities  []string `json:"activities"`
	Climate     string   `json:"climate"`
}

type TravelTime struct {
	From string `json:"from"`
	To   string `json:"to"`
	Time string `json:"time"`
}

// MapMarker is what the map view needs to place a pin.
type MapMarker struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Category POICategory `json:"category"`
	Lat      float64     `json:"lat"`
	Lng      float64     `json:"lng"`
	Color    string      `json:"color"`
}

// MapFocus is the "fly to" target for a point of interest.
type MapFocus struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Zoom int     `json:"zoom"`
}
