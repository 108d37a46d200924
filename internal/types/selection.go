package types

type AddToSelectionRequest struct {
	POIID string `json:"poi_id"`
}

// SelectionView is the user's "Mi Ruta" as returned to the client.
type SelectionView struct {
	Places       []string `json:"places"`
	Count        int      `json:"count"`
	Notification string   `json:"notification,omitempty"`
}

type SelectionContains struct {
	Name     string `json:"name"`
	Contains bool   `json:"contains"`
}
