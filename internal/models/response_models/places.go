package response_models

type PlaceView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory,omitempty"`
	Address     string   `json:"address"`
	Rating      *float64 `json:"rating,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	DistanceKm  *float64 `json:"distance_km,omitempty"`
	MapURL      string   `json:"map_url"`
	Tags        []string `json:"tags"`
}

type DirectoryView struct {
	Places        []PlaceView `json:"places"`
	Total         int         `json:"total"`
	Remaining     int         `json:"remaining"`
	Page          int         `json:"page"`
	PageSize      int         `json:"page_size"`
	AvailableTags []string    `json:"available_tags"`
}
