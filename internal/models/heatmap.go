package models

// HeatmapCluster represents an aggregate of alumni within one geohash cell
// at the current zoom level
type HeatmapCluster struct {
	Geohash string  `json:"geohash"`
	Count   int     `json:"count"`
	Lat     float64 `json:"lat"` // Cell centroid
	Lng     float64 `json:"lng"`
	Size    float64 `json:"size"`  // Marker diameter in pixels
	Color   string  `json:"color"` // Hue shifted toward red as count grows
}

// AlumniMarker represents an individual alumnus shown in drilldown mode,
// with a denormalized display snapshot
type AlumniMarker struct {
	ID         string  `json:"id"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Name       string  `json:"name"`
	Position   string  `json:"position"`
	Company    string  `json:"company"`
	University string  `json:"university"`
	AvatarURL  string  `json:"avatar_url,omitempty"`
}

// ClusterResponse represents the aggregate heatmap API response
type ClusterResponse struct {
	Clusters  []HeatmapCluster `json:"clusters"`
	Count     int              `json:"count"`
	MaxCount  int              `json:"max_count"`
	Precision int              `json:"precision"`
	Mode      string           `json:"mode"`
}

// MarkerResponse represents one page of drilldown markers
type MarkerResponse struct {
	Markers []AlumniMarker `json:"markers"`
	Count   int            `json:"count"`
	Page    int            `json:"page"`
	HasMore bool           `json:"has_more"`
	Mode    string         `json:"mode"`
}
