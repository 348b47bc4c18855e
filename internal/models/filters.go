package models

// LeadFilter represents filter parameters for querying scored leads
type LeadFilter struct {
	University string `form:"university"` // University ID or "all"
	Search     string `form:"search"`     // Substring match on name/company/position
	Category   string `form:"category"`   // hot, warm, cold, or "all"
	Page       int    `form:"page"`
	PageSize   int    `form:"pageSize"`
}

// TrendFilter represents filter parameters for the trend series
type TrendFilter struct {
	University string `form:"university"`
	Category   string `form:"category"`
	Months     int    `form:"months"` // Number of monthly buckets, most recent last
}

// ClusterFilter represents filter parameters for aggregate heatmap queries
type ClusterFilter struct {
	MinLat         float64 `form:"minLat"`
	MaxLat         float64 `form:"maxLat"`
	MinLng         float64 `form:"minLng"`
	MaxLng         float64 `form:"maxLng"`
	Zoom           int     `form:"zoom"`
	University     string  `form:"university"`
	GraduationYear int     `form:"graduationYear"`
	Country        string  `form:"country"`
	Major          string  `form:"major"`
}

// MarkerFilter represents filter parameters for drilldown marker queries
type MarkerFilter struct {
	MinLat         float64 `form:"minLat"`
	MaxLat         float64 `form:"maxLat"`
	MinLng         float64 `form:"minLng"`
	MaxLng         float64 `form:"maxLng"`
	University     string  `form:"university"`
	GraduationYear int     `form:"graduationYear"`
	Country        string  `form:"country"`
	Major          string  `form:"major"`
	Page           int     `form:"page"`
	PageSize       int     `form:"pageSize"`
}

// FilterAll is the sentinel accepted by the university/category filters
const FilterAll = "all"
