package models

// LeadSummary represents aggregate statistics over the filtered lead set
type LeadSummary struct {
	TotalLeads int `json:"total_leads"`

	// Category breakdown
	HotCount   int     `json:"hot_count"`
	WarmCount  int     `json:"warm_count"`
	ColdCount  int     `json:"cold_count"`
	PercentHot float64 `json:"percent_hot"`

	// Ad engagement
	TotalAdClicks      int     `json:"total_ad_clicks"`
	TotalAdImpressions int     `json:"total_ad_impressions"`
	ClickThroughRate   float64 `json:"click_through_rate"` // 0 when impressions are 0

	// Averages and distribution
	AvgMentorConnections float64 `json:"avg_mentor_connections"`
	AvgOverallScore      float64 `json:"avg_overall_score"`
	MedianOverallScore   float64 `json:"median_overall_score"`
	P90OverallScore      float64 `json:"p90_overall_score"`

	// Pearson correlation between ad and career engagement, 0 for small sets
	AdCareerCorrelation float64 `json:"ad_career_correlation"`
}

// UniversityRollup represents per-university lead counts. Rollups always
// source from the collection unfiltered by the university selector so that
// cross-university comparison stays stable while the displayed list narrows.
type UniversityRollup struct {
	UniversityID   string  `json:"university_id"`
	UniversityName string  `json:"university_name"`
	HotCount       int     `json:"hot_count"`
	WarmCount      int     `json:"warm_count"`
	ColdCount      int     `json:"cold_count"`
	TotalLeads     int     `json:"total_leads"`
	AvgScore       float64 `json:"avg_score"`
}

// TrendBucket represents one monthly bucket of the trend series
type TrendBucket struct {
	Month     string  `json:"month"` // YYYY-MM
	HotCount  int     `json:"hot_count"`
	WarmCount int     `json:"warm_count"`
	ColdCount int     `json:"cold_count"`
	AvgScore  float64 `json:"avg_score"`
}

// LeadListResponse represents one page of scored leads
type LeadListResponse struct {
	Leads    []AlumniLead `json:"leads"`
	Count    int          `json:"count"`
	Total    int          `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}
