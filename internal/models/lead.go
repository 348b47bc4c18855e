package models

import "time"

// EngagementCounters holds the raw interaction counters tracked per alumnus.
// All values are non-negative; negative inputs are clamped by the scorer.
type EngagementCounters struct {
	AdClicks          int `json:"ad_clicks" db:"ad_clicks"`
	AdImpressions     int `json:"ad_impressions" db:"ad_impressions"`
	RoadmapViews      int `json:"roadmap_views" db:"roadmap_views"`
	RoadmapGenerated  int `json:"roadmap_generated" db:"roadmap_generated"`
	MentorConnections int `json:"mentor_connections" db:"mentor_connections"`
	LoginFrequency    int `json:"login_frequency" db:"login_frequency"`
	EventAttendance   int `json:"event_attendance" db:"event_attendance"`
	GroupMemberships  int `json:"group_memberships" db:"group_memberships"`
	PostsInteracted   int `json:"posts_interacted" db:"posts_interacted"`
}

// LeadScores holds the derived engagement scores. These are recomputed from
// the counters on every read and never persisted, so the category can never
// drift from the score it describes.
type LeadScores struct {
	AdEngagementScore     float64 `json:"ad_engagement_score"`
	CareerEngagementScore float64 `json:"career_engagement_score"`
	OverallLeadScore      float64 `json:"overall_lead_score"`
	Category              string  `json:"lead_category"` // hot, warm, cold
}

// AlumniLead represents an alumnus profile annotated with engagement scoring
// for outreach prioritization.
type AlumniLead struct {
	ID    string `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
	Phone string `json:"phone,omitempty" db:"phone"`

	// Affiliation
	UniversityID   string `json:"university_id" db:"university_id"`
	UniversityName string `json:"university_name" db:"university_name"`
	GraduationYear int    `json:"graduation_year" db:"graduation_year"`
	Major          string `json:"major,omitempty" db:"major"`

	// Current role
	Position string `json:"position" db:"position"`
	Company  string `json:"company" db:"company"`

	// Location
	City      string  `json:"city,omitempty" db:"city"`
	Country   string  `json:"country,omitempty" db:"country"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`

	Counters EngagementCounters `json:"counters"`
	Scores   LeadScores         `json:"scores"`

	// Most recent platform activity, used for trend bucketing
	LastActiveAt time.Time `json:"last_active_at" db:"last_active_at"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Lead category constants
const (
	CategoryHot  = "hot"
	CategoryWarm = "warm"
	CategoryCold = "cold"
)

// Role constants carried in JWT claims
const (
	RoleMember        = "member"
	RoleAdministrator = "administrator"
)
