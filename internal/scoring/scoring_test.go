package scoring_test

import (
	"testing"

	"github.com/alumnilink/leads-backend-go/internal/models"
	"github.com/alumnilink/leads-backend-go/internal/scoring"
)

func TestScoreAllZero(t *testing.T) {
	s := scoring.Score(models.EngagementCounters{})

	if s.AdEngagementScore != 0 {
		t.Errorf("expected ad score 0, got %f", s.AdEngagementScore)
	}
	if s.CareerEngagementScore != 0 {
		t.Errorf("expected career score 0, got %f", s.CareerEngagementScore)
	}
	if s.OverallLeadScore != 0 {
		t.Errorf("expected overall score 0, got %f", s.OverallLeadScore)
	}
	if s.Category != models.CategoryCold {
		t.Errorf("expected category cold, got %s", s.Category)
	}
}

func TestScoreBounds(t *testing.T) {
	cases := []struct {
		name     string
		counters models.EngagementCounters
	}{
		{"extreme counters", models.EngagementCounters{
			AdClicks: 1000000, AdImpressions: 5000000,
			RoadmapViews: 99999, RoadmapGenerated: 99999,
			MentorConnections: 99999, LoginFrequency: 99999, EventAttendance: 99999,
			GroupMemberships: 99999, PostsInteracted: 99999,
		}},
		{"single click", models.EngagementCounters{AdClicks: 1}},
		{"mixed", models.EngagementCounters{
			AdClicks: 12, AdImpressions: 80, RoadmapViews: 3,
			MentorConnections: 2, GroupMemberships: 4, PostsInteracted: 7,
		}},
		{"negative counters clamped", models.EngagementCounters{
			AdClicks: -5, AdImpressions: -1, RoadmapViews: -100,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := scoring.Score(tc.counters)
			for name, v := range map[string]float64{
				"ad":      s.AdEngagementScore,
				"career":  s.CareerEngagementScore,
				"overall": s.OverallLeadScore,
			} {
				if v < 0 || v > 100 {
					t.Errorf("%s score out of [0,100]: %f", name, v)
				}
			}
			if s.Category != scoring.Categorize(s.OverallLeadScore) {
				t.Errorf("category %s does not match score %f", s.Category, s.OverallLeadScore)
			}
		})
	}
}

func TestCategorizeThresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0, models.CategoryCold},
		{39.99, models.CategoryCold},
		{40, models.CategoryWarm},
		{69.99, models.CategoryWarm},
		{70, models.CategoryHot},
		{100, models.CategoryHot},
	}

	for _, tc := range cases {
		if got := scoring.Categorize(tc.score); got != tc.want {
			t.Errorf("Categorize(%f) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

// Increasing any positively-weighted counter must never lower the overall
// score, so the category can only move forward through cold/warm/hot.
func TestScoreMonotonic(t *testing.T) {
	base := models.EngagementCounters{
		AdClicks: 3, AdImpressions: 20, RoadmapViews: 2,
		MentorConnections: 1, GroupMemberships: 2, PostsInteracted: 3,
	}
	baseScore := scoring.Score(base).OverallLeadScore

	bumps := []func(c models.EngagementCounters) models.EngagementCounters{
		func(c models.EngagementCounters) models.EngagementCounters { c.AdClicks += 10; return c },
		func(c models.EngagementCounters) models.EngagementCounters { c.AdImpressions += 10; return c },
		func(c models.EngagementCounters) models.EngagementCounters { c.RoadmapViews += 10; return c },
		func(c models.EngagementCounters) models.EngagementCounters { c.RoadmapGenerated += 10; return c },
		func(c models.EngagementCounters) models.EngagementCounters { c.MentorConnections += 10; return c },
		func(c models.EngagementCounters) models.EngagementCounters { c.LoginFrequency += 10; return c },
		func(c models.EngagementCounters) models.EngagementCounters { c.EventAttendance += 10; return c },
		func(c models.EngagementCounters) models.EngagementCounters { c.GroupMemberships += 10; return c },
		func(c models.EngagementCounters) models.EngagementCounters { c.PostsInteracted += 10; return c },
	}

	for i, bump := range bumps {
		got := scoring.Score(bump(base)).OverallLeadScore
		if got < baseScore {
			t.Errorf("bump %d lowered overall score: %f -> %f", i, baseScore, got)
		}
	}
}

func TestClickThroughRate(t *testing.T) {
	cases := []struct {
		clicks, impressions int
		want                float64
	}{
		{5, 0, 0}, // no impressions must yield 0, not NaN/Inf
		{0, 100, 0},
		{5, 100, 5},
		{50, 100, 50},
	}

	for _, tc := range cases {
		if got := scoring.ClickThroughRate(tc.clicks, tc.impressions); got != tc.want {
			t.Errorf("ClickThroughRate(%d, %d) = %f, want %f", tc.clicks, tc.impressions, got, tc.want)
		}
	}
}
