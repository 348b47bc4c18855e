package service_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/alumnilink/leads-backend-go/internal/models"
	"github.com/alumnilink/leads-backend-go/internal/service"
)

// fixtureLeads builds a small scored working set spanning two universities
// and all three categories
func fixtureLeads(t *testing.T) []models.AlumniLead {
	t.Helper()

	leads := []models.AlumniLead{
		{
			ID: "l1", Name: "Priya Patel", UniversityID: "mit", UniversityName: "MIT",
			Position: "Software Engineer", Company: "Fathom Robotics",
			Counters: models.EngagementCounters{
				AdClicks: 20, AdImpressions: 100, RoadmapViews: 10, RoadmapGenerated: 5,
				MentorConnections: 4, EventAttendance: 5, GroupMemberships: 8, PostsInteracted: 20,
			},
			LastActiveAt: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "l2", Name: "Liam Chen", UniversityID: "mit", UniversityName: "MIT",
			Position: "Consultant", Company: "Driftwood Capital",
			Counters: models.EngagementCounters{
				AdClicks: 5, AdImpressions: 60, RoadmapViews: 5, MentorConnections: 2,
				EventAttendance: 2, GroupMemberships: 3, PostsInteracted: 6,
			},
			LastActiveAt: time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID: "l3", Name: "Elena Rossi", UniversityID: "stanford", UniversityName: "Stanford University",
			Position: "Data Scientist", Company: "Northwind Analytics",
			Counters:     models.EngagementCounters{AdImpressions: 4},
			LastActiveAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	scored := service.ScoreAll(leads)
	if scored[0].Scores.Category != models.CategoryHot {
		t.Fatalf("fixture l1 expected hot, got %s (score %f)", scored[0].Scores.Category, scored[0].Scores.OverallLeadScore)
	}
	if scored[1].Scores.Category != models.CategoryWarm {
		t.Fatalf("fixture l2 expected warm, got %s (score %f)", scored[1].Scores.Category, scored[1].Scores.OverallLeadScore)
	}
	if scored[2].Scores.Category != models.CategoryCold {
		t.Fatalf("fixture l3 expected cold, got %s (score %f)", scored[2].Scores.Category, scored[2].Scores.OverallLeadScore)
	}
	return scored
}

func leadIDs(leads []models.AlumniLead) []string {
	ids := make([]string, len(leads))
	for i, l := range leads {
		ids[i] = l.ID
	}
	return ids
}

func TestFilterLeadsConjunctive(t *testing.T) {
	leads := fixtureLeads(t)

	cases := []struct {
		name   string
		filter models.LeadFilter
		want   []string
	}{
		{"no filter", models.LeadFilter{}, []string{"l1", "l2", "l3"}},
		{"all sentinels", models.LeadFilter{University: "all", Category: "all"}, []string{"l1", "l2", "l3"}},
		{"university only", models.LeadFilter{University: "mit"}, []string{"l1", "l2"}},
		{"category only", models.LeadFilter{Category: "hot"}, []string{"l1"}},
		{"university and category", models.LeadFilter{University: "mit", Category: "hot"}, []string{"l1"}},
		{"excluded by one leg", models.LeadFilter{University: "stanford", Category: "hot"}, []string{}},
		{"search on name", models.LeadFilter{Search: "priya"}, []string{"l1"}},
		{"search on company", models.LeadFilter{Search: "northwind"}, []string{"l3"}},
		{"search on position", models.LeadFilter{Search: "consult"}, []string{"l2"}},
		{"search case-insensitive", models.LeadFilter{Search: "FATHOM"}, []string{"l1"}},
		{"all three legs", models.LeadFilter{University: "mit", Search: "engineer", Category: "hot"}, []string{"l1"}},
		{"search misses", models.LeadFilter{Search: "zzz"}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := leadIDs(service.FilterLeads(leads, tc.filter))
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("FilterLeads = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterLeadsIdempotent(t *testing.T) {
	leads := fixtureLeads(t)
	filter := models.LeadFilter{University: "mit", Search: "e", Category: "hot"}

	once := service.FilterLeads(leads, filter)
	twice := service.FilterLeads(once, filter)

	if !reflect.DeepEqual(leadIDs(once), leadIDs(twice)) {
		t.Errorf("filtering twice changed the result: %v vs %v", leadIDs(once), leadIDs(twice))
	}
}

func TestSummarize(t *testing.T) {
	leads := fixtureLeads(t)
	summary := service.Summarize(leads)

	if summary.TotalLeads != 3 {
		t.Errorf("TotalLeads = %d, want 3", summary.TotalLeads)
	}
	if summary.HotCount != 1 || summary.WarmCount != 1 || summary.ColdCount != 1 {
		t.Errorf("category counts = %d/%d/%d, want 1/1/1", summary.HotCount, summary.WarmCount, summary.ColdCount)
	}
	if summary.TotalAdClicks != 25 || summary.TotalAdImpressions != 164 {
		t.Errorf("ad totals = %d/%d, want 25/164", summary.TotalAdClicks, summary.TotalAdImpressions)
	}

	wantCTR := 25.0 / 164.0 * 100
	if diff := summary.ClickThroughRate - wantCTR; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("CTR = %f, want %f", summary.ClickThroughRate, wantCTR)
	}

	wantPct := 1.0 / 3.0 * 100
	if diff := summary.PercentHot - wantPct; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("PercentHot = %f, want %f", summary.PercentHot, wantPct)
	}
}

func TestSummarizeZeroImpressions(t *testing.T) {
	leads := service.ScoreAll([]models.AlumniLead{
		{ID: "x", Counters: models.EngagementCounters{AdClicks: 5}},
	})

	summary := service.Summarize(leads)
	if summary.ClickThroughRate != 0 {
		t.Errorf("CTR with zero impressions = %f, want 0", summary.ClickThroughRate)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := service.Summarize(nil)
	if summary.TotalLeads != 0 || summary.PercentHot != 0 || summary.ClickThroughRate != 0 {
		t.Errorf("empty summary not zeroed: %+v", summary)
	}
}

func TestRollupsIgnoreUniversityFilter(t *testing.T) {
	leads := fixtureLeads(t)

	// Rollups source from the full collection even when the displayed list is
	// narrowed, so both universities must appear
	rollups := service.Rollups(leads)
	if len(rollups) != 2 {
		t.Fatalf("expected 2 rollups, got %d", len(rollups))
	}

	// MIT has more leads, so it sorts first
	if rollups[0].UniversityID != "mit" {
		t.Errorf("expected mit first, got %s", rollups[0].UniversityID)
	}
	if rollups[0].HotCount != 1 || rollups[0].WarmCount != 1 || rollups[0].ColdCount != 0 {
		t.Errorf("mit counts = %d/%d/%d, want 1/1/0", rollups[0].HotCount, rollups[0].WarmCount, rollups[0].ColdCount)
	}
	if rollups[1].UniversityID != "stanford" || rollups[1].ColdCount != 1 {
		t.Errorf("unexpected stanford rollup: %+v", rollups[1])
	}
}

func TestTrendSeries(t *testing.T) {
	leads := fixtureLeads(t)
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	series := service.TrendSeries(leads, 3, now)
	if len(series) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(series))
	}

	if series[0].Month != "2026-06" || series[1].Month != "2026-07" || series[2].Month != "2026-08" {
		t.Fatalf("unexpected bucket months: %s %s %s", series[0].Month, series[1].Month, series[2].Month)
	}

	// June has no activity but still appears
	if series[0].HotCount+series[0].WarmCount+series[0].ColdCount != 0 {
		t.Errorf("expected empty June bucket, got %+v", series[0])
	}
	if series[1].WarmCount != 1 {
		t.Errorf("expected 1 warm lead in July, got %+v", series[1])
	}
	if series[2].HotCount != 1 || series[2].ColdCount != 1 {
		t.Errorf("expected 1 hot and 1 cold lead in August, got %+v", series[2])
	}
}
