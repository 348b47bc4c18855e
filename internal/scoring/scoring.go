package scoring

import "github.com/alumnilink/leads-backend-go/internal/models"

// Scoring weights and category thresholds. These are outreach policy values,
// not derived quantities; retune here when the policy changes.
const (
	AdWeight        = 0.4
	CareerWeight    = 0.4
	CommunityWeight = 0.2

	HotThreshold  = 70.0
	WarmThreshold = 40.0
)

// Per-counter point values used to build the component scores before clamping
const (
	adClickPoints      = 5.0
	adImpressionPoints = 0.5

	roadmapViewPoints     = 4.0
	roadmapGenPoints      = 8.0
	mentorPoints          = 10.0
	loginPoints           = 1.0
	eventPoints           = 6.0
	groupMembershipPoints = 7.0
	postInteractedPoints  = 3.0
)

// Score computes the derived engagement scores for a set of raw counters.
// Negative counters are clamped to zero before scoring, component scores are
// clamped to [0, 100], and the category is derived from the overall score.
func Score(c models.EngagementCounters) models.LeadScores {
	c = clampCounters(c)

	ad := clamp100(float64(c.AdClicks)*adClickPoints + float64(c.AdImpressions)*adImpressionPoints)

	career := clamp100(float64(c.RoadmapViews)*roadmapViewPoints +
		float64(c.RoadmapGenerated)*roadmapGenPoints +
		float64(c.MentorConnections)*mentorPoints +
		float64(c.LoginFrequency)*loginPoints +
		float64(c.EventAttendance)*eventPoints)

	community := clamp100(float64(c.GroupMemberships)*groupMembershipPoints +
		float64(c.PostsInteracted)*postInteractedPoints)

	overall := ad*AdWeight + career*CareerWeight + community*CommunityWeight

	return models.LeadScores{
		AdEngagementScore:     ad,
		CareerEngagementScore: career,
		OverallLeadScore:      overall,
		Category:              Categorize(overall),
	}
}

// Categorize maps an overall lead score to its category. It is the only
// place the hot/warm thresholds are applied.
func Categorize(overall float64) string {
	switch {
	case overall >= HotThreshold:
		return models.CategoryHot
	case overall >= WarmThreshold:
		return models.CategoryWarm
	default:
		return models.CategoryCold
	}
}

// ClickThroughRate returns clicks/impressions as a percentage, 0 when there
// are no impressions.
func ClickThroughRate(clicks, impressions int) float64 {
	if impressions <= 0 {
		return 0
	}
	return float64(clicks) / float64(impressions) * 100
}

func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func clampCounters(c models.EngagementCounters) models.EngagementCounters {
	for _, p := range []*int{
		&c.AdClicks, &c.AdImpressions,
		&c.RoadmapViews, &c.RoadmapGenerated,
		&c.MentorConnections, &c.LoginFrequency, &c.EventAttendance,
		&c.GroupMemberships, &c.PostsInteracted,
	} {
		if *p < 0 {
			*p = 0
		}
	}
	return c
}
