package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alumnilink/leads-backend-go/internal/leadgen"
	"github.com/alumnilink/leads-backend-go/internal/models"
	"github.com/alumnilink/leads-backend-go/internal/scoring"
	"github.com/alumnilink/leads-backend-go/internal/stats"
)

// LeadStore is the persistence surface the lead service needs
type LeadStore interface {
	All() ([]models.AlumniLead, error)
	ReplaceAll([]models.AlumniLead) error
	Count() (int, error)
}

// Default paging for the lead list
const (
	defaultLeadPageSize = 20
	maxLeadPageSize     = 100
)

// Default number of monthly trend buckets
const defaultTrendMonths = 6

// LeadService handles business logic for lead intelligence
type LeadService struct {
	store  LeadStore
	source leadgen.Source
}

// NewLeadService creates a new lead service
func NewLeadService(store LeadStore, source leadgen.Source) *LeadService {
	return &LeadService{store: store, source: source}
}

// EnsureSeeded generates and stores an initial batch when the store is empty
func (s *LeadService) EnsureSeeded() error {
	count, err := s.store.Count()
	if err != nil {
		return fmt.Errorf("failed to check lead store: %w", err)
	}
	if count > 0 {
		return nil
	}
	_, err = s.Regenerate()
	return err
}

// Regenerate replaces the stored batch with a freshly generated one and
// returns the new batch size. Leads are never mutated individually.
func (s *LeadService) Regenerate() (int, error) {
	leads, err := s.source.Leads()
	if err != nil {
		return 0, fmt.Errorf("failed to generate leads: %w", err)
	}
	if err := s.store.ReplaceAll(leads); err != nil {
		return 0, fmt.Errorf("failed to store lead batch: %w", err)
	}
	return len(leads), nil
}

// Leads returns one page of scored leads matching the filter
func (s *LeadService) Leads(filter models.LeadFilter) (*models.LeadListResponse, error) {
	scored, err := s.scoredLeads()
	if err != nil {
		return nil, err
	}

	filtered := FilterLeads(scored, filter)

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = defaultLeadPageSize
	}
	if pageSize > maxLeadPageSize {
		pageSize = maxLeadPageSize
	}

	start := (page - 1) * pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return &models.LeadListResponse{
		Leads:    filtered[start:end],
		Count:    end - start,
		Total:    len(filtered),
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Summary returns aggregate statistics over the filtered lead set
func (s *LeadService) Summary(filter models.LeadFilter) (*models.LeadSummary, error) {
	scored, err := s.scoredLeads()
	if err != nil {
		return nil, err
	}

	summary := Summarize(FilterLeads(scored, filter))
	return &summary, nil
}

// UniversityRollups returns per-university category counts over the full
// collection. The global university selector never narrows these, so
// cross-university comparison stays stable while the displayed list shrinks.
func (s *LeadService) UniversityRollups() ([]models.UniversityRollup, error) {
	scored, err := s.scoredLeads()
	if err != nil {
		return nil, err
	}
	return Rollups(scored), nil
}

// Trend returns the monthly trend series for the filtered set
func (s *LeadService) Trend(filter models.TrendFilter) ([]models.TrendBucket, error) {
	scored, err := s.scoredLeads()
	if err != nil {
		return nil, err
	}

	months := filter.Months
	if months < 1 {
		months = defaultTrendMonths
	}

	leadFilter := models.LeadFilter{University: filter.University, Category: filter.Category}
	return TrendSeries(FilterLeads(scored, leadFilter), months, time.Now().UTC()), nil
}

func (s *LeadService) scoredLeads() ([]models.AlumniLead, error) {
	leads, err := s.store.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load leads: %w", err)
	}
	return ScoreAll(leads), nil
}

// ScoreAll annotates every lead with freshly computed scores. Scores are
// always derived here so a stale category can never ship with a newer score.
func ScoreAll(leads []models.AlumniLead) []models.AlumniLead {
	scored := make([]models.AlumniLead, len(leads))
	for i, l := range leads {
		l.Scores = scoring.Score(l.Counters)
		scored[i] = l
	}
	return scored
}

// FilterLeads applies the conjunctive lead filter: a record passes only when
// it matches the university selector, the free-text search, and the category
// selector. Deterministic and idempotent.
func FilterLeads(leads []models.AlumniLead, filter models.LeadFilter) []models.AlumniLead {
	university := strings.TrimSpace(filter.University)
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	category := strings.TrimSpace(filter.Category)

	filtered := make([]models.AlumniLead, 0, len(leads))
	for _, l := range leads {
		if university != "" && university != models.FilterAll && l.UniversityID != university {
			continue
		}
		if category != "" && category != models.FilterAll && l.Scores.Category != category {
			continue
		}
		if search != "" && !matchesSearch(l, search) {
			continue
		}
		filtered = append(filtered, l)
	}
	return filtered
}

// matchesSearch reports whether the lowercase needle appears in the lead's
// name, company, or position
func matchesSearch(l models.AlumniLead, needle string) bool {
	return strings.Contains(strings.ToLower(l.Name), needle) ||
		strings.Contains(strings.ToLower(l.Company), needle) ||
		strings.Contains(strings.ToLower(l.Position), needle)
}

// Summarize computes the dashboard summary over an already-filtered set
func Summarize(leads []models.AlumniLead) models.LeadSummary {
	summary := models.LeadSummary{TotalLeads: len(leads)}

	var overall, adScores, careerScores, mentorConnections []float64
	for _, l := range leads {
		switch l.Scores.Category {
		case models.CategoryHot:
			summary.HotCount++
		case models.CategoryWarm:
			summary.WarmCount++
		default:
			summary.ColdCount++
		}

		summary.TotalAdClicks += l.Counters.AdClicks
		summary.TotalAdImpressions += l.Counters.AdImpressions

		overall = append(overall, l.Scores.OverallLeadScore)
		adScores = append(adScores, l.Scores.AdEngagementScore)
		careerScores = append(careerScores, l.Scores.CareerEngagementScore)
		mentorConnections = append(mentorConnections, float64(l.Counters.MentorConnections))
	}

	if len(leads) > 0 {
		summary.PercentHot = float64(summary.HotCount) / float64(len(leads)) * 100
	}
	summary.ClickThroughRate = scoring.ClickThroughRate(summary.TotalAdClicks, summary.TotalAdImpressions)
	summary.AvgMentorConnections = stats.Mean(mentorConnections)
	summary.AvgOverallScore = stats.Mean(overall)
	summary.MedianOverallScore = stats.Median(overall)
	summary.P90OverallScore = stats.Percentile(overall, 90)
	summary.AdCareerCorrelation = stats.PearsonCorrelation(adScores, careerScores)

	return summary
}

// Rollups computes per-university category counts and average scores,
// ordered by total leads descending
func Rollups(leads []models.AlumniLead) []models.UniversityRollup {
	byUniversity := make(map[string]*models.UniversityRollup)
	scores := make(map[string][]float64)

	for _, l := range leads {
		r, ok := byUniversity[l.UniversityID]
		if !ok {
			r = &models.UniversityRollup{
				UniversityID:   l.UniversityID,
				UniversityName: l.UniversityName,
			}
			byUniversity[l.UniversityID] = r
		}

		switch l.Scores.Category {
		case models.CategoryHot:
			r.HotCount++
		case models.CategoryWarm:
			r.WarmCount++
		default:
			r.ColdCount++
		}
		r.TotalLeads++
		scores[l.UniversityID] = append(scores[l.UniversityID], l.Scores.OverallLeadScore)
	}

	rollups := make([]models.UniversityRollup, 0, len(byUniversity))
	for id, r := range byUniversity {
		r.AvgScore = stats.Mean(scores[id])
		rollups = append(rollups, *r)
	}

	sort.Slice(rollups, func(i, j int) bool {
		if rollups[i].TotalLeads != rollups[j].TotalLeads {
			return rollups[i].TotalLeads > rollups[j].TotalLeads
		}
		return rollups[i].UniversityID < rollups[j].UniversityID
	})

	return rollups
}

// TrendSeries buckets leads by activity month over the trailing window,
// oldest bucket first. Empty months still appear so charts keep their shape.
func TrendSeries(leads []models.AlumniLead, months int, now time.Time) []models.TrendBucket {
	if months < 1 {
		months = 1
	}

	type acc struct {
		bucket models.TrendBucket
		scores []float64
	}

	buckets := make([]acc, months)
	index := make(map[string]int, months)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	for i := 0; i < months; i++ {
		month := first.AddDate(0, i, 0).Format("2006-01")
		buckets[i].bucket.Month = month
		index[month] = i
	}

	for _, l := range leads {
		i, ok := index[l.LastActiveAt.UTC().Format("2006-01")]
		if !ok {
			continue
		}
		switch l.Scores.Category {
		case models.CategoryHot:
			buckets[i].bucket.HotCount++
		case models.CategoryWarm:
			buckets[i].bucket.WarmCount++
		default:
			buckets[i].bucket.ColdCount++
		}
		buckets[i].scores = append(buckets[i].scores, l.Scores.OverallLeadScore)
	}

	series := make([]models.TrendBucket, months)
	for i := range buckets {
		buckets[i].bucket.AvgScore = stats.Mean(buckets[i].scores)
		series[i] = buckets[i].bucket
	}

	return series
}
