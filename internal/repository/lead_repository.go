package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alumnilink/leads-backend-go/internal/models"
)

const leadColumns = `id, name, email, phone, university_id, university_name,
	graduation_year, major, position, company, city, country,
	latitude, longitude,
	ad_clicks, ad_impressions, roadmap_views, roadmap_generated,
	mentor_connections, login_frequency, event_attendance,
	group_memberships, posts_interacted,
	last_active_at, created_at`

// LeadRepository handles database operations for alumni leads
type LeadRepository struct {
	db *sql.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// All retrieves the full lead batch. Scores are not stored; callers run the
// scorer over the counters after loading.
func (r *LeadRepository) All() ([]models.AlumniLead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	return scanLeads(rows)
}

// ReplaceAll atomically swaps the stored batch for a new one. Leads are never
// mutated field-by-field; regeneration always replaces the whole set.
func (r *LeadRepository) ReplaceAll(leads []models.AlumniLead) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if _, err := tx.Exec("DELETE FROM leads"); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear leads: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO leads (` + leadColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, l := range leads {
		_, err := stmt.Exec(
			l.ID, l.Name, l.Email, l.Phone, l.UniversityID, l.UniversityName,
			l.GraduationYear, l.Major, l.Position, l.Company, l.City, l.Country,
			l.Latitude, l.Longitude,
			l.Counters.AdClicks, l.Counters.AdImpressions,
			l.Counters.RoadmapViews, l.Counters.RoadmapGenerated,
			l.Counters.MentorConnections, l.Counters.LoginFrequency,
			l.Counters.EventAttendance,
			l.Counters.GroupMemberships, l.Counters.PostsInteracted,
			l.LastActiveAt.Unix(), l.CreatedAt.Unix(),
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert lead %s: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit lead batch: %w", err)
	}

	return nil
}

// Count returns the number of stored leads
func (r *LeadRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM leads").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return count, nil
}

// PointsInBounds retrieves lead coordinates within a viewport, restricted by
// the heatmap filters. Used by the aggregate cluster path.
func (r *LeadRepository) PointsInBounds(filter models.ClusterFilter) ([][2]float64, error) {
	query := `SELECT latitude, longitude FROM leads`
	conditions, args := boundsConditions(filter.MinLat, filter.MaxLat, filter.MinLng, filter.MaxLng)
	conditions, args = heatmapConditions(conditions, args,
		filter.University, filter.GraduationYear, filter.Country, filter.Major)

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query lead points: %w", err)
	}
	defer rows.Close()

	var points [][2]float64
	for rows.Next() {
		var lat, lng float64
		if err := rows.Scan(&lat, &lng); err != nil {
			return nil, fmt.Errorf("failed to scan lead point: %w", err)
		}
		points = append(points, [2]float64{lat, lng})
	}

	return points, rows.Err()
}

// MarkersPage retrieves one page of individual alumni markers within a
// viewport. Ordering is stable so appended pages never repeat markers.
func (r *LeadRepository) MarkersPage(filter models.MarkerFilter, pageSize int) ([]models.AlumniMarker, bool, error) {
	query := `SELECT id, latitude, longitude, name, position, company, university_name FROM leads`
	conditions, args := boundsConditions(filter.MinLat, filter.MaxLat, filter.MinLng, filter.MaxLng)
	conditions, args = heatmapConditions(conditions, args,
		filter.University, filter.GraduationYear, filter.Country, filter.Major)

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}

	// Fetch one extra row to derive the has-more flag
	query += " ORDER BY id ASC LIMIT ? OFFSET ?"
	args = append(args, pageSize+1, (page-1)*pageSize)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query alumni markers: %w", err)
	}
	defer rows.Close()

	var markers []models.AlumniMarker
	for rows.Next() {
		var m models.AlumniMarker
		if err := rows.Scan(&m.ID, &m.Lat, &m.Lng, &m.Name, &m.Position, &m.Company, &m.University); err != nil {
			return nil, false, fmt.Errorf("failed to scan alumni marker: %w", err)
		}
		markers = append(markers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}

	hasMore := len(markers) > pageSize
	if hasMore {
		markers = markers[:pageSize]
	}

	return markers, hasMore, nil
}

func boundsConditions(minLat, maxLat, minLng, maxLng float64) ([]string, []interface{}) {
	var conditions []string
	var args []interface{}

	if minLat != 0 || maxLat != 0 || minLng != 0 || maxLng != 0 {
		conditions = append(conditions, "latitude >= ?", "latitude <= ?", "longitude >= ?", "longitude <= ?")
		args = append(args, minLat, maxLat, minLng, maxLng)
	}

	return conditions, args
}

func heatmapConditions(conditions []string, args []interface{}, university string, gradYear int, country, major string) ([]string, []interface{}) {
	if university != "" && university != models.FilterAll {
		conditions = append(conditions, "university_id = ?")
		args = append(args, university)
	}
	if gradYear > 0 {
		conditions = append(conditions, "graduation_year = ?")
		args = append(args, gradYear)
	}
	if country != "" {
		conditions = append(conditions, "country = ?")
		args = append(args, country)
	}
	if major != "" {
		conditions = append(conditions, "major = ?")
		args = append(args, major)
	}
	return conditions, args
}

func scanLeads(rows *sql.Rows) ([]models.AlumniLead, error) {
	var leads []models.AlumniLead
	for rows.Next() {
		var l models.AlumniLead
		var lastActive, created int64
		err := rows.Scan(
			&l.ID, &l.Name, &l.Email, &l.Phone, &l.UniversityID, &l.UniversityName,
			&l.GraduationYear, &l.Major, &l.Position, &l.Company, &l.City, &l.Country,
			&l.Latitude, &l.Longitude,
			&l.Counters.AdClicks, &l.Counters.AdImpressions,
			&l.Counters.RoadmapViews, &l.Counters.RoadmapGenerated,
			&l.Counters.MentorConnections, &l.Counters.LoginFrequency,
			&l.Counters.EventAttendance,
			&l.Counters.GroupMemberships, &l.Counters.PostsInteracted,
			&lastActive, &created,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		l.LastActiveAt = time.Unix(lastActive, 0).UTC()
		l.CreatedAt = time.Unix(created, 0).UTC()
		leads = append(leads, l)
	}

	return leads, rows.Err()
}
