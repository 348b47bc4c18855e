package leadgen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alumnilink/leads-backend-go/internal/models"
)

// Source produces a batch of raw alumni leads. The aggregation layer never
// touches randomness directly; anything random lives behind this interface.
type Source interface {
	Leads() ([]models.AlumniLead, error)
}

// University is a generation pool entry with its campus city coordinates
type University struct {
	ID   string
	Name string
	City string
	Lat  float64
	Lng  float64
}

// Generation pools. Coordinates are campus-city centers; individual alumni
// are jittered around them.
var universities = []University{
	{"mit", "MIT", "Cambridge", 42.3601, -71.0942},
	{"stanford", "Stanford University", "Palo Alto", 37.4275, -122.1697},
	{"oxford", "University of Oxford", "Oxford", 51.7548, -1.2544},
	{"nus", "National University of Singapore", "Singapore", 1.2966, 103.7764},
	{"iitb", "IIT Bombay", "Mumbai", 19.1334, 72.9133},
	{"unimelb", "University of Melbourne", "Melbourne", -37.7964, 144.9612},
	{"utoronto", "University of Toronto", "Toronto", 43.6629, -79.3957},
	{"tum", "Technical University of Munich", "Munich", 48.1497, 11.5679},
}

var countries = map[string]string{
	"mit": "USA", "stanford": "USA", "oxford": "UK", "nus": "Singapore",
	"iitb": "India", "unimelb": "Australia", "utoronto": "Canada", "tum": "Germany",
}

var firstNames = []string{
	"Aisha", "Carlos", "Diego", "Elena", "Fatima", "Hiro", "Ingrid", "James",
	"Kavya", "Liam", "Mei", "Noah", "Olga", "Priya", "Quentin", "Rosa",
	"Santiago", "Tariq", "Uma", "Wei",
}

var lastNames = []string{
	"Anderson", "Bauer", "Chen", "Dubois", "Eriksson", "Fernandez", "Gupta",
	"Hassan", "Ivanov", "Johnson", "Kim", "Lopez", "Meier", "Nakamura",
	"Okafor", "Patel", "Rossi", "Silva", "Tanaka", "Yilmaz",
}

var companies = []string{
	"Northwind Analytics", "Apex Biotech", "Cobalt Systems", "Driftwood Capital",
	"Everfield Energy", "Fathom Robotics", "Glasswing Media", "Harbor Health",
	"Ionwave Semiconductors", "Juniper Logistics",
}

var positions = []string{
	"Software Engineer", "Product Manager", "Data Scientist", "Research Fellow",
	"Consultant", "Marketing Director", "Founder", "Financial Analyst",
	"Operations Lead", "UX Designer",
}

var majors = []string{
	"Computer Science", "Mechanical Engineering", "Economics", "Biology",
	"Physics", "Business Administration", "Electrical Engineering", "Design",
}

// Generator is the deterministic lead source: the same seed and size always
// produce the same batch, which keeps the aggregation layer testable.
type Generator struct {
	seed int64
	size int
}

// NewGenerator creates a seeded generator producing size leads per batch.
func NewGenerator(seed int64, size int) *Generator {
	if size <= 0 {
		size = 200
	}
	return &Generator{seed: seed, size: size}
}

// Leads generates a full batch of synthetic alumni leads.
func (g *Generator) Leads() ([]models.AlumniLead, error) {
	rng := rand.New(rand.NewSource(g.seed))
	// Truncated to the day so repeated calls with one seed stay identical
	now := time.Now().UTC().Truncate(24 * time.Hour)

	leads := make([]models.AlumniLead, 0, g.size)
	for i := 0; i < g.size; i++ {
		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			return nil, fmt.Errorf("failed to generate lead id: %w", err)
		}

		uni := universities[rng.Intn(len(universities))]
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		name := first + " " + last

		// Activity skews recent so monthly trend buckets are populated
		daysAgo := rng.Intn(365)
		lastActive := now.AddDate(0, 0, -daysAgo)

		leads = append(leads, models.AlumniLead{
			ID:             id.String(),
			Name:           name,
			Email:          fmt.Sprintf("%s.%s%d@alumni.%s.example", strings.ToLower(first), strings.ToLower(last), i, uni.ID),
			UniversityID:   uni.ID,
			UniversityName: uni.Name,
			GraduationYear: 1995 + rng.Intn(30),
			Major:          majors[rng.Intn(len(majors))],
			Position:       positions[rng.Intn(len(positions))],
			Company:        companies[rng.Intn(len(companies))],
			City:           uni.City,
			Country:        countries[uni.ID],
			Latitude:       uni.Lat + (rng.Float64()-0.5)*0.4,
			Longitude:      uni.Lng + (rng.Float64()-0.5)*0.4,
			Counters: models.EngagementCounters{
				AdClicks:          rng.Intn(25),
				AdImpressions:     rng.Intn(200),
				RoadmapViews:      rng.Intn(20),
				RoadmapGenerated:  rng.Intn(8),
				MentorConnections: rng.Intn(6),
				LoginFrequency:    rng.Intn(60),
				EventAttendance:   rng.Intn(10),
				GroupMemberships:  rng.Intn(8),
				PostsInteracted:   rng.Intn(30),
			},
			LastActiveAt: lastActive,
			CreatedAt:    now,
		})
	}

	return leads, nil
}
