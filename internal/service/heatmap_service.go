package service

import (
	"fmt"
	"sort"

	"github.com/alumnilink/leads-backend-go/internal/mapview"
	"github.com/alumnilink/leads-backend-go/internal/models"
	"github.com/alumnilink/leads-backend-go/internal/spatial"
)

// PointStore is the persistence surface the heatmap service needs
type PointStore interface {
	PointsInBounds(models.ClusterFilter) ([][2]float64, error)
	MarkersPage(models.MarkerFilter, int) ([]models.AlumniMarker, bool, error)
}

// Cells across the viewport diagonal targeted when zoom is not supplied
const targetCellsAcrossViewport = 8

// HeatmapService handles business logic for the alumni world map
type HeatmapService struct {
	store PointStore
}

// NewHeatmapService creates a new heatmap service
func NewHeatmapService(store PointStore) *HeatmapService {
	return &HeatmapService{store: store}
}

// Clusters returns geohash-aggregated alumni counts for a viewport, with the
// visual encoding already computed relative to the densest cluster.
func (s *HeatmapService) Clusters(filter models.ClusterFilter) (*models.ClusterResponse, error) {
	precision := s.precisionFor(filter)

	points, err := s.store.PointsInBounds(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load alumni points: %w", err)
	}

	clusters := BuildClusters(points, precision)

	maxCount := 0
	for _, c := range clusters {
		if c.Count > maxCount {
			maxCount = c.Count
		}
	}

	return &models.ClusterResponse{
		Clusters:  clusters,
		Count:     len(clusters),
		MaxCount:  maxCount,
		Precision: precision,
		Mode:      mapview.ModeAggregate,
	}, nil
}

// Markers returns one drilldown page of individual alumni markers
func (s *HeatmapService) Markers(filter models.MarkerFilter) (*models.MarkerResponse, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}

	markers, hasMore, err := s.store.MarkersPage(filter, mapview.DrilldownPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load alumni markers: %w", err)
	}

	return &models.MarkerResponse{
		Markers: markers,
		Count:   len(markers),
		Page:    page,
		HasMore: hasMore,
		Mode:    mapview.ModeDrilldown,
	}, nil
}

// precisionFor derives the clustering precision from zoom, falling back to
// the viewport diagonal when the client sent no zoom level
func (s *HeatmapService) precisionFor(filter models.ClusterFilter) int {
	if filter.Zoom > 0 {
		return spatial.PrecisionForZoom(filter.Zoom)
	}

	diagonal := spatial.HaversineDistance(filter.MinLat, filter.MinLng, filter.MaxLat, filter.MaxLng)
	if diagonal <= 0 {
		return spatial.PrecisionForZoom(0)
	}
	return spatial.PrecisionForDistance(diagonal / targetCellsAcrossViewport)
}

// BuildClusters groups points into geohash cells at the given precision and
// computes each cell's member count, spherical centroid, and marker style.
// Output order is count-descending, then geohash, so responses are stable.
func BuildClusters(points [][2]float64, precision int) []models.HeatmapCluster {
	cells := make(map[string][][2]float64)
	for _, p := range points {
		gh := spatial.EncodeGeohash(p[0], p[1], precision)
		cells[gh] = append(cells[gh], p)
	}

	maxCount := 0
	for _, members := range cells {
		if len(members) > maxCount {
			maxCount = len(members)
		}
	}

	clusters := make([]models.HeatmapCluster, 0, len(cells))
	for gh, members := range cells {
		lat, lng := spatial.Centroid(members)
		count := len(members)
		clusters = append(clusters, models.HeatmapCluster{
			Geohash: gh,
			Count:   count,
			Lat:     lat,
			Lng:     lng,
			Size:    mapview.Size(count, maxCount),
			Color:   mapview.Color(count, maxCount),
		})
	}

	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Count != clusters[j].Count {
			return clusters[i].Count > clusters[j].Count
		}
		return clusters[i].Geohash < clusters[j].Geohash
	})

	return clusters
}
