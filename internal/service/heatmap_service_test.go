package service_test

import (
	"math"
	"strings"
	"testing"

	"github.com/alumnilink/leads-backend-go/internal/service"
)

func TestBuildClusters(t *testing.T) {
	// Two dense points near Boston, one lone point near Sydney
	points := [][2]float64{
		{42.3601, -71.0589},
		{42.3605, -71.0592},
		{-33.8688, 151.2093},
	}

	clusters := service.BuildClusters(points, 3)
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}

	// Count-descending order: the Boston cell first
	if clusters[0].Count != 2 || clusters[1].Count != 1 {
		t.Fatalf("unexpected counts: %d, %d", clusters[0].Count, clusters[1].Count)
	}

	// Denser cluster renders strictly larger and redder
	if clusters[0].Size <= clusters[1].Size {
		t.Errorf("expected size %f > %f", clusters[0].Size, clusters[1].Size)
	}
	if clusters[0].Color == clusters[1].Color {
		t.Errorf("expected distinct colors, both %s", clusters[0].Color)
	}
	if !strings.HasPrefix(clusters[0].Color, "hsl(0,") {
		t.Errorf("expected densest cluster red, got %s", clusters[0].Color)
	}

	// Centroid of the Boston pair sits between its members
	if math.Abs(clusters[0].Lat-42.3603) > 0.01 || math.Abs(clusters[0].Lng+71.059) > 0.01 {
		t.Errorf("unexpected centroid (%f, %f)", clusters[0].Lat, clusters[0].Lng)
	}
}

func TestBuildClustersEmpty(t *testing.T) {
	clusters := service.BuildClusters(nil, 4)
	if len(clusters) != 0 {
		t.Errorf("expected no clusters for no points, got %d", len(clusters))
	}
}

func TestBuildClustersDeterministic(t *testing.T) {
	points := [][2]float64{
		{42.36, -71.05}, {42.37, -71.06}, {40.71, -74.00}, {40.72, -74.01}, {51.50, -0.12},
	}

	a := service.BuildClusters(points, 4)
	b := service.BuildClusters(points, 4)
	if len(a) != len(b) {
		t.Fatalf("cluster counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("cluster %d differs across runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
