package mapview_test

import (
	"testing"

	"github.com/alumnilink/leads-backend-go/internal/mapview"
	"github.com/alumnilink/leads-backend-go/internal/models"
)

func TestMode(t *testing.T) {
	cases := []struct {
		name string
		zoom int
		role string
		want string
	}{
		{"member below threshold", 9, models.RoleMember, mapview.ModeAggregate},
		{"member at threshold", 10, models.RoleMember, mapview.ModeDrilldown},
		{"member above threshold", 15, models.RoleMember, mapview.ModeDrilldown},
		{"admin above threshold stays aggregate", 15, models.RoleAdministrator, mapview.ModeAggregate},
		{"admin at threshold stays aggregate", 10, models.RoleAdministrator, mapview.ModeAggregate},
		{"member at world zoom", 2, models.RoleMember, mapview.ModeAggregate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapview.Mode(tc.zoom, tc.role); got != tc.want {
				t.Errorf("Mode(%d, %s) = %s, want %s", tc.zoom, tc.role, got, tc.want)
			}
		})
	}
}

func TestClusterStyleOrdering(t *testing.T) {
	maxCount := 50

	smallSize := mapview.Size(1, maxCount)
	bigSize := mapview.Size(50, maxCount)
	if bigSize <= smallSize {
		t.Errorf("expected size for count 50 (%f) > size for count 1 (%f)", bigSize, smallSize)
	}

	// Hue shifts toward red (0 degrees) as count grows
	smallHue := mapview.Hue(1, maxCount)
	bigHue := mapview.Hue(50, maxCount)
	if bigHue >= smallHue {
		t.Errorf("expected hue for count 50 (%f) < hue for count 1 (%f)", bigHue, smallHue)
	}
	if bigHue != 0 {
		t.Errorf("expected densest cluster to render red (hue 0), got %f", bigHue)
	}
}

func TestClusterStyleDegenerate(t *testing.T) {
	// Empty result sets must not divide by zero
	if got := mapview.Size(0, 0); got <= 0 {
		t.Errorf("expected positive base size for empty set, got %f", got)
	}
	if got := mapview.Hue(0, 0); got != 120 {
		t.Errorf("expected cool hue for empty set, got %f", got)
	}

	// Counts above the reported max clamp to the hottest style
	if got := mapview.Hue(100, 50); got != 0 {
		t.Errorf("expected clamped hue 0, got %f", got)
	}
}
