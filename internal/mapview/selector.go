package mapview

import (
	"fmt"

	"github.com/alumnilink/leads-backend-go/internal/models"
)

// View modes for the alumni world map
const (
	ModeAggregate = "aggregate" // Geohash cluster markers only
	ModeDrilldown = "drilldown" // Individual alumni markers
)

// DrilldownZoomThreshold is the zoom level at which regular members switch
// from cluster view to individual markers. Administrators stay in aggregate
// view at every zoom.
const DrilldownZoomThreshold = 10

// DrilldownPageSize is the number of individual markers fetched per page.
const DrilldownPageSize = 50

// Marker sizing bounds in pixels
const (
	minMarkerSize = 24.0
	maxMarkerSize = 64.0
)

// Hue range for cluster markers: sparse cells render green (120), the densest
// cell in the result set renders red (0)
const (
	coolHue = 120.0
	hotHue  = 0.0
)

// Mode selects the view mode for a zoom level and caller role.
func Mode(zoom int, role string) string {
	if role == models.RoleAdministrator {
		return ModeAggregate
	}
	if zoom >= DrilldownZoomThreshold {
		return ModeDrilldown
	}
	return ModeAggregate
}

// Size returns the marker diameter for a cluster, monotone in member count
// relative to the largest cluster in the current result set.
func Size(count, maxCount int) float64 {
	return minMarkerSize + ratio(count, maxCount)*(maxMarkerSize-minMarkerSize)
}

// Hue returns the marker hue in degrees, shifting from green toward red as
// the cluster grows relative to the largest cluster in the result set.
func Hue(count, maxCount int) float64 {
	return coolHue + ratio(count, maxCount)*(hotHue-coolHue)
}

// Color renders the cluster hue as a CSS HSL color string.
func Color(count, maxCount int) string {
	return fmt.Sprintf("hsl(%.0f, 70%%, 50%%)", Hue(count, maxCount))
}

func ratio(count, maxCount int) float64 {
	if maxCount <= 0 || count <= 0 {
		return 0
	}
	if count >= maxCount {
		return 1
	}
	return float64(count) / float64(maxCount)
}
