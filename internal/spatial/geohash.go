package spatial

// Base32 encoding for geohash
const base32 = "0123456789bcdefghjkmnpqrstuvwxyz"

// EncodeGeohash encodes latitude and longitude into a geohash string
// precision: number of characters in the geohash (1-12)
func EncodeGeohash(lat, lon float64, precision int) string {
	if precision < 1 {
		precision = 1
	}
	if precision > 12 {
		precision = 12
	}

	latRange := []float64{-90.0, 90.0}
	lonRange := []float64{-180.0, 180.0}

	geohash := make([]byte, 0, precision)
	bits := 0
	bit := 0
	ch := 0

	for len(geohash) < precision {
		if bit%2 == 0 {
			// Longitude
			mid := (lonRange[0] + lonRange[1]) / 2
			if lon > mid {
				ch |= (1 << (4 - bits))
				lonRange[0] = mid
			} else {
				lonRange[1] = mid
			}
		} else {
			// Latitude
			mid := (latRange[0] + latRange[1]) / 2
			if lat > mid {
				ch |= (1 << (4 - bits))
				latRange[0] = mid
			} else {
				latRange[1] = mid
			}
		}

		bits++
		if bits == 5 {
			geohash = append(geohash, base32[ch])
			bits = 0
			ch = 0
		}
		bit++
	}

	return string(geohash)
}

// DecodeGeohash decodes a geohash string into latitude and longitude
// Returns center point of the geohash cell
func DecodeGeohash(geohash string) (lat, lon float64) {
	latRange := []float64{-90.0, 90.0}
	lonRange := []float64{-180.0, 180.0}

	isLon := true
	for i := 0; i < len(geohash); i++ {
		ch := geohash[i]
		idx := indexOfBase32(ch)
		if idx == -1 {
			continue
		}

		for mask := 16; mask > 0; mask >>= 1 {
			if isLon {
				mid := (lonRange[0] + lonRange[1]) / 2
				if idx&mask != 0 {
					lonRange[0] = mid
				} else {
					lonRange[1] = mid
				}
			} else {
				mid := (latRange[0] + latRange[1]) / 2
				if idx&mask != 0 {
					latRange[0] = mid
				} else {
					latRange[1] = mid
				}
			}
			isLon = !isLon
		}
	}

	lat = (latRange[0] + latRange[1]) / 2
	lon = (lonRange[0] + lonRange[1]) / 2
	return
}

// GeohashCellSize returns the approximate cell size in meters for a given precision
func GeohashCellSize(precision int) float64 {
	// Approximate cell sizes at equator
	sizes := map[int]float64{
		1:  5000000, // ±2500 km
		2:  625000,  // ±312.5 km
		3:  123000,  // ±61.5 km
		4:  19500,   // ±9.75 km
		5:  3900,    // ±1.95 km
		6:  610,     // ±305 m
		7:  120,     // ±60 m
		8:  19,      // ±9.5 m
		9:  3.7,     // ±1.85 m
		10: 0.6,     // ±30 cm
		11: 0.12,    // ±6 cm
		12: 0.019,   // ±0.95 cm
	}

	if size, ok := sizes[precision]; ok {
		return size
	}
	return 0
}

// PrecisionForDistance returns the geohash precision whose cells are at most
// the given distance across
func PrecisionForDistance(distanceMeters float64) int {
	for precision := 1; precision <= 12; precision++ {
		if GeohashCellSize(precision) <= distanceMeters {
			return precision
		}
	}
	return 12
}

// PrecisionForZoom maps a web-map zoom level to a geohash clustering
// precision. Zoom 0-2 shows continents, zoom 10+ is where drilldown replaces
// clusters, so the cluster path only ever sees precisions up to 6.
func PrecisionForZoom(zoom int) int {
	switch {
	case zoom <= 2:
		return 2
	case zoom <= 5:
		return 3
	case zoom <= 7:
		return 4
	case zoom <= 9:
		return 5
	default:
		return 6
	}
}

// indexOfBase32 finds the index of a character in the base32 alphabet
func indexOfBase32(ch byte) int {
	for i := 0; i < len(base32); i++ {
		if base32[i] == ch {
			return i
		}
	}
	return -1
}
