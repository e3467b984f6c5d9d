package utils

import (
	"math"
	"strconv"
	"strings"
)

const EarthRadiusKm = 6371.0

// LatLng is a geographic coordinate in degrees.
type LatLng struct {
	Lat float64
	Lng float64
}

// ParsePointWKT parses a well-known-text point of the form "POINT(lon lat)".
// An optional "SRID=nnnn;" prefix is tolerated. Note the token order: longitude
// comes first in the text form, while the returned struct carries named fields.
// Anything malformed yields ok=false; that is a normal outcome, not an error.
func ParsePointWKT(s string) (LatLng, bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ';'); i >= 0 && strings.HasPrefix(strings.ToUpper(s), "SRID=") {
		s = s[i+1:]
	}
	if !strings.HasPrefix(strings.ToUpper(s), "POINT") {
		return LatLng{}, false
	}
	// Only a plain 2D point qualifies: nothing but whitespace may sit
	// between the POINT keyword and the parenthesis, which rules out the
	// POINTZ/POINTM family.
	rest := strings.TrimSpace(s[len("POINT"):])
	if !strings.HasPrefix(rest, "(") {
		return LatLng{}, false
	}
	end := strings.IndexByte(rest, ')')
	if end < 0 || strings.TrimSpace(rest[end+1:]) != "" {
		return LatLng{}, false
	}
	fields := strings.Fields(rest[1:end])
	if len(fields) != 2 {
		return LatLng{}, false
	}
	lng, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return LatLng{}, false
	}
	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return LatLng{}, false
	}
	return LatLng{Lat: lat, Lng: lng}, true
}

// ResolveCoordinate normalizes the two location shapes the store may hold:
// structured lat/lng columns take precedence, then a WKT text form. Returns
// nil when neither yields a usable coordinate.
func ResolveCoordinate(lat, lng *float64, wkt string) *LatLng {
	if lat != nil && lng != nil {
		return &LatLng{Lat: *lat, Lng: *lng}
	}
	if wkt != "" {
		if ll, ok := ParsePointWKT(wkt); ok {
			return &ll
		}
	}
	return nil
}

// HaversineKm computes the great-circle distance between two coordinates
// in kilometers.
func HaversineKm(a, b LatLng) float64 {
	lat1 := degreesToRadians(a.Lat)
	lat2 := degreesToRadians(b.Lat)
	deltaLat := degreesToRadians(b.Lat - a.Lat)
	deltaLng := degreesToRadians(b.Lng - a.Lng)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
