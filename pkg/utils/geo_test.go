package utils

import (
	"math"
	"testing"
)

func TestParsePointWKT(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLat float64
		wantLng float64
		wantOK  bool
	}{
		{
			name:    "plain point",
			input:   "POINT(120.334 22.56)",
			wantLat: 22.56,
			wantLng: 120.334,
			wantOK:  true,
		},
		{
			name:    "srid prefix",
			input:   "SRID=4326;POINT(121.5 25.03)",
			wantLat: 25.03,
			wantLng: 121.5,
			wantOK:  true,
		},
		{
			name:    "lowercase with spaces",
			input:   "  point( -73.99  40.73 ) ",
			wantLat: 40.73,
			wantLng: -73.99,
			wantOK:  true,
		},
		{
			name:   "empty string",
			input:  "",
			wantOK: false,
		},
		{
			name:   "not a point",
			input:  "LINESTRING(0 0, 1 1)",
			wantOK: false,
		},
		{
			name:   "single token",
			input:  "POINT(120.334)",
			wantOK: false,
		},
		{
			name:   "non numeric tokens",
			input:  "POINT(lon lat)",
			wantOK: false,
		},
		{
			name:   "missing closing paren",
			input:  "POINT(120.334 22.56",
			wantOK: false,
		},
		{
			name:   "pointz form rejected",
			input:  "POINTZ(120.334 22.56 10)",
			wantOK: false,
		},
		{
			name:   "pointm form rejected",
			input:  "POINTM(120.334 22.56 5)",
			wantOK: false,
		},
		{
			name:   "dimension token before paren rejected",
			input:  "POINT Z (120.334 22.56 10)",
			wantOK: false,
		},
		{
			name:   "trailing garbage rejected",
			input:  "POINT(120.334 22.56) extra",
			wantOK: false,
		},
		{
			name:    "space before paren still a point",
			input:   "POINT (120.334 22.56)",
			wantLat: 22.56,
			wantLng: 120.334,
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePointWKT(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Lat != tt.wantLat || got.Lng != tt.wantLng {
				t.Errorf("got {lat %v, lng %v}, want {lat %v, lng %v}",
					got.Lat, got.Lng, tt.wantLat, tt.wantLng)
			}
		})
	}
}

func TestResolveCoordinate(t *testing.T) {
	lat, lng := 22.62, 120.3

	if got := ResolveCoordinate(&lat, &lng, "POINT(1 1)"); got == nil || got.Lat != 22.62 || got.Lng != 120.3 {
		t.Errorf("structured columns should win over WKT, got %+v", got)
	}
	if got := ResolveCoordinate(nil, nil, "POINT(120.3 22.62)"); got == nil || got.Lat != 22.62 || got.Lng != 120.3 {
		t.Errorf("WKT fallback failed, got %+v", got)
	}
	if got := ResolveCoordinate(&lat, nil, ""); got != nil {
		t.Errorf("half a structured pair should resolve to nil, got %+v", got)
	}
	if got := ResolveCoordinate(nil, nil, "not a point"); got != nil {
		t.Errorf("malformed WKT should resolve to nil, got %+v", got)
	}
}

func TestHaversineKm(t *testing.T) {
	kaohsiung := LatLng{Lat: 22.6273, Lng: 120.3014}
	taipei := LatLng{Lat: 25.033, Lng: 121.5654}

	if d := HaversineKm(kaohsiung, kaohsiung); d > 1e-6 {
		t.Errorf("distance to self = %v, want 0", d)
	}

	ab := HaversineKm(kaohsiung, taipei)
	ba := HaversineKm(taipei, kaohsiung)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", ab, ba)
	}

	// Kaohsiung to Taipei is roughly 295 km along the great circle.
	if ab < 280 || ab > 310 {
		t.Errorf("Kaohsiung-Taipei distance = %v km, expected ~295 km", ab)
	}

	if d := HaversineKm(LatLng{Lat: 0, Lng: 0}, LatLng{Lat: 0, Lng: 180}); math.Abs(d-math.Pi*EarthRadiusKm) > 1.0 {
		t.Errorf("antipodal equator distance = %v, want ~%v", d, math.Pi*EarthRadiusKm)
	}
}
