package alerts_test

import (
	"mirrorbot/internal/alerts"
	"mirrorbot/pkg/domain"
	"testing"
)

func TestNear(t *testing.T) {
	brisbane := domain.LatLong{Lat: -27.46844, Long: 153.02334}
	// Ocean View (near Caboolture)
	oceanView := domain.LatLong{Lat: -27.127664662091, Long: 152.87902054721}
	noosa := domain.LatLong{Lat: -26.400054, Long: 153.0223421}

	cases := []struct {
		name     string
		point    *domain.LatLong
		centre   domain.LatLong
		radiusKm float64
		want     bool
	}{
		{
			name:     "ocean view is near brisbane at 50km",
			point:    &oceanView,
			centre:   brisbane,
			radiusKm: 50,
			want:     true,
		},
		{
			name:     "noosa is not near brisbane at 50km",
			point:    &noosa,
			centre:   brisbane,
			radiusKm: 50,
			want:     false,
		},
		{
			name:     "ocean view is not near brisbane at 30km",
			point:    &oceanView,
			centre:   brisbane,
			radiusKm: 30,
			want:     false,
		},
		{
			name:     "missing point counts as nearby",
			point:    nil,
			centre:   brisbane,
			radiusKm: 30,
			want:     true,
		},
		{
			name:     "lower box edge is included",
			point:    &domain.LatLong{Lat: 10, Long: 20},
			centre:   domain.LatLong{Lat: 9, Long: 19},
			radiusKm: 111,
			want:     true,
		},
		{
			name:     "upper box edge is excluded",
			point:    &domain.LatLong{Lat: 10, Long: 20},
			centre:   domain.LatLong{Lat: 11, Long: 21},
			radiusKm: 111,
			want:     false,
		},
		{
			name:     "point itself is inside its own box",
			point:    &brisbane,
			centre:   brisbane,
			radiusKm: 1,
			want:     true,
		},
	}

	for _, tc := range cases {
		got := alerts.Near(tc.point, tc.centre, tc.radiusKm)
		if got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}
