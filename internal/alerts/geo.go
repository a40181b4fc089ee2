package alerts

import "mirrorbot/pkg/domain"

// kmPerDegree approximates how many kilometres one degree of latitude spans.
const kmPerDegree = 111.0

// Near reports whether centre falls inside a square box drawn around point.
// The box extends radiusKm (converted to degrees) in each direction and is
// half-open: the lower bound is included, the upper bound is not. Entries
// without a point cannot be placed, so they are treated as nearby rather
// than silently dropped.
func Near(point *domain.LatLong, centre domain.LatLong, radiusKm float64) bool {
	if point == nil {
		return true
	}

	offset := radiusKm / kmPerDegree

	return centre.Lat >= point.Lat-offset && centre.Lat < point.Lat+offset &&
		centre.Long >= point.Long-offset && centre.Long < point.Long+offset
}
