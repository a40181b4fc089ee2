package domain

// LatLong is a geographic point in decimal degrees.
type LatLong struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}
