package needle

import (
	"fmt"
	"math"

	"github.com/rufus-stone/haystack/errs"
)

// EarthRadiusMeters is the spherical mean radius used for haversine
// distance, consistent between discombobulate and Matches per spec §9.
const EarthRadiusMeters = 6371000.0

// Location is a semantic geocoordinate target.
//
// Tolerance, when set, is a distance in meters; Matches computes the
// great-circle (haversine) distance between lhs and rhs, truncates both
// the distance and the tolerance to whole meters, and compares.
type Location struct {
	Lat, Lon  float64
	Tolerance *float64
}

var _ Needle = Location{}

func validLatLon(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %f out of range [-90,90]", errs.ErrInvalidInput, lat)
	}

	if lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude %f out of range [-180,180]", errs.ErrInvalidInput, lon)
	}

	return nil
}

// NewLocation constructs an exact-match Location needle, validating that
// lat and lon are within their legal ranges.
func NewLocation(lat, lon float64) (Needle, error) {
	if err := validLatLon(lat, lon); err != nil {
		return nil, err
	}

	return Location{Lat: lat, Lon: lon}, nil
}

// NewLocationWithTolerance constructs a Location needle that matches any
// point within tolerance meters, validating lat/lon ranges.
func NewLocationWithTolerance(lat, lon, toleranceMeters float64) (Needle, error) {
	if err := validLatLon(lat, lon); err != nil {
		return nil, err
	}

	return Location{Lat: lat, Lon: lon, Tolerance: &toleranceMeters}, nil
}

func (Location) Kind() Kind { return KindLocation }

// HaversineMeters returns the great-circle distance between two
// lat/lon points in meters, assuming a sphere of radius
// EarthRadiusMeters.
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	const degToRad = math.Pi / 180

	phi1 := lat1 * degToRad
	phi2 := lat2 * degToRad
	dPhi := (lat2 - lat1) * degToRad
	dLambda := (lon2 - lon1) * degToRad

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

func (lhs Location) Matches(rhs Needle) bool {
	r, ok := rhs.(Location)
	if !ok {
		return false
	}

	if r.Tolerance == nil {
		return lhs.Lat == r.Lat && lhs.Lon == r.Lon
	}

	distance := int64(HaversineMeters(lhs.Lat, lhs.Lon, r.Lat, r.Lon))
	tolerance := int64(absFloat64(*r.Tolerance))

	return distance <= tolerance
}
