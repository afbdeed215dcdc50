package kernel

import (
	"errors"
	"fmt"
	"math"

	"domicilios/internal/pkg/errs"
	"domicilios/internal/pkg/guard"
)

const (
	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0

	// Service-area bounding box: Medellín and its metropolitan area.
	serviceAreaMinLat = 6.0
	serviceAreaMaxLat = 6.5
	serviceAreaMinLng = -75.8
	serviceAreaMaxLng = -75.4
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. Points must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errors.New("GeoPoint must be created via NewGeoPoint constructor")

// GeoPoint is an immutable latitude/longitude pair with validated coordinates.
// The zero value is invalid and fails validation; use NewGeoPoint.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(6.2088, -75.5704)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(point) // GeoPoint(6.208800,-75.570400)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the given coordinates.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
func NewGeoPoint(lat float64, lng float64) (GeoPoint, error) {
	point := GeoPoint{guard: guard.NewConstructorGuard()}

	if err := errors.Join(point.setLat(lat), point.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks that the GeoPoint was created through NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in decimal degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in decimal degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lat, p.lng)
}

// IsEqual compares two points for coordinate equality.
// Both points must be properly constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p == other, nil
}

// DistanceKm returns the great-circle distance to another point in kilometers,
// computed with the haversine formula. The result is symmetric and zero for
// identical points.
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := toRadians(other.lat - p.lat)
	dLng := toRadians(other.lng - p.lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(p.lat))*math.Cos(toRadians(other.lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c, nil
}

// InServiceArea reports whether the point lies inside the fixed service-area
// bounding box. Callers decide how to react; this is never an error.
func (p GeoPoint) InServiceArea() bool {
	return p.lat >= serviceAreaMinLat && p.lat <= serviceAreaMaxLat &&
		p.lng >= serviceAreaMinLng && p.lng <= serviceAreaMaxLng
}

// Round2 rounds a kilometer distance to two decimal places, the precision the
// rest of the system stores and reports.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (p *GeoPoint) setLat(lat float64) error {
	if lat < -90 || lat > 90 {
		return errs.NewValueIsOutOfRangeError("lat", lat, -90.0, 90.0)
	}

	p.lat = lat
	return nil
}

func (p *GeoPoint) setLng(lng float64) error {
	if lng < -180 || lng > 180 {
		return errs.NewValueIsOutOfRangeError("lng", lng, -180.0, 180.0)
	}

	p.lng = lng
	return nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
