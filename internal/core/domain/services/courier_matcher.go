package services

import (
	"errors"
	"sort"

	"domicilios/internal/core/domain/model/courier"
	"domicilios/internal/core/domain/model/kernel"
)

// DefaultMaxDistanceKm is the dispatch radius used when a caller does not
// supply one.
const DefaultMaxDistanceKm = 5.0

// ErrNoCourierInRange is returned when no available courier lies within the
// requested radius of the origin point.
var ErrNoCourierInRange = errors.New("no available courier in range")

// RankedCourier pairs a courier with its computed distance from the origin,
// rounded to two decimals for display and storage.
type RankedCourier struct {
	Courier    *courier.Courier
	DistanceKm float64
}

// CourierMatcher is the domain service behind geographic dispatch decisions.
// It filters couriers by availability and radius and ranks them by
// great-circle proximity.
//
// Ranking rules:
//   - only couriers with available == true are considered
//   - distance is haversine from the origin to the courier's last position
//   - couriers beyond maxDistanceKm are dropped
//   - result is ascending by distance; equal distances keep their input order
type CourierMatcher struct{}

// NewCourierMatcher creates a CourierMatcher.
func NewCourierMatcher() CourierMatcher {
	return CourierMatcher{}
}

// RankNearby returns the available couriers within maxDistanceKm of origin,
// nearest first. A non-positive maxDistanceKm falls back to
// DefaultMaxDistanceKm.
func (m CourierMatcher) RankNearby(
	origin kernel.GeoPoint,
	couriers []*courier.Courier,
	maxDistanceKm float64,
) ([]RankedCourier, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}
	if maxDistanceKm <= 0 {
		maxDistanceKm = DefaultMaxDistanceKm
	}

	ranked := make([]RankedCourier, 0, len(couriers))
	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if !c.Available() {
			continue
		}

		distance, err := c.Location().DistanceKm(origin)
		if err != nil {
			return nil, err
		}
		if distance > maxDistanceKm {
			continue
		}

		ranked = append(ranked, RankedCourier{
			Courier:    c,
			DistanceKm: kernel.Round2(distance),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	return ranked, nil
}

// Nearest returns the closest available courier within maxDistanceKm of
// origin, or ErrNoCourierInRange when none qualifies.
func (m CourierMatcher) Nearest(
	origin kernel.GeoPoint,
	couriers []*courier.Courier,
	maxDistanceKm float64,
) (*courier.Courier, error) {
	ranked, err := m.RankNearby(origin, couriers, maxDistanceKm)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, ErrNoCourierInRange
	}

	return ranked[0].Courier, nil
}
