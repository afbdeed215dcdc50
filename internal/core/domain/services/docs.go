// Package services contains domain services that coordinate across
// aggregates without owning state. CourierMatcher feeds dispatch decisions
// with distance-based eligibility and nearest-first ranking.
package services
