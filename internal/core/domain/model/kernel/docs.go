// Package kernel contains shared domain primitives used across aggregates.
// Its central type is GeoPoint, a validated latitude/longitude value object
// providing great-circle distance (haversine) and the service-area check
// that gates order creation.
package kernel
