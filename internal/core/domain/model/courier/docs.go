// Package courier contains the Courier aggregate. A courier's availability
// and current-order binding are coupled by invariant and only mutate
// together through Take and Release, which the dispatch coordinator drives.
package courier
