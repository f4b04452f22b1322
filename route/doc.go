// Package route holds the ordered route-point model shared by the enhancer,
// the directions generator and the navigation facade.
//
// A route is a plain []Point. Coordinates are in the feature collection's
// native units (longitude/latitude degrees for GeoJSON input). Distance sums
// planar segment lengths in those units; ApproxMeters converts with the flat
// 111 000 m-per-degree factor used for display. Step-level statistics in the
// directions package use a Haversine distance instead, so the two figures
// differ slightly away from the equator.
package route
