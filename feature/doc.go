// Package feature decodes floor-plan geometry into the flat Feature records
// consumed by the rest of indoornav.
//
// A Feature is one geometry unit of a building: a room polygon, a corridor
// strip, a stair footprint, a wall line. The input carries no topology, only
// geometry and a loose set of properties whose key names vary between data
// producers. Decoding resolves those aliases once:
//
//	name        ← name | id | room_id   (falls back to the GeoJSON feature id)
//	floor       ← floor | level | nivel (first non-null wins, default 0)
//	height      ← height | altura
//	base height ← base_height | base_heigh | baseHeight
//	kind        ← type | tipo
//
// Geometry is kept as orb.Geometry. Polygon, MultiPolygon and LineString are
// recognised; positions may be [lon, lat] or [lon, lat, z], the elevation
// component is dropped on decode (heights are read from properties instead).
//
// Decoding never fails on odd property values: an unparsable floor becomes
// floor 0 and an unparsable height is treated as absent. Only malformed JSON
// is reported as an error.
package feature
