// Package enhance inserts intermediate waypoints into a room-centroid route so
// that rendered paths hug corridor boundaries instead of cutting through walls.
//
// For every consecutive same-floor pair whose centroids are further apart than
// the threshold (0.0003 native units by default):
//
//	corridor ↔ room      one point: the corridor vertex nearest the room centroid
//	corridor ↔ corridor  up to MaxCorridorPoints points spread from the entry
//	                     vertex of the first corridor to the exit vertex of the second
//	room ↔ room          one midpoint named "transition"
//
// A floor change whose ends are further apart than the threshold gets one
// landing point: the stairs or elevator copied onto the other floor.
//
// Inserted points carry IsWaypoint = true. Point order is preserved and the
// input slice is not modified.
package enhance
