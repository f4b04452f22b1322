// Package room groups raw floor-plan features into logical rooms.
//
// A room is every feature sharing the same (name, floor) pair. Its centroid is
// the arithmetic mean of all outer-ring vertices of all member features. That is
// not a true area centroid, but it is only ever used for relative proximity and
// display, so the approximation is sufficient. A room without vertices sits at
// the origin (0, 0); this degenerate case is tolerated, never reported.
//
// Each room is classified exactly once, at grouping time, into a Role:
//
//	RoleStructural – floor slabs, structure, voids, exterior shells; indexed but not navigable
//	RoleElevator   – elevator / elevador / lift
//	RoleStairs     – stair / escada / escalera
//	RoleCorridor   – hall, corridor, lobby, passage and their variants
//	RoleRegular    – everything else
//
// Downstream packages switch on the Role rather than re-matching names.
//
// Lookup is by explicit Key. Index.Find performs a case-insensitive name match
// and returns every floor the name occurs on, leaving disambiguation to the caller.
package room
