// Package fixture builds small synthetic floor plans for tests and examples.
package fixture

import (
	"github.com/paulmach/orb"

	"github.com/katalvlaran/indoornav/feature"
)

// Square returns a closed square polygon feature centred on (cx, cy).
//
// The ring is written without its closing vertex so that the arithmetic vertex
// mean equals the geometric centre exactly.
func Square(name string, floor int, cx, cy, half float64) feature.Feature {
	ring := orb.Ring{
		{cx - half, cy - half},
		{cx + half, cy - half},
		{cx + half, cy + half},
		{cx - half, cy + half},
	}

	return feature.Feature{
		Name:     name,
		Floor:    floor,
		Geometry: orb.Polygon{ring},
	}
}

// Rect is Square with independent half extents.
func Rect(name string, floor int, cx, cy, halfX, halfY float64) feature.Feature {
	ring := orb.Ring{
		{cx - halfX, cy - halfY},
		{cx + halfX, cy - halfY},
		{cx + halfX, cy + halfY},
		{cx - halfX, cy + halfY},
	}

	return feature.Feature{
		Name:     name,
		Floor:    floor,
		Geometry: orb.Polygon{ring},
	}
}

// Line returns a LineString feature.
func Line(name string, floor int, pts ...orb.Point) feature.Feature {
	return feature.Feature{
		Name:     name,
		Floor:    floor,
		Geometry: orb.LineString(pts),
	}
}

// ThreeRooms is the canonical RoomA – Corridor1 – RoomB layout on floor 1:
// centroids at (0,0), (0.001,0) and (0.002,0).
func ThreeRooms() []feature.Feature {
	return []feature.Feature{
		Square("RoomA", 1, 0, 0, 0.0002),
		Rect("Corridor1", 1, 0.001, 0, 0.0006, 0.0001),
		Square("RoomB", 1, 0.002, 0, 0.0002),
	}
}

// TwoFloorsElevator places RoomA on floor 0 and RoomB on floor 1, joined only
// by an elevator shaft named Elevator_1 present on both floors.
func TwoFloorsElevator() []feature.Feature {
	return []feature.Feature{
		Square("RoomA", 0, 0, 0, 0.0001),
		Square("Elevator_1", 0, 0.0005, 0, 0.00005),
		Square("Elevator_1", 1, 0.0005, 0, 0.00005),
		Square("RoomB", 1, 0.001, 0, 0.0001),
	}
}
