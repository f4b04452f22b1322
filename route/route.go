package route

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/indoornav/feature"
	"github.com/katalvlaran/indoornav/navgraph"
	"github.com/katalvlaran/indoornav/room"
)

// DegreesToMeters is the flat conversion factor applied by ApproxMeters.
const DegreesToMeters = 111000.0

// ErrUnknownKey indicates that Resolve met a key absent from the graph.
var ErrUnknownKey = errors.New("route: key not in graph")

// Point is one position along a route.
type Point struct {
	Coords     orb.Point         `json:"coords"`
	Floor      int               `json:"floor"`
	Name       string            `json:"name"`
	Key        room.Key          `json:"key"`
	Role       room.Role         `json:"role"`
	Features   []feature.Feature `json:"-"`
	Elevation  float64           `json:"elevation"`
	IsWaypoint bool              `json:"isWaypoint,omitempty"`
}

// Vertices returns the outer-ring vertices of the point's features.
func (p Point) Vertices() []orb.Point {
	var pts []orb.Point
	for _, f := range p.Features {
		pts = append(pts, f.OuterVertices()...)
	}
	return pts
}

// IsCorridor reports whether the point lies in circulation space.
func (p Point) IsCorridor() bool { return p.Role.IsCorridor() }

// FromRoom places a point at the centroid of r.
func FromRoom(r *room.Room) Point {
	p := Point{
		Coords:   r.Centroid,
		Floor:    r.Floor,
		Name:     r.Name,
		Key:      r.Key,
		Role:     r.Role,
		Features: r.Features,
	}
	if base, ok := r.BaseHeight(); ok {
		p.Elevation = base
	}
	return p
}

// Resolve maps a key sequence onto centroid points.
func Resolve(g *navgraph.Graph, keys []room.Key) ([]Point, error) {
	out := make([]Point, 0, len(keys))
	for _, k := range keys {
		n, ok := g.Node(k)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKey, k)
		}
		out = append(out, FromRoom(n.Room))
	}
	return out, nil
}

// Distance sums planar segment lengths in native units. Floor changes add nothing.
func Distance(path []Point) float64 {
	var d float64
	for i := 1; i < len(path); i++ {
		d += planar.Distance(path[i-1].Coords, path[i].Coords)
	}
	return d
}

// ApproxMeters converts a native-unit distance with DegreesToMeters.
func ApproxMeters(d float64) float64 { return d * DegreesToMeters }

// Floors returns the floors visited, in order of first appearance.
func Floors(path []Point) []int {
	var out []int
	seen := map[int]bool{}
	for _, p := range path {
		if !seen[p.Floor] {
			seen[p.Floor] = true
			out = append(out, p.Floor)
		}
	}
	return out
}
