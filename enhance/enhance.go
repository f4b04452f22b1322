package enhance

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/indoornav/room"
	"github.com/katalvlaran/indoornav/route"
)

// Defaults for AddWaypoints.
const (
	DefaultThreshold         = 0.0003
	DefaultMaxCorridorPoints = 5

	// TransitionName names the midpoint inserted between two regular rooms.
	TransitionName = "transition"
)

// Options configures AddWaypoints.
type Options struct {
	// Threshold is the centroid distance, in native units, above which a pair is enhanced.
	Threshold float64

	// MaxCorridorPoints caps the points inserted between two corridors.
	MaxCorridorPoints int
}

// Option customises AddWaypoints. Out-of-range values are ignored.
type Option func(*Options)

// DefaultOptions returns the stock threshold and corridor cap.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold, MaxCorridorPoints: DefaultMaxCorridorPoints}
}

// WithThreshold sets the enhancement distance threshold; non-positive values are ignored.
func WithThreshold(t float64) Option {
	return func(o *Options) {
		if t > 0 {
			o.Threshold = t
		}
	}
}

// WithMaxCorridorPoints caps corridor interpolation; values below 1 are ignored.
func WithMaxCorridorPoints(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MaxCorridorPoints = n
		}
	}
}

// AddWaypoints returns path with boundary waypoints inserted between distant
// neighbours. Paths shorter than two points are returned as a copy.
func AddWaypoints(path []route.Point, opts ...Option) []route.Point {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make([]route.Point, 0, len(path))
	for i, p := range path {
		if i > 0 {
			out = append(out, cfg.between(path[i-1], p)...)
		}
		out = append(out, p)
	}
	return out
}

func (o Options) between(a, b route.Point) []route.Point {
	d := planar.Distance(a.Coords, b.Coords)
	if d <= o.Threshold {
		return nil
	}
	if a.Floor != b.Floor {
		return landing(a, b)
	}

	switch {
	case a.IsCorridor() && b.IsCorridor():
		return o.corridorRun(a, b, d)
	case a.IsCorridor():
		return []route.Point{boundary(a, b)}
	case b.IsCorridor():
		return []route.Point{boundary(b, a)}
	default:
		return []route.Point{transition(a, b)}
	}
}

// boundary picks the corridor vertex nearest the other room's centroid. A
// corridor without vertices falls back to the other room's own boundary.
func boundary(corridor, other route.Point) route.Point {
	if v, ok := nearest(corridor.Vertices(), other.Coords); ok {
		return waypointAt(corridor, v)
	}
	if v, ok := nearest(other.Vertices(), corridor.Coords); ok {
		return waypointAt(other, v)
	}
	return waypointAt(corridor, corridor.Coords)
}

// corridorRun spreads points from the entry vertex of a (nearest b) to the
// exit vertex of b (nearest a). Points in the first half inherit from a.
func (o Options) corridorRun(a, b route.Point, d float64) []route.Point {
	entry, ok := nearest(a.Vertices(), b.Coords)
	if !ok {
		entry = a.Coords
	}
	exit, ok := nearest(b.Vertices(), a.Coords)
	if !ok {
		exit = b.Coords
	}

	n := int(math.Floor(d / o.Threshold))
	if n > o.MaxCorridorPoints {
		n = o.MaxCorridorPoints
	}
	if n == 1 {
		return []route.Point{waypointAt(b, lerp(entry, exit, 0.5))}
	}

	out := make([]route.Point, 0, n)
	for k := 0; k < n; k++ {
		t := float64(k) / float64(n-1)
		src := a
		if t >= 0.5 {
			src = b
		}
		out = append(out, waypointAt(src, lerp(entry, exit, t)))
	}
	return out
}

func transition(a, b route.Point) route.Point {
	return route.Point{
		Coords:     lerp(a.Coords, b.Coords, 0.5),
		Floor:      a.Floor,
		Name:       TransitionName,
		Key:        room.Key{Name: TransitionName, Floor: a.Floor},
		Role:       room.RoleRegular,
		Elevation:  (a.Elevation + b.Elevation) / 2,
		IsWaypoint: true,
	}
}

// landing places the vertical connector of a floor change on the other
// floor, so the ride is drawn straight up or down and the walk to or from
// the shaft stays on one floor.
func landing(a, b route.Point) []route.Point {
	switch {
	case a.Role.IsVerticalConnector():
		return []route.Point{onFloor(waypointAt(a, a.Coords), b)}
	case b.Role.IsVerticalConnector():
		return []route.Point{onFloor(waypointAt(b, b.Coords), a)}
	default:
		return nil
	}
}

func onFloor(p, ref route.Point) route.Point {
	p.Floor = ref.Floor
	p.Key.Floor = ref.Floor
	p.Elevation = ref.Elevation
	return p
}

func waypointAt(src route.Point, at orb.Point) route.Point {
	src.Coords = at
	src.IsWaypoint = true
	return src
}

// nearest returns the point of pts closest to target; the first wins on ties.
func nearest(pts []orb.Point, target orb.Point) (orb.Point, bool) {
	if len(pts) == 0 {
		return orb.Point{}, false
	}
	best, bestD := pts[0], planar.DistanceSquared(pts[0], target)
	for _, p := range pts[1:] {
		if d := planar.DistanceSquared(p, target); d < bestD {
			best, bestD = p, d
		}
	}
	return best, true
}

func lerp(a, b orb.Point, t float64) orb.Point {
	return orb.Point{a[0] + (b[0]-a[0])*t, a[1] + (b[1]-a[1])*t}
}
