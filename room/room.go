package room

import (
	"fmt"
	"sort"
	"strings"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/indoornav/feature"
)

// Key identifies a room uniquely within one feature collection.
type Key struct {
	Name  string `json:"name"`
	Floor int    `json:"floor"`
}

// String renders the key as "<name>_F<floor>".
func (k Key) String() string { return fmt.Sprintf("%s_F%d", k.Name, k.Floor) }

// Less orders keys by floor, then by name.
func (k Key) Less(o Key) bool {
	if k.Floor != o.Floor {
		return k.Floor < o.Floor
	}
	return k.Name < o.Name
}

// Room is the set of features sharing one Key.
type Room struct {
	Key
	Role     Role              `json:"role"`
	Centroid orb.Point         `json:"centroid"`
	Features []feature.Feature `json:"-"`
}

// Vertices returns the outer-ring vertices of all member features, in member order.
func (r *Room) Vertices() []orb.Point {
	var pts []orb.Point
	for _, f := range r.Features {
		pts = append(pts, f.OuterVertices()...)
	}
	return pts
}

// Height returns the largest height among members, and false when none carries one.
func (r *Room) Height() (float64, bool) {
	var (
		best  float64
		found bool
	)
	for _, f := range r.Features {
		if f.Height == nil {
			continue
		}
		if !found || *f.Height > best {
			best, found = *f.Height, true
		}
	}
	return best, found
}

// BaseHeight returns the smallest base height among members, and false when none carries one.
func (r *Room) BaseHeight() (float64, bool) {
	var (
		best  float64
		found bool
	)
	for _, f := range r.Features {
		if f.BaseHeight == nil {
			continue
		}
		if !found || *f.BaseHeight < best {
			best, found = *f.BaseHeight, true
		}
	}
	return best, found
}

// Index is the result of grouping a feature collection into rooms.
// It is immutable once built and safe for concurrent reads.
type Index struct {
	rooms map[Key]*Room
	keys  []Key // sorted by Key.Less
}

// Group partitions features by (name, floor), computes centroids and classifies roles.
// Every input feature lands in exactly one room.
func Group(features []feature.Feature) *Index {
	ix := &Index{rooms: make(map[Key]*Room)}

	for _, f := range features {
		k := Key{Name: f.Name, Floor: f.Floor}
		r, ok := ix.rooms[k]
		if !ok {
			r = &Room{Key: k}
			ix.rooms[k] = r
			ix.keys = append(ix.keys, k)
		}
		r.Features = append(r.Features, f)
	}

	for _, r := range ix.rooms {
		r.Role = Classify(r.Key.Name, r.kindHint())
		r.Centroid = centroid(r.Vertices())
	}
	sort.Slice(ix.keys, func(i, j int) bool { return ix.keys[i].Less(ix.keys[j]) })

	return ix
}

// kindHint is the first non-empty type hint among the member features.
func (r *Room) kindHint() string {
	for _, f := range r.Features {
		if f.Kind != "" {
			return f.Kind
		}
	}
	return ""
}

// centroid is the arithmetic vertex mean; no vertices gives the origin.
func centroid(pts []orb.Point) orb.Point {
	if len(pts) == 0 {
		return orb.Point{}
	}
	var sx, sy float64
	for _, p := range pts {
		sx += p[0]
		sy += p[1]
	}
	n := float64(len(pts))
	return orb.Point{sx / n, sy / n}
}

// Len returns the number of rooms.
func (ix *Index) Len() int { return len(ix.keys) }

// Get returns the room stored under k.
func (ix *Index) Get(k Key) (*Room, bool) {
	r, ok := ix.rooms[k]
	return r, ok
}

// Keys returns all keys ordered by floor, then name.
func (ix *Index) Keys() []Key { return append([]Key(nil), ix.keys...) }

// Rooms returns all rooms in Keys order.
func (ix *Index) Rooms() []*Room {
	out := make([]*Room, 0, len(ix.keys))
	for _, k := range ix.keys {
		out = append(out, ix.rooms[k])
	}
	return out
}

// Floors returns the distinct floors present, ascending.
func (ix *Index) Floors() []int {
	var floors []int
	for _, k := range ix.keys {
		if len(floors) == 0 || floors[len(floors)-1] != k.Floor {
			floors = append(floors, k.Floor)
		}
	}
	return floors
}

// Find returns the keys of every room whose name equals name, ignoring case,
// ordered by floor. An empty name matches nothing.
func (ix *Index) Find(name string) []Key {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	var out []Key
	for _, k := range ix.keys {
		if strings.EqualFold(k.Name, name) {
			out = append(out, k)
		}
	}
	return out
}
