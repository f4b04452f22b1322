package navgraph

import (
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/indoornav/room"
)

// Build constructs the navigation graph over the rooms of ix.
//
// Steps:
//  1. apply options; an invalid link surfaces as ErrOptionViolation;
//  2. keep navigable rooms, restricted to the target floor when set;
//  3. for every ordered pair (u, v), u ≠ v, pick the link class and add
//     u → v when the centroid distance is below its threshold.
//
// Nodes and neighbor lists follow key order (floor, then name), so two builds
// over the same input are identical.
func Build(ix *room.Index, opts ...Option) (*Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if ix == nil {
		return nil, ErrNilIndex
	}

	g := &Graph{
		nodes: make(map[room.Key]*Node),
		opts:  cfg,
	}

	for _, r := range ix.Rooms() {
		if !r.Role.Navigable() {
			continue
		}
		if cfg.TargetFloor != nil && r.Floor != *cfg.TargetFloor {
			continue
		}
		g.nodes[r.Key] = &Node{
			Key:      r.Key,
			Room:     r,
			Centroid: r.Centroid,
			Corridor: r.Role.IsCorridor(),
		}
		g.keys = append(g.keys, r.Key)
	}

	for _, uk := range g.keys {
		u := g.nodes[uk]
		for _, vk := range g.keys {
			if uk == vk {
				continue
			}
			v := g.nodes[vk]
			w, ok := cfg.weight(u, v)
			if !ok {
				continue
			}
			u.Neighbors = append(u.Neighbors, Neighbor{Key: vk, Weight: w, Corridor: v.Corridor})
			g.edges++
		}
	}

	return g, nil
}

// weight decides whether u → v exists and returns its cost.
func (o Options) weight(u, v *Node) (float64, bool) {
	d := planar.Distance(u.Centroid, v.Centroid)

	if u.Key.Floor != v.Key.Floor {
		if abs(u.Key.Floor-v.Key.Floor) != 1 {
			return 0, false
		}
		if !u.Room.Role.IsVerticalConnector() && !v.Room.Role.IsVerticalConnector() {
			return 0, false
		}
		if d >= o.Vertical.Threshold {
			return 0, false
		}
		return d * o.Vertical.Multiplier, true
	}

	l := o.linkFor(u.Corridor, v.Corridor)
	if d >= l.Threshold {
		return 0, false
	}

	return d * l.Multiplier, true
}

func (o Options) linkFor(a, b bool) Link {
	switch {
	case a && b:
		return o.Corridor
	case a || b:
		return o.Mixed
	default:
		return o.Room
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
