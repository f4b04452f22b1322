// Package dijkstra_test contains unit tests for the exact room search.
// These tests validate input checks, distances on small floor plans,
// MaxDistance, InfEdgeThreshold and path reconstruction.
package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/indoornav/dijkstra"
	"github.com/katalvlaran/indoornav/feature"
	"github.com/katalvlaran/indoornav/internal/fixture"
	"github.com/katalvlaran/indoornav/navgraph"
	"github.com/katalvlaran/indoornav/room"
)

var (
	roomA     = room.Key{Name: "RoomA", Floor: 1}
	corridor1 = room.Key{Name: "Corridor1", Floor: 1}
	roomB     = room.Key{Name: "RoomB", Floor: 1}
	annex     = room.Key{Name: "Annex", Floor: 1}
)

// buildThreeRooms returns RoomA, Corridor1 and RoomB in a row plus an isolated Annex.
func buildThreeRooms(t *testing.T) *navgraph.Graph {
	t.Helper()
	fs := append(fixture.ThreeRooms(), fixture.Square("Annex", 1, 1, 1, 0.0001))
	g, err := navgraph.Build(room.Group(fs))
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	g := buildThreeRooms(t)
	if _, _, err := dijkstra.Dijkstra(g); err != dijkstra.ErrEmptySource {
		t.Fatalf("Expected ErrEmptySource, got %v", err)
	}
}

func TestDijkstra_NilGraphWithoutSource(t *testing.T) {
	// ErrEmptySource has priority over ErrNilGraph.
	if _, _, err := dijkstra.Dijkstra(nil); err != dijkstra.ErrEmptySource {
		t.Fatalf("Expected ErrEmptySource, got %v", err)
	}
}

func TestDijkstra_NilGraphWithSource(t *testing.T) {
	if _, _, err := dijkstra.Dijkstra(nil, dijkstra.Source(roomA)); err != dijkstra.ErrNilGraph {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := buildThreeRooms(t)
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source(room.Key{Name: "Gym"}))
	if !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Fatalf("Expected ErrVertexNotFound, got %v", err)
	}
}

func TestDijkstra_InvalidOptions(t *testing.T) {
	g := buildThreeRooms(t)
	cases := []struct {
		name string
		opt  dijkstra.Option
		want error
	}{
		{"MaxDistance", dijkstra.WithMaxDistance(-1), dijkstra.ErrBadMaxDistance},
		{"InfEdgeThreshold", dijkstra.WithInfEdgeThreshold(0), dijkstra.ErrBadInfThreshold},
		{"InfEdgeThresholdNaN", dijkstra.WithInfEdgeThreshold(math.NaN()), dijkstra.ErrBadInfThreshold},
	}
	for _, c := range cases {
		dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(roomA), c.opt)
		if !errors.Is(err, dijkstra.ErrOptionViolation) || !errors.Is(err, c.want) {
			t.Errorf("%s: expected ErrOptionViolation wrapping %v, got %v", c.name, c.want, err)
		}
		if dist != nil || prev != nil {
			t.Errorf("%s: expected nil results on error", c.name)
		}
	}

	// A bad option is reported even when a later option is valid.
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source(roomA),
		dijkstra.WithMaxDistance(-1), dijkstra.WithMaxDistance(1))
	if !errors.Is(err, dijkstra.ErrBadMaxDistance) {
		t.Errorf("expected ErrBadMaxDistance, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Distances and paths
// ------------------------------------------------------------------------

func TestDijkstra_ThreeRooms(t *testing.T) {
	g := buildThreeRooms(t)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(roomA))
	if err != nil {
		t.Fatal(err)
	}
	if prev != nil {
		t.Errorf("expected nil predecessor map, got %v", prev)
	}

	want := 2 * 0.001 * navgraph.DefaultMixedMultiplier
	if got := dist[roomB]; math.Abs(got-want) > 1e-12 {
		t.Errorf("dist[RoomB] = %g; want %g", got, want)
	}
	if !math.IsInf(dist[annex], 1) {
		t.Errorf("dist[Annex] = %g; want +Inf", dist[annex])
	}
}

func TestShortestPath(t *testing.T) {
	g := buildThreeRooms(t)
	path, cost, err := dijkstra.ShortestPath(g, roomA, roomB)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 3 || path[0] != roomA || path[1] != corridor1 || path[2] != roomB {
		t.Fatalf("path = %v; want RoomA → Corridor1 → RoomB", path)
	}
	if cost <= 0 {
		t.Errorf("cost = %g; want > 0", cost)
	}

	if _, _, err = dijkstra.ShortestPath(g, roomA, annex); !errors.Is(err, dijkstra.ErrUnreachable) {
		t.Errorf("Expected ErrUnreachable, got %v", err)
	}
	if _, _, err = dijkstra.ShortestPath(g, roomA, room.Key{Name: "Gym"}); !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Errorf("Expected ErrVertexNotFound, got %v", err)
	}

	path, cost, err = dijkstra.ShortestPath(g, roomA, roomA)
	if err != nil || len(path) != 1 || cost != 0 {
		t.Errorf("self path = %v, %g, %v", path, cost, err)
	}
}

// ------------------------------------------------------------------------
// 3. Thresholds
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistanceLimits(t *testing.T) {
	g := buildThreeRooms(t)
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(roomA), dijkstra.WithMaxDistance(0.001))
	if err != nil {
		t.Fatal(err)
	}
	if math.IsInf(dist[corridor1], 1) {
		t.Errorf("Corridor1 should be within the cap")
	}
	if !math.IsInf(dist[roomB], 1) {
		t.Errorf("RoomB beyond the cap should stay unreached, got %g", dist[roomB])
	}
}

func TestDijkstra_InfThresholdBlocksEdges(t *testing.T) {
	// Two routes Lab → Office: direct (regular pair) or through the hall.
	fs := []feature.Feature{
		fixture.Square("Lab", 0, 0, 0, 0.0001),
		fixture.Square("Office", 0, 0.0007, 0, 0.0001),
		fixture.Square("Hall", 0, 0.00035, 0.0002, 0.0001),
	}
	g, err := navgraph.Build(room.Group(fs))
	if err != nil {
		t.Fatal(err)
	}
	lab, office := room.Key{Name: "Lab"}, room.Key{Name: "Office"}

	_, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(lab), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if prev[office] != (room.Key{Name: "Hall"}) {
		t.Errorf("corridor detour should win, prev[Office] = %v", prev[office])
	}

	// Blocking every edge of weight 0.0003 or more leaves no route at all.
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(lab), dijkstra.WithInfEdgeThreshold(0.0003))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(dist[office], 1) {
		t.Errorf("dist[Office] = %g; want +Inf", dist[office])
	}
}

func TestPathTo_MissingPredecessor(t *testing.T) {
	_, err := dijkstra.PathTo(map[room.Key]room.Key{}, roomA, roomB)
	if !errors.Is(err, dijkstra.ErrUnreachable) {
		t.Fatalf("Expected ErrUnreachable, got %v", err)
	}
}
