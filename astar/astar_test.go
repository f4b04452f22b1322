package astar_test

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indoornav/astar"
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
)

func threeRooms(t *testing.T) *navgraph.Graph {
	t.Helper()
	g, err := navgraph.Build(room.Group(fixture.ThreeRooms()))
	require.NoError(t, err)
	return g
}

func TestSearch_ThreeRooms(t *testing.T) {
	g := threeRooms(t)

	res, err := astar.Search(g, roomA, roomB)
	require.NoError(t, err)
	assert.Equal(t, []room.Key{roomA, corridor1, roomB}, res.Path)
	assert.InDelta(t, 2*0.001*navgraph.DefaultMixedMultiplier, res.Cost, 1e-12)
	assert.Equal(t, 3, res.Expanded)
}

func TestSearch_StartEqualsGoal(t *testing.T) {
	g := threeRooms(t)

	res, err := astar.Search(g, roomA, roomA)
	require.NoError(t, err)
	assert.Equal(t, []room.Key{roomA}, res.Path)
	assert.Zero(t, res.Cost)
}

func TestSearch_Errors(t *testing.T) {
	g := threeRooms(t)
	gym := room.Key{Name: "Gym", Floor: 1}

	_, err := astar.Search(nil, roomA, roomB)
	assert.ErrorIs(t, err, astar.ErrNilGraph)

	_, err = astar.Search(g, gym, roomB)
	assert.ErrorIs(t, err, astar.ErrStartNotFound)

	_, err = astar.Search(g, roomA, gym)
	assert.ErrorIs(t, err, astar.ErrGoalNotFound)

	// Same name on another floor is a different room.
	_, err = astar.Search(g, roomA, room.Key{Name: "RoomB", Floor: 2})
	assert.ErrorIs(t, err, astar.ErrGoalNotFound)
}

func TestSearch_NoPath(t *testing.T) {
	fs := append(fixture.ThreeRooms(), fixture.Square("Annex", 1, 1, 1, 0.0001))
	g, err := navgraph.Build(room.Group(fs))
	require.NoError(t, err)

	res, err := astar.Search(g, roomA, room.Key{Name: "Annex", Floor: 1})
	assert.ErrorIs(t, err, astar.ErrNoPath)
	assert.Nil(t, res.Path)
	assert.Equal(t, 3, res.Expanded, "the whole component is closed before giving up")
}

func TestSearch_Hooks(t *testing.T) {
	g := threeRooms(t)

	var expanded []room.Key
	relaxed := map[room.Key]float64{}
	res, err := astar.Search(g, roomA, roomB,
		astar.WithOnExpand(func(k room.Key, g, f float64) {
			assert.GreaterOrEqual(t, f, g)
			expanded = append(expanded, k)
		}),
		astar.WithOnRelax(func(_, to room.Key, g float64) { relaxed[to] = g }),
	)
	require.NoError(t, err)

	assert.Equal(t, []room.Key{roomA, corridor1, roomB}, expanded)
	assert.Len(t, expanded, res.Expanded)
	assert.InDelta(t, res.Cost, relaxed[roomB], 1e-15)
}

func TestSearch_CustomHeuristic(t *testing.T) {
	g := threeRooms(t)

	zero := func(*navgraph.Node, *navgraph.Node) float64 { return 0 }
	res, err := astar.Search(g, roomA, roomB, astar.WithHeuristic(zero), astar.WithHeuristic(nil))
	require.NoError(t, err)
	assert.Equal(t, []room.Key{roomA, corridor1, roomB}, res.Path)
}

func TestSearch_TieBreakIsDeterministic(t *testing.T) {
	// Two mirror-image halls between Lab and Office give equal-cost paths.
	fs := []feature.Feature{
		fixture.Square("Lab", 0, 0, 0, 0.0001),
		fixture.Square("Office", 0, 0.002, 0, 0.0001),
		fixture.Square("Hall North", 0, 0.001, 0.0003, 0.0001),
		fixture.Square("Hall South", 0, 0.001, -0.0003, 0.0001),
	}
	g, err := navgraph.Build(room.Group(fs))
	require.NoError(t, err)

	lab, office := room.Key{Name: "Lab"}, room.Key{Name: "Office"}
	first, err := astar.Search(g, lab, office)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := astar.Search(g, lab, office)
		require.NoError(t, err)
		assert.Equal(t, first.Path, again.Path)
	}
	assert.Equal(t, "Hall North", first.Path[1].Name)
}

// randomLayout scatters n rooms over two floors; roughly a third are halls
// and one elevator shaft appears on both floors.
func randomLayout(rng *rand.Rand, n int) []feature.Feature {
	fs := []feature.Feature{
		fixture.Square("Elevator", 0, 0.0025, 0.0025, 0.0001),
		fixture.Square("Elevator", 1, 0.0025, 0.0025, 0.0001),
	}
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("Room %d", i)
		if rng.Intn(3) == 0 {
			name = fmt.Sprintf("Hall %d", i)
		}
		fs = append(fs, fixture.Square(name, rng.Intn(2), rng.Float64()*0.005, rng.Float64()*0.005, 0.0001))
	}
	return fs
}

func TestSearch_AgainstDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	unit := navgraph.WithCorridorLink(navgraph.Link{Threshold: navgraph.DefaultCorridorThreshold, Multiplier: 1})
	mixed := navgraph.WithMixedLink(navgraph.Link{Threshold: navgraph.DefaultMixedThreshold, Multiplier: 1})

	cases := []struct {
		name  string
		opts  []navgraph.Option
		bound float64
		slack float64
	}{
		{"multipliers at least one", []navgraph.Option{unit, mixed}, 1, 1e-12},
		{"default corridor discount", nil, 1 / navgraph.DefaultCorridorMultiplier, 1e-12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for layout := 0; layout < 25; layout++ {
				g, err := navgraph.Build(room.Group(randomLayout(rng, 30)), tc.opts...)
				require.NoError(t, err)
				keys := g.Keys()

				for q := 0; q < 10; q++ {
					s, e := keys[rng.Intn(len(keys))], keys[rng.Intn(len(keys))]
					_, want, dErr := dijkstra.ShortestPath(g, s, e)
					res, aErr := astar.Search(g, s, e)

					if errors.Is(dErr, dijkstra.ErrUnreachable) {
						assert.ErrorIs(t, aErr, astar.ErrNoPath, "%s → %s", s, e)
						continue
					}
					require.NoError(t, dErr)
					require.NoError(t, aErr)
					assert.Equal(t, s, res.Path[0])
					assert.Equal(t, e, res.Path[len(res.Path)-1])
					assert.GreaterOrEqual(t, res.Cost, want-tc.slack)
					assert.LessOrEqual(t, res.Cost, want*tc.bound+tc.slack, "%s → %s", s, e)
					assert.InDelta(t, pathCost(t, g, res.Path), res.Cost, 1e-12)
				}
			}
		})
	}
}

func pathCost(t *testing.T, g *navgraph.Graph, path []room.Key) float64 {
	t.Helper()
	var total float64
	for i := 1; i < len(path); i++ {
		n, ok := g.Node(path[i-1])
		require.True(t, ok)
		w := math.Inf(1)
		for _, nb := range n.Neighbors {
			if nb.Key == path[i] {
				w = nb.Weight
			}
		}
		require.False(t, math.IsInf(w, 1), "no edge %s → %s", path[i-1], path[i])
		total += w
	}
	return total
}
