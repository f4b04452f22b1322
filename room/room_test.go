package room_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indoornav/feature"
	"github.com/katalvlaran/indoornav/internal/fixture"
	"github.com/katalvlaran/indoornav/room"
)

func TestClassify(t *testing.T) {
	cases := map[string]room.Role{
		"Office 12":       room.RoleRegular,
		"":                room.RoleRegular,
		"Main Hall":       room.RoleCorridor,
		"corridor_B":      room.RoleCorridor,
		"Lobby floor 2":   room.RoleCorridor,
		"Passage East":    room.RoleCorridor,
		"Corredor 3":      room.RoleCorridor,
		"Stairs North":    room.RoleStairs,
		"Escada 1":        room.RoleStairs,
		"Elevator_1":      room.RoleElevator,
		"Elevador B":      room.RoleElevator,
		"Lift 2":          room.RoleElevator,
		"Floor":           room.RoleStructural,
		"floor_slab_3":    room.RoleStructural,
		"Structure":       room.RoleStructural,
		"VOID atrium":     room.RoleStructural,
		"Exterior walls":  room.RoleStructural,
		"Elevator Lobby":  room.RoleElevator,
		"Stair hall west": room.RoleStairs,
	}
	for name, want := range cases {
		assert.Equal(t, want, room.Classify(name, ""), "Classify(%q)", name)
	}
}

func TestClassify_KindHint(t *testing.T) {
	cases := []struct {
		name, kind string
		want       room.Role
	}{
		{"Main Walkway", "corridor", room.RoleCorridor},
		{"Main Walkway", "Corredor", room.RoleCorridor},
		{"Core B", "elevator", room.RoleElevator},
		{"Core B", "stairs", room.RoleStairs},
		{"Slab 2", "floor", room.RoleStructural},
		{"Slab 3", "structural", room.RoleStructural},
		{"Lab 201", "lab", room.RoleRegular},
		{"Main Hall", "room", room.RoleCorridor},
		{"Stairs North", "", room.RoleStairs},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, room.Classify(c.name, c.kind), "Classify(%q, %q)", c.name, c.kind)
	}
}

func TestGroup_UsesKindHint(t *testing.T) {
	walkway := fixture.Square("Main Walkway", 0, 0, 0, 0.0001)
	hinted := fixture.Square("Main Walkway", 0, 0.0002, 0, 0.0001)
	hinted.Kind = "corridor"
	ix := room.Group([]feature.Feature{walkway, hinted})

	r, ok := ix.Get(room.Key{Name: "Main Walkway"})
	require.True(t, ok)
	assert.Equal(t, room.RoleCorridor, r.Role)
	assert.Len(t, r.Features, 2)
}

func TestRole_Predicates(t *testing.T) {
	assert.True(t, room.RoleCorridor.IsCorridor())
	assert.False(t, room.RoleStairs.IsCorridor())
	assert.True(t, room.RoleStairs.IsVerticalConnector())
	assert.True(t, room.RoleElevator.IsVerticalConnector())
	assert.False(t, room.RoleCorridor.IsVerticalConnector())
	assert.False(t, room.RoleStructural.Navigable())
	assert.True(t, room.RoleRegular.Navigable())
	assert.Equal(t, "elevator", room.RoleElevator.String())
	assert.Equal(t, "unknown", room.Role(99).String())
}

func TestRole_Text(t *testing.T) {
	for r := room.RoleRegular; r <= room.RoleStructural; r++ {
		b, err := r.MarshalText()
		require.NoError(t, err)
		var back room.Role
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, r, back)
	}
	var r room.Role
	assert.ErrorIs(t, r.UnmarshalText([]byte("ramp")), room.ErrUnknownRole)
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "RoomA_F1", room.Key{Name: "RoomA", Floor: 1}.String())
	assert.Equal(t, "B_F-1", room.Key{Name: "B", Floor: -1}.String())
}

func TestGroup_Centroid(t *testing.T) {
	fs := []feature.Feature{
		fixture.Square("Lab", 2, 10, 20, 1),
		fixture.Square("Lab", 2, 14, 20, 1), // second member of the same room
		fixture.Square("Lab", 3, 0, 0, 1),   // same name, other floor
	}
	ix := room.Group(fs)
	require.Equal(t, 2, ix.Len())

	lab2, ok := ix.Get(room.Key{Name: "Lab", Floor: 2})
	require.True(t, ok)
	assert.Len(t, lab2.Features, 2)
	assert.InDelta(t, 12.0, lab2.Centroid[0], 1e-12)
	assert.InDelta(t, 20.0, lab2.Centroid[1], 1e-12)
	assert.Equal(t, []int{2, 3}, ix.Floors())
}

func TestGroup_DegenerateGeometry(t *testing.T) {
	ix := room.Group([]feature.Feature{{Name: "Ghost", Floor: 0}})
	r, ok := ix.Get(room.Key{Name: "Ghost"})
	require.True(t, ok)
	assert.Equal(t, orb.Point{0, 0}, r.Centroid)
}

func TestGroup_StructuralStaysIndexed(t *testing.T) {
	h := 3.5
	slab := fixture.Square("Floor", 0, 0, 0, 5)
	slab.Height = &h
	ix := room.Group([]feature.Feature{slab})

	r, ok := ix.Get(room.Key{Name: "Floor"})
	require.True(t, ok)
	assert.Equal(t, room.RoleStructural, r.Role)
	got, ok := r.Height()
	require.True(t, ok)
	assert.Equal(t, 3.5, got)
	_, ok = r.BaseHeight()
	assert.False(t, ok)
}

// Every feature lands in exactly one room; nothing lost, nothing duplicated.
func TestGroup_Partition(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var fs []feature.Feature
	for i := 0; i < 500; i++ {
		name := fmt.Sprintf("R%d", rng.Intn(40))
		fs = append(fs, fixture.Square(name, rng.Intn(4), rng.Float64(), rng.Float64(), 0.01))
	}

	ix := room.Group(fs)

	total := 0
	for _, r := range ix.Rooms() {
		for _, f := range r.Features {
			assert.Equal(t, r.Key, room.Key{Name: f.Name, Floor: f.Floor})
		}
		total += len(r.Features)
	}
	assert.Equal(t, len(fs), total)

	keys := ix.Keys()
	for i := 1; i < len(keys); i++ {
		assert.True(t, keys[i-1].Less(keys[i]), "keys sorted and unique")
	}
}

func TestIndex_Find(t *testing.T) {
	ix := room.Group([]feature.Feature{
		fixture.Square("Library", 0, 0, 0, 1),
		fixture.Square("library", 2, 0, 0, 1),
		fixture.Square("Café", 1, 0, 0, 1),
	})

	assert.Equal(t, []room.Key{{Name: "Library", Floor: 0}, {Name: "library", Floor: 2}}, ix.Find("LIBRARY"))
	assert.Equal(t, []room.Key{{Name: "Café", Floor: 1}}, ix.Find(" café "))
	assert.Empty(t, ix.Find(""))
	assert.Empty(t, ix.Find("Gym"))
}
