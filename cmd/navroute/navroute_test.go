package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indoornav/navigation"
	"github.com/katalvlaran/indoornav/room"
)

var building = filepath.Join("testdata", "building.geojson")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseRef(t *testing.T) {
	cases := []struct {
		in       string
		name     string
		floor    int
		hasFloor bool
	}{
		{"RoomA@1", "RoomA", 1, true},
		{" Lab 201 @ -1 ", "Lab 201", -1, true},
		{"RoomA", "RoomA", 0, false},
		{"team@work", "team@work", 0, false},
		{"a@b@2", "a@b", 2, true},
	}
	for _, c := range cases {
		name, floor, has := parseRef(c.in)
		assert.Equal(t, c.name, name, c.in)
		assert.Equal(t, c.floor, floor, c.in)
		assert.Equal(t, c.hasFloor, has, c.in)
	}
}

func TestResolveRef(t *testing.T) {
	g := &globalFlags{mapPath: building}
	e, err := g.engine(newRootCmd())
	require.NoError(t, err)
	ix := e.Index()

	k, err := resolveRef(ix, "lab 201")
	require.NoError(t, err)
	assert.Equal(t, room.Key{Name: "Lab 201", Floor: 1}, k)

	_, err = resolveRef(ix, "Storage")
	assert.ErrorIs(t, err, errAmbiguous)
	assert.Contains(t, err.Error(), "Storage@0, Storage@1")

	k, err = resolveRef(ix, "Storage@1")
	require.NoError(t, err)
	assert.Equal(t, 1, k.Floor)

	_, err = resolveRef(ix, "Gym")
	assert.ErrorIs(t, err, navigation.ErrRoomNotFound)
	_, err = resolveRef(ix, " ")
	assert.ErrorIs(t, err, navigation.ErrEmptyRoomName)
}

func TestRoomsCommand(t *testing.T) {
	out, err := run(t, "rooms", "--map", building, "--json")
	require.NoError(t, err)

	var rows []roomRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Len(t, rows, 9)

	out, err = run(t, "rooms", "--map", building, "--floor", "1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, out, "corridor")
}

func TestRouteCommand(t *testing.T) {
	out, err := run(t, "route", "Office 101", "Lab 201", "--map", building, "--speak")
	require.NoError(t, err)
	assert.Contains(t, out, "Start at Office 101")
	assert.Contains(t, out, "Take the stairs up to floor 1")
	assert.Contains(t, out, "Arrive at Lab 201.")
	assert.Contains(t, out, "floors [0 1]")

	out, err = run(t, "route", "Office 101@0", "Lab 201@1", "--map", building, "--json")
	require.NoError(t, err)
	var it navigation.Itinerary
	require.NoError(t, json.Unmarshal([]byte(out), &it))
	assert.Equal(t, 1, it.Stats.FloorChanges)
	kinds := map[string]int{}
	for _, d := range it.Directions {
		kinds[string(d.Kind)]++
	}
	assert.Equal(t, 1, kinds["floor_change"])
	assert.Equal(t, room.RoleRegular, it.Route.Points[0].Role)

	_, err = run(t, "route", "Storage", "Lab 201", "--map", building)
	assert.ErrorIs(t, err, errAmbiguous)

	_, err = run(t, "route", "Office 101", "Lab 201", "--map", building, "--floor", "0")
	assert.ErrorIs(t, err, navigation.ErrNotInGraph)

	_, err = run(t, "route", "Office 101", "Lab 201")
	assert.Error(t, err, "--map is required")
}

func TestBatchCommand(t *testing.T) {
	out, err := run(t, "batch", filepath.Join("testdata", "queries.yaml"), "--map", building, "--json")
	require.NoError(t, err)

	var rows []batchRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)
	assert.Empty(t, rows[0].Error)
	assert.NotNil(t, rows[0].Itinerary)
	assert.Empty(t, rows[1].Error)
	assert.Contains(t, rows[2].Error, "room not found")

	out, err = run(t, "batch", filepath.Join("testdata", "queries.yaml"), "--map", building)
	require.NoError(t, err)
	assert.Contains(t, out, "Office 101 → Gym: error:")
}

func TestConfigFlag(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "nav.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("search:\n  strategy: nope\n"), 0o600))

	_, err := run(t, "rooms", "--map", building, "--config", cfg)
	assert.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	out, err := run(t, "check", "--map", building)
	require.NoError(t, err)
	assert.Equal(t, "1 connected group(s)\n", out)

	vault := `{"type":"FeatureCollection","features":[
 {"type":"Feature","properties":{"name":"Lobby","floor":0},
  "geometry":{"type":"Polygon","coordinates":[[[0,0],[0.0002,0],[0.0002,0.0002],[0,0.0002],[0,0]]]}},
 {"type":"Feature","properties":{"name":"Vault","floor":0},
  "geometry":{"type":"Polygon","coordinates":[[[1,1],[1.0002,1],[1.0002,1.0002],[1,1.0002],[1,1]]]}},
 {"type":"Feature","properties":{"name":"Main Hall","floor":0,"type":"corridor"},
  "geometry":{"type":"Polygon","coordinates":[[[0.0008,0],[0.001,0],[0.001,0.0002],[0.0008,0.0002],[0.0008,0]]]}}
]}`
	path := filepath.Join(t.TempDir(), "vault.geojson")
	require.NoError(t, os.WriteFile(path, []byte(vault), 0o600))

	out, err = run(t, "check", "--map", path, "--json")
	require.NoError(t, err)
	var rep checkReport
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, 2, rep.Groups)
	assert.Equal(t, [][]string{{"Vault@0"}}, rep.Isolated)

	out, err = run(t, "check", "--map", path, "--floor", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "unreachable: Vault@0")
}
