package directions

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/indoornav/room"
	"github.com/katalvlaran/indoornav/route"
)

// Generate converts path into direction steps. An empty path yields nil.
func Generate(path []route.Point, opts ...Option) []Direction {
	if len(path) == 0 {
		return nil
	}

	w := &walker{
		options: buildOptions(opts),
		path:    path,
		dest:    path[len(path)-1].Name,
	}
	w.emit(w.startStep())
	for i := 1; i < len(path); i++ {
		w.step(i)
	}
	last := path[len(path)-1]
	w.emit(Direction{
		Kind:        KindDestination,
		Instruction: fmt.Sprintf("Arrive at %s", last.Name),
		Floor:       last.Floor,
		Location:    last.Name,
		Coords:      last.Coords,
		Icon:        "destination",
	})
	w.fillDistances()

	return w.out
}

// walker holds the running state of one Generate call.
type walker struct {
	options Options
	path    []route.Point
	dest    string

	out        []Direction
	cumulative float64 // metres walked up to the current point
	segment    float64 // metres walked since the last reported step
	heading    float64
	hasHeading bool
}

func (w *walker) emit(d Direction) {
	if d.Kind != KindTurn && d.Kind != KindFloorChange {
		d.CumulativeDistance = w.cumulative
	}
	w.out = append(w.out, d)
}

func (w *walker) startStep() Direction {
	p := w.path[0]
	d := Direction{
		Kind:        KindStart,
		Instruction: fmt.Sprintf("Start at %s", p.Name),
		Floor:       p.Floor,
		Location:    p.Name,
		Coords:      p.Coords,
		Icon:        "start",
	}
	for _, q := range w.path[1:] {
		if q.Floor != p.Floor {
			break
		}
		if q.Coords != p.Coords {
			d.Instruction += ", heading " + Compass(Bearing(p.Coords, q.Coords))
			break
		}
	}
	return d
}

func (w *walker) step(i int) {
	prev, cur := w.path[i-1], w.path[i]
	d := Haversine(prev.Coords, cur.Coords)
	atPrev := w.cumulative
	w.cumulative += d

	if prev.Floor != cur.Floor {
		fc := floorChange(prev, cur)
		fc.CumulativeDistance = atPrev
		w.emit(fc)
		w.hasHeading = false
		w.segment = 0
		return
	}
	if d == 0 {
		return
	}
	w.segment += d

	b := Bearing(prev.Coords, cur.Coords)
	if w.hasHeading {
		turn, side := ClassifyTurn(Delta(w.heading, b))
		if turn != TurnStraight && w.segment > w.options.MinTurnDistance {
			w.emit(Direction{
				Kind:               KindTurn,
				Instruction:        turnInstruction(turn, side, prev.Name),
				Floor:              prev.Floor,
				CumulativeDistance: atPrev,
				Location:           prev.Name,
				Coords:             prev.Coords,
				Turn:               turn,
				Side:               side,
				Icon:               turnIcon(turn, side),
			})
			w.segment = 0
		}
	}
	w.heading, w.hasHeading = b, true

	if i == len(w.path)-1 || cur.IsWaypoint || cur.IsCorridor() {
		return
	}
	// The arrival step names the destination room.
	if cur.Name == w.dest {
		return
	}
	// The floor change step announces this room instead.
	if w.path[i+1].Floor != cur.Floor {
		return
	}
	if w.segment > w.options.MinPassDistance {
		w.emit(Direction{
			Kind:        KindWaypoint,
			Instruction: fmt.Sprintf("Pass through %s", cur.Name),
			Floor:       cur.Floor,
			Location:    cur.Name,
			Coords:      cur.Coords,
			Icon:        "waypoint",
		})
		w.segment = 0
	}
}

// fillDistances sets each step's Distance to the walk until the next step.
func (w *walker) fillDistances() {
	for i := 0; i+1 < len(w.out); i++ {
		w.out[i].Distance = w.out[i+1].CumulativeDistance - w.out[i].CumulativeDistance
	}
}

// floorChange names the connector from the departure room, then the arrival
// room, and falls back to stairs.
func floorChange(from, to route.Point) Direction {
	conn := ConnectorStairs
	switch {
	case from.Role == room.RoleElevator:
		conn = ConnectorElevator
	case from.Role == room.RoleStairs:
	case to.Role == room.RoleElevator:
		conn = ConnectorElevator
	}

	way := "up"
	if to.Floor < from.Floor {
		way = "down"
	}
	target := to.Floor

	return Direction{
		Kind:        KindFloorChange,
		Instruction: fmt.Sprintf("Take the %s %s to floor %d", conn, way, target),
		Floor:       from.Floor,
		TargetFloor: &target,
		Location:    from.Name,
		Coords:      from.Coords,
		Connector:   conn,
		Icon:        string(conn),
	}
}

func turnInstruction(t Turn, s Side, at string) string {
	switch t {
	case TurnSlight:
		return fmt.Sprintf("Turn slightly %s at %s", s, at)
	case TurnSharp:
		return fmt.Sprintf("Turn sharply %s at %s", s, at)
	case TurnBack:
		return fmt.Sprintf("Make a U-turn at %s", at)
	default:
		return fmt.Sprintf("Turn %s at %s", s, at)
	}
}

func turnIcon(t Turn, s Side) string {
	switch t {
	case TurnSlight:
		return "slight-" + string(s)
	case TurnSharp:
		return "sharp-" + string(s)
	case TurnBack:
		return "u-turn"
	default:
		return "turn-" + string(s)
	}
}

// CalculateStats sums Haversine distances over path and estimates walking time.
func CalculateStats(path []route.Point, opts ...Option) Stats {
	cfg := buildOptions(opts)

	var st Stats
	seen := map[int]bool{}
	for i, p := range path {
		if !seen[p.Floor] {
			seen[p.Floor] = true
			st.Floors = append(st.Floors, p.Floor)
		}
		if i == 0 {
			continue
		}
		st.TotalDistance += Haversine(path[i-1].Coords, p.Coords)
		if path[i-1].Floor != p.Floor {
			st.FloorChanges++
		}
	}
	sort.Ints(st.Floors)
	st.EstimatedTime = st.TotalDistance/cfg.WalkingSpeed + float64(st.FloorChanges)*cfg.FloorChangeSeconds

	return st
}
