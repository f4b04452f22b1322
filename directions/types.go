package directions

import (
	"github.com/paulmach/orb"
)

// Kind is the type of a direction step.
type Kind string

const (
	KindStart       Kind = "start"
	KindTurn        Kind = "turn"
	KindFloorChange Kind = "floor_change"
	KindWaypoint    Kind = "waypoint"
	KindDestination Kind = "destination"
)

// Turn is the magnitude class of a heading change.
type Turn string

const (
	TurnStraight Turn = "straight"
	TurnSlight   Turn = "slight"
	TurnNormal   Turn = "turn"
	TurnSharp    Turn = "sharp"
	TurnBack     Turn = "back"
)

// Side is the direction of a heading change.
type Side string

const (
	SideNone  Side = ""
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Connector is the vertical connector used on a floor change.
type Connector string

const (
	ConnectorStairs   Connector = "stairs"
	ConnectorElevator Connector = "elevator"
)

// Direction is one step of the itinerary.
type Direction struct {
	Kind        Kind   `json:"type"`
	Instruction string `json:"instruction"`
	Floor       int    `json:"floor"`
	TargetFloor *int   `json:"targetFloor,omitempty"`

	// Distance is the walk in metres from this step to the next one.
	Distance float64 `json:"distance"`

	// CumulativeDistance is the walk in metres from the start to this step.
	CumulativeDistance float64 `json:"cumulativeDistance"`

	Location  string    `json:"location"`
	Coords    orb.Point `json:"coords"`
	Turn      Turn      `json:"turn,omitempty"`
	Side      Side      `json:"side,omitempty"`
	Connector Connector `json:"connector,omitempty"`
	Icon      string    `json:"icon"`
}

// Stats summarises a route.
type Stats struct {
	// TotalDistance is the walked distance in metres.
	TotalDistance float64 `json:"totalDistance"`

	// EstimatedTime is the walking time in seconds, floor changes included.
	EstimatedTime float64 `json:"estimatedTime"`

	// Floors lists the distinct floors visited, ascending.
	Floors []int `json:"floors"`

	// FloorChanges counts consecutive point pairs on different floors.
	FloorChanges int `json:"floorChanges"`
}

// Defaults used by Generate and CalculateStats.
const (
	DefaultWalkingSpeed       = 1.4  // m/s
	DefaultFloorChangeSeconds = 30.0 // per floor change
	DefaultMinTurnDistance    = 3.0  // m
	DefaultMinPassDistance    = 5.0  // m
)

// Options configures Generate and CalculateStats.
type Options struct {
	WalkingSpeed       float64
	FloorChangeSeconds float64
	MinTurnDistance    float64
	MinPassDistance    float64
}

// Option customises Options. Out-of-range values are ignored.
type Option func(*Options)

// DefaultOptions returns the stock walking model.
func DefaultOptions() Options {
	return Options{
		WalkingSpeed:       DefaultWalkingSpeed,
		FloorChangeSeconds: DefaultFloorChangeSeconds,
		MinTurnDistance:    DefaultMinTurnDistance,
		MinPassDistance:    DefaultMinPassDistance,
	}
}

// WithWalkingSpeed sets the walking speed in m/s; non-positive values are ignored.
func WithWalkingSpeed(v float64) Option {
	return func(o *Options) {
		if v > 0 {
			o.WalkingSpeed = v
		}
	}
}

// WithFloorChangeSeconds sets the time added per floor change; negative values are ignored.
func WithFloorChangeSeconds(s float64) Option {
	return func(o *Options) {
		if s >= 0 {
			o.FloorChangeSeconds = s
		}
	}
}

// WithMinTurnDistance sets the metres walked before a turn is reported.
func WithMinTurnDistance(m float64) Option {
	return func(o *Options) {
		if m >= 0 {
			o.MinTurnDistance = m
		}
	}
}

// WithMinPassDistance sets the metres walked before a pass-through is reported.
func WithMinPassDistance(m float64) Option {
	return func(o *Options) {
		if m >= 0 {
			o.MinPassDistance = m
		}
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
