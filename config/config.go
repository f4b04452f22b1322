// Package config loads routing parameters from YAML.
//
// Every key is optional; missing keys keep the values of Default. The loaded
// configuration is validated with go-playground/validator before use, and
// unknown keys are rejected so that typos do not pass silently.
//
//	graph:
//	  corridor: {threshold: 0.002,  multiplier: 0.8}
//	  mixed:    {threshold: 0.0015, multiplier: 0.9}
//	  room:     {threshold: 0.0008, multiplier: 1.2}
//	  vertical: {threshold: 0.003,  multiplier: 2}
//	waypoints:
//	  enabled: true
//	  threshold: 0.0003
//	  maxCorridorPoints: 5
//	directions:
//	  walkingSpeed: 1.4
//	  floorChangeSeconds: 30
//	  minTurnDistance: 3
//	  minPassDistance: 5
//	search:
//	  strategy: astar
//	  concurrency: 4
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/indoornav/directions"
	"github.com/katalvlaran/indoornav/enhance"
	"github.com/katalvlaran/indoornav/navgraph"
	"github.com/katalvlaran/indoornav/navigation"
)

// ErrInvalid indicates a configuration that failed to parse or validate.
var ErrInvalid = errors.New("config: invalid configuration")

var validate = validator.New()

// Link mirrors navgraph.Link.
type Link struct {
	Threshold  float64 `yaml:"threshold" validate:"gt=0"`
	Multiplier float64 `yaml:"multiplier" validate:"gt=0"`
}

// Graph holds the adjacency thresholds and weight multipliers.
type Graph struct {
	Corridor Link `yaml:"corridor"`
	Mixed    Link `yaml:"mixed"`
	Room     Link `yaml:"room"`
	Vertical Link `yaml:"vertical"`
}

// Waypoints configures the path enhancer.
type Waypoints struct {
	Enabled           bool    `yaml:"enabled"`
	Threshold         float64 `yaml:"threshold" validate:"gt=0"`
	MaxCorridorPoints int     `yaml:"maxCorridorPoints" validate:"gte=1,lte=50"`
}

// Directions configures the walking model.
type Directions struct {
	WalkingSpeed       float64 `yaml:"walkingSpeed" validate:"gt=0"`
	FloorChangeSeconds float64 `yaml:"floorChangeSeconds" validate:"gte=0"`
	MinTurnDistance    float64 `yaml:"minTurnDistance" validate:"gte=0"`
	MinPassDistance    float64 `yaml:"minPassDistance" validate:"gte=0"`
}

// Search selects the algorithm and batch parallelism.
type Search struct {
	Strategy    string `yaml:"strategy" validate:"oneof=astar dijkstra"`
	Concurrency int    `yaml:"concurrency" validate:"gte=1,lte=256"`
}

// Config is the root of the YAML document.
type Config struct {
	Graph      Graph      `yaml:"graph"`
	Waypoints  Waypoints  `yaml:"waypoints"`
	Directions Directions `yaml:"directions"`
	Search     Search     `yaml:"search"`
}

// Default returns the built-in parameters.
func Default() *Config {
	link := func(t, m float64) Link { return Link{Threshold: t, Multiplier: m} }
	return &Config{
		Graph: Graph{
			Corridor: link(navgraph.DefaultCorridorThreshold, navgraph.DefaultCorridorMultiplier),
			Mixed:    link(navgraph.DefaultMixedThreshold, navgraph.DefaultMixedMultiplier),
			Room:     link(navgraph.DefaultRoomThreshold, navgraph.DefaultRoomMultiplier),
			Vertical: link(navgraph.DefaultVerticalThreshold, navgraph.DefaultVerticalMultiplier),
		},
		Waypoints: Waypoints{
			Enabled:           true,
			Threshold:         enhance.DefaultThreshold,
			MaxCorridorPoints: enhance.DefaultMaxCorridorPoints,
		},
		Directions: Directions{
			WalkingSpeed:       directions.DefaultWalkingSpeed,
			FloorChangeSeconds: directions.DefaultFloorChangeSeconds,
			MinTurnDistance:    directions.DefaultMinTurnDistance,
			MinPassDistance:    directions.DefaultMinPassDistance,
		},
		Search: Search{
			Strategy:    string(navigation.StrategyAStar),
			Concurrency: 4,
		},
	}
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	c := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Options translates the configuration into navigation options.
func (c *Config) Options() []navigation.Option {
	link := func(l Link) navgraph.Link { return navgraph.Link{Threshold: l.Threshold, Multiplier: l.Multiplier} }

	opts := []navigation.Option{
		navigation.WithGraphOptions(
			navgraph.WithCorridorLink(link(c.Graph.Corridor)),
			navgraph.WithMixedLink(link(c.Graph.Mixed)),
			navgraph.WithRoomLink(link(c.Graph.Room)),
			navgraph.WithVerticalLink(link(c.Graph.Vertical)),
		),
		navigation.WithEnhanceOptions(
			enhance.WithThreshold(c.Waypoints.Threshold),
			enhance.WithMaxCorridorPoints(c.Waypoints.MaxCorridorPoints),
		),
		navigation.WithDirectionsOptions(
			directions.WithWalkingSpeed(c.Directions.WalkingSpeed),
			directions.WithFloorChangeSeconds(c.Directions.FloorChangeSeconds),
			directions.WithMinTurnDistance(c.Directions.MinTurnDistance),
			directions.WithMinPassDistance(c.Directions.MinPassDistance),
		),
		navigation.WithStrategy(navigation.Strategy(c.Search.Strategy)),
		navigation.WithConcurrency(c.Search.Concurrency),
	}
	if !c.Waypoints.Enabled {
		opts = append(opts, navigation.WithoutWaypoints())
	}
	return opts
}
