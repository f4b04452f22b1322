package feature

import (
	"errors"

	"github.com/paulmach/orb"
)

// ErrDecode indicates that the input could not be parsed as a GeoJSON FeatureCollection.
var ErrDecode = errors.New("feature: cannot decode feature collection")

// Property key aliases, in lookup priority order.
var (
	nameKeys       = []string{"name", "id", "room_id"}
	floorKeys      = []string{"floor", "level", "nivel"}
	heightKeys     = []string{"height", "altura"}
	baseHeightKeys = []string{"base_height", "base_heigh", "baseHeight"}
	kindKeys       = []string{"type", "tipo"}
)

// Feature is a single geometry unit of a floor plan.
//
// Height and BaseHeight are nil when the source did not carry them.
type Feature struct {
	// ID is the GeoJSON feature id rendered as a string ("" when absent).
	ID string `json:"id,omitempty"`

	// Name identifies the logical room this feature belongs to.
	Name string `json:"name"`

	// Floor is the floor index.
	Floor int `json:"floor"`

	// Geometry is a Polygon, MultiPolygon or LineString in [lon, lat].
	Geometry orb.Geometry `json:"-"`

	// Height and BaseHeight are extrusion hints for 3D consumers.
	Height     *float64 `json:"height,omitempty"`
	BaseHeight *float64 `json:"baseHeight,omitempty"`

	// Kind is the free-form type/role hint of the producer.
	Kind string `json:"kind,omitempty"`

	// Properties holds the raw property map as decoded.
	Properties map[string]any `json:"-"`
}

// OuterVertices returns every vertex of the feature's outer boundary:
// the exterior ring of a Polygon, the exterior ring of each MultiPolygon
// member, or all points of a LineString. Other geometries yield nil.
//
// Closing vertices of rings are kept as they appear in the source.
func (f Feature) OuterVertices() []orb.Point {
	switch g := f.Geometry.(type) {
	case orb.Polygon:
		if len(g) == 0 {
			return nil
		}
		return append([]orb.Point(nil), g[0]...)
	case orb.MultiPolygon:
		var pts []orb.Point
		for _, poly := range g {
			if len(poly) == 0 {
				continue
			}
			pts = append(pts, poly[0]...)
		}
		return pts
	case orb.LineString:
		return append([]orb.Point(nil), g...)
	case orb.Ring:
		return append([]orb.Point(nil), g...)
	}
	return nil
}
