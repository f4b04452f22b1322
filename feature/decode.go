package feature

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb/geojson"
)

// Decode reads a GeoJSON FeatureCollection and converts every member into a Feature.
// Input order is preserved.
func Decode(r io.Reader) ([]Feature, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return FromCollection(fc), nil
}

// FromCollection converts an already decoded collection. A nil collection yields nil.
func FromCollection(fc *geojson.FeatureCollection) []Feature {
	if fc == nil {
		return nil
	}
	out := make([]Feature, 0, len(fc.Features))
	for _, gf := range fc.Features {
		if gf == nil {
			continue
		}
		out = append(out, FromGeoJSON(gf))
	}

	return out
}

// FromGeoJSON resolves property aliases of a single GeoJSON feature.
func FromGeoJSON(gf *geojson.Feature) Feature {
	props := map[string]any(gf.Properties)
	f := Feature{
		ID:         idString(gf.ID),
		Geometry:   gf.Geometry,
		Properties: props,
	}

	f.Name = strings.TrimSpace(firstString(props, nameKeys))
	if f.Name == "" {
		f.Name = f.ID
	}
	f.Floor = floorOf(props)
	f.Height = firstNumber(props, heightKeys)
	f.BaseHeight = firstNumber(props, baseHeightKeys)
	f.Kind = strings.TrimSpace(firstString(props, kindKeys))

	return f
}

func idString(id any) string {
	if id == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(id))
}

// firstString returns the first alias holding a non-empty value, rendered as text.
func firstString(props map[string]any, keys []string) string {
	for _, k := range keys {
		v, ok := props[k]
		if !ok || v == nil {
			continue
		}
		s := strings.TrimSpace(fmt.Sprint(v))
		if s != "" {
			return s
		}
	}
	return ""
}

// floorOf picks the first non-null floor alias. A present but unparsable,
// non-finite or out-of-range value means floor 0.
func floorOf(props map[string]any) int {
	for _, k := range floorKeys {
		v, ok := props[k]
		if !ok || v == nil {
			continue
		}
		n, ok := toFloat(v)
		if !ok || n > math.MaxInt32 || n < math.MinInt32 {
			return 0
		}
		return int(math.Round(n))
	}
	return 0
}

func firstNumber(props map[string]any, keys []string) *float64 {
	for _, k := range keys {
		v, ok := props[k]
		if !ok || v == nil {
			continue
		}
		if n, ok := toFloat(v); ok {
			return &n
		}
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, !math.IsNaN(x) && !math.IsInf(x, 0)
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	}
	return 0, false
}
