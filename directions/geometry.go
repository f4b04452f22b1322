package directions

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// EarthRadius is the mean Earth radius in metres used by Haversine.
const EarthRadius = 6371000.0

// Haversine returns the great-circle distance in metres between two [lon, lat] points.
func Haversine(a, b orb.Point) float64 {
	lat1 := deg2rad(a.Lat())
	lat2 := deg2rad(b.Lat())
	dLat := lat2 - lat1
	dLon := deg2rad(b.Lon() - a.Lon())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * EarthRadius * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Bearing returns the forward azimuth from a to b in degrees, in [0, 360).
func Bearing(a, b orb.Point) float64 {
	return normalize(geo.Bearing(a, b))
}

// Delta returns the signed change from heading from to heading to, in
// (-180, 180]. Positive values turn right (clockwise).
func Delta(from, to float64) float64 {
	d := math.Mod(to-from+540, 360) - 180
	if d == -180 {
		return 180
	}
	return d
}

// ClassifyTurn maps a signed heading change onto a turn class and side.
func ClassifyTurn(delta float64) (Turn, Side) {
	side := SideRight
	if delta < 0 {
		side = SideLeft
	}

	switch a := math.Abs(delta); {
	case a < 20:
		return TurnStraight, SideNone
	case a < 60:
		return TurnSlight, side
	case a < 120:
		return TurnNormal, side
	case a <= 160:
		return TurnSharp, side
	default:
		return TurnBack, side
	}
}

var compassPoints = [...]string{
	"north", "northeast", "east", "southeast",
	"south", "southwest", "west", "northwest",
}

// Compass names the eight-point compass direction of a bearing.
func Compass(bearing float64) string {
	i := int(math.Floor((normalize(bearing) + 22.5) / 45))
	return compassPoints[i%len(compassPoints)]
}

func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
