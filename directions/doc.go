// Package directions turns an ordered route into turn-by-turn instructions,
// summary statistics and speakable text.
//
// Distances here are great-circle metres (Haversine, R = 6 371 000 m) over the
// [lon, lat] coordinates of the route points; bearings are forward azimuths in
// [0, 360). The relative change of bearing at a point is classified as
//
//	straight  < 20°
//	slight    20° – 60°
//	turn      60° – 120°
//	sharp     120° – 160°
//	back      > 160°
//
// A turn is reported only when it is not straight and more than MinTurnDistance
// metres were walked since the previous reported step. Rooms crossed on the way
// produce a pass-through step after MinPassDistance metres, unless they are
// corridors or inserted waypoints. A floor change names the connector used and
// resets both the heading and the walked-segment counter.
//
// Every returned slice starts with a start step and ends with a destination
// step. Distance on a step is the walk to the next step.
package directions
