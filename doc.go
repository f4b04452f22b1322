// Package indoornav turns a GeoJSON floor plan into walkable routes and
// turn-by-turn directions between rooms.
//
// 🚀 What is indoornav?
//
//	A small pipeline of independent packages:
//		• feature/    : decode GeoJSON features and their floor/role properties
//		• room/       : group features into rooms keyed by (name, floor)
//		• navgraph/   : link rooms by centroid distance, per link class
//		• astar/      : best-first room search with a Euclidean heuristic
//		• dijkstra/   : exact search, used as a reference and fallback
//		• bfs/        : connectivity checks over the room graph
//		• route/      : resolve room keys into coordinates
//		• enhance/    : densify a route with corridor and door waypoints
//		• directions/ : turn instructions, speech text and walking stats
//		• navigation/ : the Engine that runs the whole pipeline
//
// Quick ASCII example:
//
//	    RoomA ── Corridor1 ── RoomB
//
//	a corridor is cheaper to walk through than a room, so searches
//	prefer it whenever it is close enough to link.
//
// The navroute command under cmd/ exposes rooms, route, batch and check
// subcommands over a map file.
//
//	go install github.com/katalvlaran/indoornav/cmd/navroute@latest
package indoornav
