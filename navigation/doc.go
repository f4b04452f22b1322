// Package navigation runs the full indoor routing pipeline:
//
//	features → room.Group → navgraph.Build → astar.Search (or dijkstra)
//	         → route.Resolve → enhance.AddWaypoints → directions.Generate
//
// An Engine groups a feature collection once and answers any number of
// queries against it; graphs are built lazily per target floor and shared
// between concurrent queries. FindRoute and Plan are one-shot wrappers.
//
// Every failure is one of the sentinel errors below, possibly wrapping a
// lower-level cause, and the returned route is nil whenever err != nil:
//
//	ErrEmptyRoomName  start or end name is blank
//	ErrRoomNotFound   no room with that (name, floor) in the collection
//	ErrNotInGraph     the room exists but the floor filter or its role excludes it
//	ErrNoPath         the rooms are not connected
//
// Each query gets a UUID, an OpenTelemetry span named "navigation.route" with
// one span event per stage, and an observe.Event per stage for the configured
// Observer. Neither affects the result.
package navigation
