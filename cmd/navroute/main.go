// Command navroute plans routes through a GeoJSON floor plan.
//
//	navroute rooms --map building.geojson
//	navroute route RoomA@0 RoomB@1 --map building.geojson
//	navroute batch queries.yaml --map building.geojson
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "navroute:", err)
		os.Exit(1)
	}
}
