package navigation_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/indoornav/internal/fixture"
	"github.com/katalvlaran/indoornav/navigation"
	"github.com/katalvlaran/indoornav/room"
)

// ExamplePlan routes between two floors through an elevator.
func ExamplePlan() {
	it, err := navigation.Plan(context.Background(), fixture.TwoFloorsElevator(), navigation.Query{
		Start: room.Key{Name: "RoomA", Floor: 0},
		End:   room.Key{Name: "RoomB", Floor: 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(it.Route.Keys)
	for _, d := range it.Directions {
		fmt.Println(d.Instruction)
	}
	// Output:
	// [RoomA_F0 Elevator_1_F0 Elevator_1_F1 RoomB_F1]
	// Start at RoomA, heading east
	// Take the elevator up to floor 1
	// Arrive at RoomB
}
