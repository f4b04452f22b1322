package main

import (
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/indoornav/directions"
	"github.com/katalvlaran/indoornav/navigation"
)

func newRouteCmd(g *globalFlags) *cobra.Command {
	var (
		floor int
		speak bool
	)
	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Plan a route between two rooms (Name or Name@Floor)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.engine(cmd)
			if err != nil {
				return err
			}
			q, err := buildQuery(e, args[0], args[1])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("floor") {
				q.TargetFloor = &floor
			}

			it, err := e.Plan(cmd.Context(), q)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if g.wantJSON(out) {
				return writeJSON(out, it)
			}
			printItinerary(out, it, speak)
			return nil
		},
	}
	cmd.Flags().IntVarP(&floor, "floor", "f", 0, "restrict the search to one floor")
	cmd.Flags().BoolVar(&speak, "speak", false, "append the spoken script")
	return cmd
}

func buildQuery(e *navigation.Engine, from, to string) (navigation.Query, error) {
	start, err := resolveRef(e.Index(), from)
	if err != nil {
		return navigation.Query{}, err
	}
	end, err := resolveRef(e.Index(), to)
	if err != nil {
		return navigation.Query{}, err
	}
	return navigation.Query{Start: start, End: end}, nil
}

func printItinerary(w io.Writer, it *navigation.Itinerary, speak bool) {
	for i, d := range it.Directions {
		if d.Kind == directions.KindDestination {
			writeLine(w, "%2d. %s", i+1, d.Instruction)
			continue
		}
		writeLine(w, "%2d. %s (%.0f m)", i+1, d.Instruction, d.Distance)
	}
	st := it.Stats
	writeLine(w, "Total %.0f m, about %.0f min, floors %v", st.TotalDistance, math.Ceil(st.EstimatedTime/60), st.Floors)
	if speak {
		writeLine(w, "%s", directions.Script(it.Directions))
	}
}
