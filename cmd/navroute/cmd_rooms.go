package main

import (
	"github.com/spf13/cobra"
)

type roomRow struct {
	Name     string     `json:"name"`
	Floor    int        `json:"floor"`
	Role     string     `json:"role"`
	Centroid [2]float64 `json:"centroid"`
	Features int        `json:"features"`
}

func newRoomsCmd(g *globalFlags) *cobra.Command {
	var floor int
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "List the rooms found in the map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := g.engine(cmd)
			if err != nil {
				return err
			}
			filter := cmd.Flags().Changed("floor")

			var rows []roomRow
			for _, r := range e.Index().Rooms() {
				if filter && r.Floor != floor {
					continue
				}
				rows = append(rows, roomRow{
					Name:     r.Name,
					Floor:    r.Floor,
					Role:     r.Role.String(),
					Centroid: [2]float64{r.Centroid[0], r.Centroid[1]},
					Features: len(r.Features),
				})
			}

			out := cmd.OutOrStdout()
			if g.wantJSON(out) {
				return writeJSON(out, rows)
			}
			for _, r := range rows {
				writeLine(out, "%-24s floor %-3d %-10s (%.6f, %.6f)", r.Name, r.Floor, r.Role, r.Centroid[0], r.Centroid[1])
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&floor, "floor", "f", 0, "only list rooms on this floor")
	return cmd
}
