package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/indoornav/navigation"
)

// batchFile is the YAML document read by the batch command.
type batchFile struct {
	Queries []struct {
		From  string `yaml:"from"`
		To    string `yaml:"to"`
		Floor *int   `yaml:"floor"`
	} `yaml:"queries"`
}

type batchRow struct {
	From      string                `json:"from"`
	To        string                `json:"to"`
	Itinerary *navigation.Itinerary `json:"itinerary,omitempty"`
	Error     string                `json:"error,omitempty"`
}

func newBatchCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Plan every query listed in a YAML file concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var bf batchFile
			if err := yaml.Unmarshal(data, &bf); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			e, err := g.engine(cmd)
			if err != nil {
				return err
			}

			rows := make([]batchRow, len(bf.Queries))
			var (
				queries []navigation.Query
				slots   []int
			)
			for i, bq := range bf.Queries {
				rows[i] = batchRow{From: bq.From, To: bq.To}
				q, err := buildQuery(e, bq.From, bq.To)
				if err != nil {
					rows[i].Error = err.Error()
					continue
				}
				q.TargetFloor = bq.Floor
				queries = append(queries, q)
				slots = append(slots, i)
			}

			results, err := e.Routes(cmd.Context(), queries)
			if err != nil {
				return err
			}
			for j, res := range results {
				row := &rows[slots[j]]
				if res.Err != nil {
					row.Error = res.Err.Error()
					continue
				}
				row.Itinerary = res.Itinerary
			}

			out := cmd.OutOrStdout()
			if g.wantJSON(out) {
				return writeJSON(out, rows)
			}
			for _, row := range rows {
				if row.Error != "" {
					writeLine(out, "%s → %s: error: %s", row.From, row.To, row.Error)
					continue
				}
				st := row.Itinerary.Stats
				writeLine(out, "%s → %s: %d steps, %.0f m, %.0f s",
					row.From, row.To, len(row.Itinerary.Directions), st.TotalDistance, st.EstimatedTime)
			}
			return nil
		},
	}
}
