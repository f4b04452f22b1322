package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type checkReport struct {
	Groups   int        `json:"groups"`
	Isolated [][]string `json:"isolated"`
}

func newCheckCmd(g *globalFlags) *cobra.Command {
	var floor int
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report rooms that cannot be reached from the largest connected group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := g.engine(cmd)
			if err != nil {
				return err
			}
			var only *int
			if cmd.Flags().Changed("floor") {
				only = &floor
			}
			groups, err := e.Components(only)
			if err != nil {
				return err
			}

			largest := 0
			for i, grp := range groups {
				if len(grp) > len(groups[largest]) {
					largest = i
				}
			}
			rep := checkReport{Groups: len(groups), Isolated: [][]string{}}
			for i, grp := range groups {
				if i == largest {
					continue
				}
				names := make([]string, len(grp))
				for j, k := range grp {
					names[j] = fmt.Sprintf("%s@%d", k.Name, k.Floor)
				}
				rep.Isolated = append(rep.Isolated, names)
			}

			out := cmd.OutOrStdout()
			if g.wantJSON(out) {
				return writeJSON(out, rep)
			}
			writeLine(out, "%d connected group(s)", rep.Groups)
			for _, names := range rep.Isolated {
				writeLine(out, "unreachable: %s", strings.Join(names, ", "))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&floor, "floor", "f", 0, "check a single floor")
	return cmd
}
