package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/indoornav/config"
	"github.com/katalvlaran/indoornav/feature"
	"github.com/katalvlaran/indoornav/navigation"
	"github.com/katalvlaran/indoornav/observe"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	mapPath    string
	configPath string
	jsonOut    bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "navroute",
		Short:         "Indoor route planning over GeoJSON floor plans",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&g.mapPath, "map", "m", "", "GeoJSON FeatureCollection of the building (required)")
	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "YAML routing configuration")
	root.PersistentFlags().BoolVar(&g.jsonOut, "json", false, "force JSON output (default when stdout is not a terminal)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log pipeline stages to stderr")
	_ = root.MarkPersistentFlagRequired("map")

	root.AddCommand(newRoomsCmd(g), newRouteCmd(g), newBatchCmd(g), newCheckCmd(g))
	return root
}

// engine loads the map and configuration and builds a navigation engine.
func (g *globalFlags) engine(cmd *cobra.Command) (*navigation.Engine, error) {
	f, err := os.Open(g.mapPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	features, err := feature.Decode(f)
	if err != nil {
		return nil, err
	}

	cfg := config.Default()
	if g.configPath != "" {
		if cfg, err = config.Load(g.configPath); err != nil {
			return nil, err
		}
	}

	opts := cfg.Options()
	if g.verbose {
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, navigation.WithObserver(observe.NewSlog(logger)))
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return navigation.New(ctx, features, opts...)
}

// wantJSON reports whether output should be JSON: forced by flag, or when
// writing to a file descriptor that is not a terminal.
func (g *globalFlags) wantJSON(w io.Writer) bool {
	if g.jsonOut {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeLine(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}
