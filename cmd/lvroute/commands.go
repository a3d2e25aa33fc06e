package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/config"
	"github.com/katalvlaran/lvroute/distance"
	"github.com/katalvlaran/lvroute/network"
	"github.com/katalvlaran/lvroute/observability"
	"github.com/katalvlaran/lvroute/solver"
)

var errUnknownMode = errors.New("unknown mode")

// app carries the persistent flags and the state built from them in
// PersistentPreRunE.
type app struct {
	configPath string
	inputPath  string
	source     string

	cfg      *config.Config
	logger   *slog.Logger
	shutdown func(context.Context) error
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "lvroute",
		Short: "Time-budgeted route/value search over a tunnel network",
		Long: `lvroute reads a network of nodes with per-minute rewards and answers
how much value one actor (solo) or two cooperating actors (duo) can release
within a time budget.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.shutdown == nil {
				return nil
			}
			return a.shutdown(cmd.Context())
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "",
		"YAML config file (defaults apply when empty)")
	rootCmd.PersistentFlags().StringVar(&a.inputPath, "input", "",
		"network file (.txt report or .yaml); stdin when empty")
	rootCmd.PersistentFlags().StringVar(&a.source, "source", "",
		"start node, overrides config")

	rootCmd.AddCommand(a.solveCmd(), a.frontierCmd(), a.distancesCmd())
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.source != "" {
		cfg.Source = a.source
	}
	a.cfg = cfg

	a.logger, err = observability.NewLogger(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}

	if cfg.Telemetry.Stdout {
		a.shutdown, err = observability.SetupStdout(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *app) loadNetwork(cmd *cobra.Command) (*network.Network, error) {
	if a.inputPath != "" {
		return network.Load(a.inputPath)
	}
	nodes, err := network.ParseReport(cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	return network.New(nodes)
}

func (a *app) engine(cmd *cobra.Command) (*solver.Engine, error) {
	net, err := a.loadNetwork(cmd)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("network loaded", slog.Int("nodes", net.Len()), slog.Int("rewarding", len(net.Rewarding())))

	return solver.New(net,
		solver.WithLogger(a.logger),
		solver.WithMetrics(observability.NewMetricsRecorder()),
		solver.WithSpans(observability.NewSpanManager()),
		solver.WithWorkers(a.cfg.Search.Workers),
		solver.WithBoundPruning(a.cfg.Search.BoundPruning),
	)
}

func (a *app) runConfig(mode string) (config.RunConfig, error) {
	switch solver.Mode(mode) {
	case solver.ModeSolo:
		return a.cfg.Solo, nil
	case solver.ModeDuo:
		return a.cfg.Duo, nil
	default:
		return config.RunConfig{}, fmt.Errorf("%w: %q", errUnknownMode, mode)
	}
}

func (a *app) solveCmd() *cobra.Command {
	var only string

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the best solo and duo scores with their paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if only != "" {
				if _, err := a.runConfig(only); err != nil {
					return err
				}
			}
			e, err := a.engine(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if only == "" || only == string(solver.ModeSolo) {
				o, err := e.Solo(ctx, a.cfg.Source, a.cfg.Solo.Budget, a.cfg.Solo.Capacity)
				if err != nil {
					return err
				}
				printOutcome(out, o)
			}
			if only == "" || only == string(solver.ModeDuo) {
				o, err := e.Duo(ctx, a.cfg.Source, a.cfg.Duo.Budget, a.cfg.Duo.Capacity)
				if err != nil {
					return err
				}
				printOutcome(out, o)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&only, "only", "", "run a single mode (solo|duo)")
	return cmd
}

func printOutcome(w io.Writer, o solver.Outcome) {
	paths := make([]string, 0, len(o.Paths))
	for _, p := range o.Paths {
		paths = append(paths, strings.Join(p, " "))
	}
	fmt.Fprintf(w, "%s\t%d\t%s\n", o.Mode, o.Score, strings.Join(paths, " | "))
}

func (a *app) frontierCmd() *cobra.Command {
	var (
		mode string
		top  int
	)

	cmd := &cobra.Command{
		Use:   "frontier",
		Short: "Dump the top frontier entries of one mode's configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc, err := a.runConfig(mode)
			if err != nil {
				return err
			}
			e, err := a.engine(cmd)
			if err != nil {
				return err
			}
			res, err := e.Frontier(cmd.Context(), a.cfg.Source, rc.Budget, rc.Capacity)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			net := e.Network()
			for i, entry := range res.Frontier.Entries() {
				if top > 0 && i >= top {
					break
				}
				fmt.Fprintf(out, "%d\t%s\n", entry.Score, strings.Join(net.Names(entry.Path), " "))
			}
			fmt.Fprintf(out, "# states=%d recorded=%d evicted=%d pruned=%d\n",
				res.Stats.Popped, res.Stats.Recorded, res.Stats.Evicted, res.Stats.Pruned)
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", string(solver.ModeSolo), "configuration to explore (solo|duo)")
	cmd.Flags().IntVar(&top, "top", 10, "entries to print; 0 prints all")
	return cmd
}

func (a *app) distancesCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "distances",
		Short: "Print the all-pairs hop-distance matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			net, err := a.loadNetwork(cmd)
			if err != nil {
				return err
			}
			m := distance.Build(net)
			if check {
				if err := distance.Validate(m); err != nil {
					return err
				}
				if err := distance.CrossCheck(net, m); err != nil {
					return err
				}
				a.logger.Info("distance matrix valid", slog.Int("nodes", m.N()))
			}

			out := cmd.OutOrStdout()
			var b strings.Builder
			b.WriteString("  ")
			for i := range m.N() {
				fmt.Fprintf(&b, "\t%s", net.Name(i))
			}
			fmt.Fprintln(out, b.String())
			for i := range m.N() {
				b.Reset()
				b.WriteString(net.Name(i))
				for j := range m.N() {
					if m.Reachable(i, j) {
						fmt.Fprintf(&b, "\t%d", m.At(i, j))
					} else {
						b.WriteString("\t-")
					}
				}
				fmt.Fprintln(out, b.String())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "validate the matrix invariants and compare every row with a BFS walk")
	return cmd
}
