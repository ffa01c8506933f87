package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/giftflow/builder"
	"github.com/katalvlaran/giftflow/flow"
	"github.com/katalvlaran/giftflow/problem"
	"github.com/katalvlaran/giftflow/projection"
)

func newSolveCmd(configFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [problem.yaml]",
		Short: "Solve an allocation problem and print the assignment",
		Long: `Builds the Source → item → recipient → Sink network for the problem and runs
Edmonds–Karp (--mode maxflow) or successive shortest paths (--mode mincost).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := cmd.Flags().Set("input", args[0]); err != nil {
					return err
				}
			}
			cfg, err := loadConfig(cmd, *configFile)
			if err != nil {
				return err
			}
			logger, runID, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}

			return runSolve(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), logger, runID)
		},
	}
	registerSolveFlags(cmd)

	return cmd
}

// runSolve is the solve pipeline: decode → build → solve → project → render.
func runSolve(ctx context.Context, cfg config, stdin io.Reader, out io.Writer, logger *slog.Logger, runID string) error {
	p, err := readProblem(cfg.Input, stdin)
	if err != nil {
		return err
	}
	logger.Info("problem loaded", "input", cfg.Input, "items", len(p.Items), "recipients", len(p.Recipients))

	alloc, err := p.Build(append(cfg.builderOptions(), builder.WithLogger(logger))...)
	if err != nil {
		return err
	}
	net := alloc.Network()

	solve := flow.EdmondsKarp
	if cfg.Mode == modeMinCost {
		solve = flow.MinCostFlow
	}
	res, err := solve(ctx, net, net.Source(), net.Sink(), &flow.FlowOptions{
		DefaultCapacity:  cfg.DefaultCapacity,
		MaxAugmentations: cfg.MaxAugmentations,
		Logger:           logger,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Mode, err)
	}
	logger.Info("solved", "mode", cfg.Mode, "value", res.Value, "cost", res.Cost)

	edges, err := projection.Flowing(net, res)
	if err != nil {
		return err
	}
	paths, err := projection.Paths(net, res)
	if err != nil {
		return err
	}

	rep := newReport(runID, cfg.Mode, res, edges, paths)
	if cfg.Format == "json" {
		return rep.writeJSON(out)
	}

	return rep.writeText(out)
}

func readProblem(input string, stdin io.Reader) (*problem.Problem, error) {
	if input == "-" {
		return problem.Decode(stdin)
	}
	if _, err := os.Stat(input); err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}

	return problem.Load(input)
}
