package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pashkovdenis/thoughtmodel"
	"github.com/pashkovdenis/thoughtmodel/config"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	seed       []uint
	logLevel   string
	logJSON    bool
	softmax    bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "thoughtmodel",
		Short:         "Train a Thought on a corpus and check its answers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(cmd.ErrOrStderr(), opts.logLevel, opts.logJSON)
			if err != nil {
				return err
			}

			opts.logger = l.With("run_id", uuid.NewString()[:8])
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	root.PersistentFlags().BoolVar(&opts.logJSON, "log-json", false, "Write logs as JSON")

	demo := &cobra.Command{
		Use:   "demo",
		Short: "Train the built-in corpus and check every answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecks(cmd.Context(), cmd.OutOrStdout(), opts, config.Default())
		},
	}

	train := &cobra.Command{
		Use:   "train",
		Short: "Train a corpus file and check every answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.corpus()
			if err != nil {
				return err
			}

			return runChecks(cmd.Context(), cmd.OutOrStdout(), opts, c)
		},
	}

	answer := &cobra.Command{
		Use:   "answer [word...]",
		Short: "Train a corpus (the built-in one by default) and rank its answers for the given words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := config.Default()
			if opts.configPath != "" {
				var err error
				if c, err = opts.corpus(); err != nil {
					return err
				}
			}

			return runAnswer(cmd.Context(), cmd.OutOrStdout(), opts, c, args)
		},
	}

	for _, cmd := range []*cobra.Command{train, answer} {
		cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to the corpus YAML file")
		cmd.Flags().UintSliceVar(&opts.seed, "seed", nil, "PCG seed pair, overriding the corpus seed")
	}
	_ = train.MarkFlagRequired("config")
	answer.Flags().BoolVar(&opts.softmax, "softmax", false, "Show softmax probabilities instead of raw scores")

	root.AddCommand(demo, train, answer)
	return root
}

func newLogger(w io.Writer, level string, asJSON bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "Invalid log level %q", level)
	}

	hopts := &slog.HandlerOptions{Level: lvl}
	if asJSON {
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	}

	return slog.New(slog.NewTextHandler(w, hopts)), nil
}

func (o *options) corpus() (*config.Corpus, error) {
	c, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	return c, nil
}

// train builds the corpus' Thought and reinforces it with every example.
func (o *options) train(ctx context.Context, c *config.Corpus) (*thoughtmodel.Thought, error) {
	if len(o.seed) != 0 {
		if len(o.seed) != 2 {
			return nil, errors.Errorf("--seed takes exactly 2 values, got %d", len(o.seed))
		}

		c.Seed = []uint64{uint64(o.seed[0]), uint64(o.seed[1])}
	}

	t, err := c.Build()
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	t.SetLogger(o.logger).SetMetrics(thoughtmodel.NewMetrics(reg))

	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	if err = t.Train(ctx, c.Examples()); err != nil {
		return nil, err
	}

	o.logger.Info("training finished",
		"decisions", t.Len(),
		"examples", len(c.Training),
		"cycles", t.Cycles(),
		"duration", time.Since(start),
	)

	if mfs, err := reg.Gather(); err == nil {
		for _, mf := range mfs {
			if len(mf.GetMetric()) != 1 || mf.GetMetric()[0].GetCounter() == nil {
				continue
			}

			o.logger.Debug("metric", "name", mf.GetName(), "value", mf.GetMetric()[0].GetCounter().GetValue())
		}
	}

	return t, nil
}

func runChecks(ctx context.Context, w io.Writer, o *options, c *config.Corpus) error {
	t, err := o.train(ctx, c)
	if err != nil {
		return err
	}

	results, err := t.Check(c.CheckList())
	if err != nil {
		return err
	}

	failed := printChecks(w, results)
	if failed != 0 {
		return errors.Errorf("%d of %d checks failed", failed, len(results))
	}

	return nil
}

func runAnswer(ctx context.Context, w io.Writer, o *options, c *config.Corpus, words []string) error {
	t, err := o.train(ctx, c)
	if err != nil {
		return err
	}

	var outs []thoughtmodel.Output
	if o.softmax {
		if outs, err = t.Distribution(words); err != nil {
			return err
		}
	} else {
		outs = t.GetAnswers(words)
	}

	printOutputs(w, strings.Join(words, " "), outs)
	return nil
}
