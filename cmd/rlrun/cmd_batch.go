// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gradual/batch"
	"github.com/katalvlaran/gradual/graded"
	"github.com/katalvlaran/gradual/levelio"
)

type batchFlags struct {
	input       string
	command     string
	nproc       int
	timeout     time.Duration
	metricsFile string
}

func newBatchCmd(a *app) *cobra.Command {
	f := &batchFlags{}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run a program for each level and print the resulting table",
		Long: `Runs the command once per level with that level's input on stdin and
collects the trimmed stdout ("None" when empty) into a graded value.

Example:
  rlrun batch -i inputs.txt -c "python3 program.py" -n 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBatch(cmd, f)
		},
	}
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "input file (levels on the first line, inputs on the rest)")
	cmd.Flags().StringVarP(&f.command, "command", "c", "", `command to execute (e.g. "python3 program.py")`)
	cmd.Flags().IntVarP(&f.nproc, "nproc", "n", batch.DefaultWorkers, "workers (-1: all CPUs, 1: sequential, >1: specific count)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "per-invocation timeout (0: none)")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("command")

	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, f *batchFlags) error {
	workers := a.cfg.Batch.Workers
	if cmd.Flags().Changed("nproc") {
		workers = f.nproc
	}
	timeout, err := a.cfg.Timeout()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("timeout") {
		timeout = f.timeout
	}

	in, err := levelio.LoadValue(f.input)
	if err != nil {
		return err
	}
	command, err := batch.ParseCommand(f.command)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics, err := batch.NewMetrics(reg)
	if err != nil {
		return err
	}
	runner, err := batch.NewRunner(command,
		batch.WithWorkers(workers),
		batch.WithTimeout(timeout),
		batch.WithLogger(a.logger),
		batch.WithMetrics(metrics))
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := runner.Run(cmd.Context(), in)
	elapsed := time.Since(start)
	if f.metricsFile != "" {
		if werr := prometheus.WriteToTextfile(f.metricsFile, reg); werr != nil {
			a.logger.Warn("writing metrics failed", zap.String("path", f.metricsFile), zap.Error(werr))
		}
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, programTable(res))
	fmt.Fprintf(out, "Execution time: %.3f seconds\n", elapsed.Seconds())

	return nil
}

// programTable renders a batch result; a collapsed result is shown as its
// single level-1.0 row.
func programTable(res graded.Result[string]) string {
	if v, ok := res.Graded(); ok {
		return graded.Table("Program", v)
	}

	return graded.Table("Program", graded.Crisp(res.Top()))
}
