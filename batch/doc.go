// SPDX-License-Identifier: MIT

// Package batch produces graded string values by running an external
// program once per level.
//
// Program contract:
//   - the level's input is written to stdin, without a trailing newline;
//   - stdout, with surrounding whitespace trimmed, is the level's output;
//   - empty output is recorded as "None";
//   - a non-zero exit status fails the whole run.
//
// Invocations are independent and run on a bounded worker pool
// (errgroup with SetLimit). Results are stored by level index, so the
// completion order never affects the outcome. The collected outputs are
// canonicalized exactly like lifted results: constant output collapses to
// a bare string.
//
// Example:
//
//	cmd, _ := batch.ParseCommand(`python3 program.py`)
//	r, _ := batch.NewRunner(cmd, batch.WithWorkers(-1))
//	res, err := r.RunLevels(ctx, []float64{1, 0.8}, []string{"input1", "input2"})
package batch
