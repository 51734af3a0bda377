// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gradual/graded"
	"github.com/katalvlaran/gradual/levelio"
	"github.com/katalvlaran/gradual/lift"
)

type liftFlags struct {
	op       string
	register []string
}

func newLiftCmd(a *app) *cobra.Command {
	f := &liftFlags{}
	cmd := &cobra.Command{
		Use:   "lift --op TOKEN A.txt [B.txt]",
		Short: "Apply an operator level-wise to numeric level files",
		Long: `Reads one or two level files whose inputs are numbers and applies the
operator to every level of the merged level set.

Unary tokens (neg, abs) take one file; binary tokens (+ - * / % < > ==)
take two. Further tokens can be mapped to operations with --register:

  rlrun lift --register '**=Pow' --op '**' a.txt b.txt`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLift(cmd, f, args)
		},
	}
	cmd.Flags().StringVar(&f.op, "op", "", "operator token")
	cmd.Flags().StringSliceVar(&f.register, "register", nil, "extra operators as TOKEN=Method (binary)")
	_ = cmd.MarkFlagRequired("op")

	return cmd
}

func (a *app) runLift(cmd *cobra.Command, f *liftFlags, args []string) error {
	mode, err := a.cfg.Mode()
	if err != nil {
		return err
	}
	ops := lift.DefaultOperators()
	for _, entry := range f.register {
		token, method, ok := strings.Cut(entry, "=")
		if !ok {
			return fmt.Errorf("--register %q: want TOKEN=Method", entry)
		}
		if err := ops.Register(lift.Operator{Token: token, Method: method, Arity: 1}); err != nil {
			return err
		}
	}
	l := lift.NewLifter(nil,
		lift.WithMode(mode),
		lift.WithLogger(a.logger),
		lift.WithOperators(ops))

	operands := make([]any, 0, len(args))
	for _, path := range args {
		v, err := levelio.LoadValues(path)
		if err != nil {
			return err
		}
		operands = append(operands, v)
	}

	res, err := l.Op(cmd.Context(), f.op, operands[0], operands[1:]...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if g, ok := res.Graded(); ok {
		fmt.Fprintln(out, graded.Table("Result", g))
		return nil
	}
	fmt.Fprintln(out, res.Any())

	return nil
}
