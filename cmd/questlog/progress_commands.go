package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"questlog/internal/reconcile"
)

func newAttemptCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "attempt <question-id>",
		Short: "Mark a question as attempted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withEngine(cmd, func(runCtx context.Context, engine *reconcile.Engine) error {
				if _, err := engine.Reconcile(runCtx); err != nil {
					return err
				}
				progressID, err := engine.BeginAttempt(runCtx, args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Question %s marked attempted\n", args[0])
				if progressID == "" {
					fmt.Fprintln(out, "Warning: the backend did not return a progress id; solving will need a later sync to recover it")
				}
				return nil
			})
		},
	}
}

func newSolveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <question-id>",
		Short: "Mark an attempted question as solved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withEngine(cmd, func(runCtx context.Context, engine *reconcile.Engine) error {
				if _, err := engine.Reconcile(runCtx); err != nil {
					return err
				}
				if err := engine.MarkSolved(runCtx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Question %s marked solved\n", args[0])
				return nil
			})
		},
	}
}

func newUnsolveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unsolve <question-id>",
		Short: "Move a solved question back to attempted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withEngine(cmd, func(runCtx context.Context, engine *reconcile.Engine) error {
				if _, err := engine.Reconcile(runCtx); err != nil {
					return err
				}
				if err := engine.MarkAttempted(runCtx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Question %s moved back to attempted\n", args[0])
				return nil
			})
		},
	}
}
