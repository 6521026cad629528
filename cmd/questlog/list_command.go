package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"questlog/internal/normalize"
	"questlog/internal/progress"
	"questlog/internal/reconcile"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var statusFilter string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List questions with reconciled progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withEngine(cmd, func(runCtx context.Context, engine *reconcile.Engine) error {
				questions, err := engine.Reconcile(runCtx)
				if err != nil {
					return err
				}

				if filter := strings.ToLower(strings.TrimSpace(statusFilter)); filter != "" {
					filtered := questions[:0]
					for _, q := range questions {
						if string(q.Status) == filter {
							filtered = append(filtered, q)
						}
					}
					questions = filtered
				}

				if jsonOutput {
					return writeJSON(cmd, questions)
				}

				out := cmd.OutOrStdout()
				if len(questions) == 0 {
					fmt.Fprintln(out, "No questions found")
					return nil
				}

				colorize := shouldColorize(out)
				rows := make([][]string, 0, len(questions))
				for _, q := range questions {
					rows = append(rows, []string{
						q.ID,
						q.Title,
						displayCategory(q.Category),
						displayDifficulty(q.Difficulty),
						renderStatus(q.Status, colorize),
						q.Link,
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Title", "Category", "Difficulty", "Status", "Link"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
				))
				fmt.Fprintf(out, "%d questions, %d solved\n", len(questions), countSolved(questions))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&statusFilter, "status", "", "Only show questions with this status (pending, attempted, solved)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the question list as JSON")
	return cmd
}

func countSolved(questions []normalize.Question) int {
	solved := 0
	for _, q := range questions {
		if q.Status == progress.StatusSolved {
			solved++
		}
	}
	return solved
}
