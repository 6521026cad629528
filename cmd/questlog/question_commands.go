package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"questlog/internal/backend"
)

func newQuestionCommand(ctx *commandContext) *cobra.Command {
	questionCmd := &cobra.Command{
		Use:   "question",
		Short: "Manage the question catalog",
	}

	questionCmd.AddCommand(newQuestionAddCommand(ctx))
	questionCmd.AddCommand(newQuestionUpdateCommand(ctx))
	questionCmd.AddCommand(newQuestionDeleteCommand(ctx))

	return questionCmd
}

func registerDraftFlags(cmd *cobra.Command, draft *backend.QuestionDraft) {
	cmd.Flags().StringVar(&draft.Title, "title", "", "Question title")
	cmd.Flags().StringVar(&draft.Description, "description", "", "Problem statement")
	cmd.Flags().StringVar(&draft.Category, "category", "", "Category (dsa or sql)")
	cmd.Flags().StringVar(&draft.Difficulty, "difficulty", "", "Difficulty (easy, medium, hard)")
	cmd.Flags().StringVar(&draft.SampleInputOutput, "sample", "", "Sample input/output text")
	cmd.Flags().StringVar(&draft.Constraints, "constraints", "", "Constraints text")
	cmd.Flags().StringVar(&draft.Link, "link", "", "Problem URL")
}

func validateDraft(draft backend.QuestionDraft) error {
	if strings.TrimSpace(draft.Title) == "" {
		return errors.New("--title is required")
	}
	switch strings.ToLower(strings.TrimSpace(draft.Category)) {
	case "dsa", "sql":
	default:
		return fmt.Errorf("--category must be dsa or sql, got %q", draft.Category)
	}
	switch strings.ToLower(strings.TrimSpace(draft.Difficulty)) {
	case "easy", "medium", "hard":
	default:
		return fmt.Errorf("--difficulty must be easy, medium, or hard, got %q", draft.Difficulty)
	}
	if link := strings.TrimSpace(draft.Link); link != "" {
		if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
			return fmt.Errorf("--link must be an http(s) URL, got %q", link)
		}
	}
	return nil
}

func newQuestionAddCommand(ctx *commandContext) *cobra.Command {
	var draft backend.QuestionDraft

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a question to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateDraft(draft); err != nil {
				return err
			}
			return ctx.withClient(cmd, func(runCtx context.Context, client *backend.Client) error {
				if err := client.CreateQuestion(runCtx, draft); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added question %q\n", draft.Title)
				return nil
			})
		},
	}

	registerDraftFlags(cmd, &draft)
	return cmd
}

func newQuestionUpdateCommand(ctx *commandContext) *cobra.Command {
	var draft backend.QuestionDraft

	cmd := &cobra.Command{
		Use:   "update <question-id>",
		Short: "Replace a catalog entry's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateDraft(draft); err != nil {
				return err
			}
			return ctx.withClient(cmd, func(runCtx context.Context, client *backend.Client) error {
				if err := client.UpdateQuestion(runCtx, args[0], draft); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated question %s\n", args[0])
				return nil
			})
		},
	}

	registerDraftFlags(cmd, &draft)
	return cmd
}

func newQuestionDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <question-id>",
		Short: "Remove a question from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(cmd, func(runCtx context.Context, client *backend.Client) error {
				if err := client.DeleteQuestion(runCtx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted question %s\n", args[0])
				return nil
			})
		},
	}
}
