package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"questlog/internal/idcache"
	"questlog/internal/logging"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the progress id cache",
	}

	cacheCmd.AddCommand(newCacheShowCommand(ctx))

	return cacheCmd
}

func newCacheShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show cached question to progress id mappings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}
			store, err := idcache.Open(cfg, logger)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.Load(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cache backend: %s (%s)\n", cfg.Cache.Backend, cfg.Cache.Path)
			if len(entries) == 0 {
				fmt.Fprintln(out, "Cache is empty")
				return nil
			}

			questionIDs := make([]string, 0, len(entries))
			for questionID := range entries {
				questionIDs = append(questionIDs, questionID)
			}
			sort.Strings(questionIDs)

			rows := make([][]string, 0, len(entries))
			for _, questionID := range questionIDs {
				rows = append(rows, []string{questionID, entries[questionID]})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Question ID", "Progress ID"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}
}
