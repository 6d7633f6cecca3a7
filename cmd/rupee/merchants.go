package main

import (
	"sort"

	"github.com/spf13/cobra"
)

func merchantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merchants",
		Short: "List remembered merchant resolutions",
		Long: `List merchants whose category was resolved in previous runs.

These entries pre-warm the classifier's merchant cache, so repeat
merchants are categorized from the cache before any rule is consulted.`,
		RunE: runMerchants,
	}
}

func runMerchants(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	merchants, err := store.LoadMerchants(ctx)
	if err != nil {
		return err
	}

	if len(merchants) == 0 {
		cmd.Println("No merchants remembered yet.")
		return nil
	}

	names := make([]string, 0, len(merchants))
	for name := range merchants {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd.Printf("%-40s %s\n", name, merchants[name])
	}
	return nil
}
