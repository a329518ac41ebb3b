package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/shopsearch/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &appOptions{}

	rootCmd := &cobra.Command{
		Use:           "shopsearch",
		Short:         "Storefront product search",
		Long:          "Ranked product search, autocomplete suggestions and recent-search history over a product catalog",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.env, "env", "", "Config environment (default: $ENV or local)")
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (overrides --env lookup)")
	rootCmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "Catalog file path (overrides catalog.path)")

	rootCmd.AddCommand(serveCmd(opts))
	rootCmd.AddCommand(searchCmd(opts))
	rootCmd.AddCommand(suggestCmd(opts))
	rootCmd.AddCommand(historyCmd(opts))

	return rootCmd
}
