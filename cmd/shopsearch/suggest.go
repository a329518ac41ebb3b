package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type suggestionItem struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
}

func suggestCmd(opts *appOptions) *cobra.Command {
	var (
		limit      int
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "suggest [partial]",
		Short: "Show dropdown suggestions",
		Long:  "Prints catalog completions followed by matching popular searches. Without input, prints the top popular searches.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			partial := ""
			if len(args) == 1 {
				partial = args[0]
			}
			return runSuggest(cmd, opts, partial, limit, outputJSON)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of suggestions (default: suggest.merged_limit)")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Print suggestions as JSON")

	return cmd
}

func runSuggest(cmd *cobra.Command, opts *appOptions, partial string, limit int, outputJSON bool) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, opts)
	if err != nil {
		return err
	}
	defer a.close()

	suggestions, err := a.search.Suggest(ctx, partial, limit)
	if err != nil {
		return err
	}

	items := make([]suggestionItem, len(suggestions))
	for i := range suggestions {
		items[i] = suggestionItem{Text: suggestions[i].Text(), Kind: string(suggestions[i].Kind())}
	}

	out := cmd.OutOrStdout()
	if outputJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}
	for _, it := range items {
		if _, err := fmt.Fprintf(out, "%-24s %s\n", it.Text, it.Kind); err != nil {
			return err
		}
	}
	return nil
}
