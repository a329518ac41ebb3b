package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func historyCmd(opts *appOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent searches",
		Long:  "Prints the recent-search list, most recent first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.close()
			return printHistory(cmd.OutOrStdout(), a.history.Get(cmd.Context()))
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <term>",
		Short: "Record a search term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.close()
			return printHistory(cmd.OutOrStdout(), a.history.Add(cmd.Context(), args[0]))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget all recent searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer a.close()
			a.history.Clear(cmd.Context())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return err
		},
	})

	return cmd
}

func printHistory(w io.Writer, terms []string) error {
	if len(terms) == 0 {
		_, err := fmt.Fprintln(w, "No recent searches.")
		return err
	}
	for i, t := range terms {
		if _, err := fmt.Fprintf(w, "%2d. %s\n", i+1, t); err != nil {
			return err
		}
	}
	return nil
}
