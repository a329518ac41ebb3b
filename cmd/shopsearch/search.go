package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/shopsearch/internal/domain/search/filter"
	"github.com/kailas-cloud/shopsearch/internal/domain/search/request"
	"github.com/kailas-cloud/shopsearch/internal/domain/search/result"
	"github.com/kailas-cloud/shopsearch/internal/ranking"
)

// ANSI bold, used to mark query matches in terminal output.
const (
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

type searchFlags struct {
	minScore     int
	maxResults   int
	catalogOrder bool
	category     string
	priceRange   string
	minRating    float64
	noColor      bool
	noHistory    bool
	outputJSON   bool
}

type searchHit struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Score    int     `json:"score"`
}

func searchCmd(opts *appOptions) *cobra.Command {
	var f searchFlags

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog",
		Long:  "Ranks catalog entries against the query and prints them best first. The query is recorded in history.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, args[0], &f)
		},
	}

	cmd.Flags().IntVar(&f.minScore, "min-score", 0, "Minimum relevance score (default: search.min_score)")
	cmd.Flags().IntVarP(&f.maxResults, "limit", "n", 0, "Maximum number of results (default: search.max_results)")
	cmd.Flags().BoolVar(&f.catalogOrder, "catalog-order", false, "Keep catalog order instead of sorting by score")
	cmd.Flags().StringVar(&f.category, "category", "", "Only entries of this category")
	cmd.Flags().StringVar(&f.priceRange, "price", "", "Price range as min-max, e.g. 25-50")
	cmd.Flags().Float64Var(&f.minRating, "min-rating", 0, "Minimum rating")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "Do not mark matches in bold")
	cmd.Flags().BoolVar(&f.noHistory, "no-history", false, "Do not record the query in history")
	cmd.Flags().BoolVar(&f.outputJSON, "json", false, "Print results as JSON")

	return cmd
}

func runSearch(cmd *cobra.Command, opts *appOptions, query string, f *searchFlags) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, opts)
	if err != nil {
		return err
	}
	defer a.close()

	flt, err := f.filter(cmd)
	if err != nil {
		return err
	}

	p := request.Params{
		Query:           query,
		MinScore:        &a.cfg.Search.MinScore,
		MaxResults:      &a.cfg.Search.MaxResults,
		Fuzzy:           a.cfg.Search.Fuzzy,
		SortByRelevance: a.cfg.Search.SortByRelevance,
		Filter:          flt,
	}
	if cmd.Flags().Changed("min-score") {
		p.MinScore = &f.minScore
	}
	if cmd.Flags().Changed("limit") {
		p.MaxResults = &f.maxResults
	}
	if f.catalogOrder {
		p.SortByRelevance = ptr(false)
	}
	req, err := request.New(p)
	if err != nil {
		return err
	}

	hits, err := a.search.Search(ctx, &req)
	if err != nil {
		return err
	}
	if !f.noHistory {
		a.history.Add(ctx, query)
	}

	out := cmd.OutOrStdout()
	if f.outputJSON {
		return printHitsJSON(out, hits)
	}
	if len(hits) == 0 {
		_, err := fmt.Fprintf(out, "No products match %q.\n", query)
		return err
	}
	return printHits(out, hits, req.Query(), !f.noColor)
}

func (f *searchFlags) filter(cmd *cobra.Command) (filter.Filter, error) {
	var price *filter.Range
	if f.priceRange != "" {
		r, err := filter.ParseRange(f.priceRange)
		if err != nil {
			return filter.Filter{}, err
		}
		price = &r
	}
	var minRating *float64
	if cmd.Flags().Changed("min-rating") {
		minRating = &f.minRating
	}
	return filter.New(f.category, price, minRating)
}

func printHits(w io.Writer, hits []result.Scored, query string, color bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "SCORE\tID\tNAME\tCATEGORY\tPRICE")
	for i := range hits {
		e := hits[i].Entry()
		name := e.Name()
		if color {
			name = ranking.HighlightWith(name, query, ansiBold, ansiReset)
		}
		_, _ = fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%.2f\n", hits[i].Score(), e.ID(), name, e.Category(), e.Price())
	}
	return tw.Flush()
}

func printHitsJSON(w io.Writer, hits []result.Scored) error {
	items := make([]searchHit, len(hits))
	for i := range hits {
		e := hits[i].Entry()
		items[i] = searchHit{
			ID:       e.ID(),
			Name:     e.Name(),
			Category: e.Category(),
			Price:    e.Price(),
			Score:    hits[i].Score(),
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

func ptr[T any](v T) *T { return &v }
