// Package shopsearch provides lexical product search for a storefront
// catalog: relevance-ranked search with typo tolerance, dropdown
// suggestions, match highlighting and a recent-search history backed by
// memory, Redis or Valkey.
//
//	client, _ := shopsearch.New(shopsearch.WithCatalogFile("catalog.yaml"))
//	defer client.Close()
//
//	hits, _ := client.Search("shirt").MinScore(5).Highlight().Do(ctx)
//	tips, _ := client.Suggest(ctx, "sh", 6)
//	recent := client.History().Add(ctx, "shirt")
//
// Without a catalog option the client serves the built-in sample catalog.
package shopsearch
