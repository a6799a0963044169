// Package prodsearch wires the product catalog, the embedding provider and
// the similarity ranker into a Service that answers semantic product
// searches.
//
//	repo, err := prodsearch.OpenCatalog(ctx, catalog.Sample())
//	svc, err := prodsearch.NewService(ctx, repo, prodsearch.NewProviderFactory(ai.DefaultConfig()))
//	results, err := svc.Search(ctx, "wireless headphones")
package prodsearch
