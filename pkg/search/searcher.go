// Package search defines the contract for retrieving reference snippets that
// enrich chat prompts. Callers treat search as best-effort; the chat flow
// swallows search failures rather than failing the request.
package search

import (
	"context"
)

type Searcher interface {
	// Search returns up to maxResults content snippets matching the query.
	Search(ctx context.Context, query string, maxResults int) ([]string, error)
}
