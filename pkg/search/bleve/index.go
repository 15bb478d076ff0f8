// Package bleve backs the Searcher contract with a local full-text index.
// It serves deployments without a hosted search service.
package bleve

import (
	"context"
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"

	"ai-chat-be/pkg/search"
)

type Index struct {
	index bleve.Index
}

var _ search.Searcher = &Index{}

// NewIndex creates or opens a bleve index at the given path.
func NewIndex(indexPath string) (*Index, error) {
	index, err := bleve.Open(indexPath)
	if err == bleve.ErrorIndexPathDoesNotExist {
		index, err = bleve.New(indexPath, buildIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("create search index: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("open search index: %w", err)
	}

	return &Index{index: index}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()

	docMapping := bleve.NewDocumentMapping()

	// Content is both searchable and stored so hits can return it directly.
	contentField := bleve.NewTextFieldMapping()
	contentField.Analyzer = standard.Name
	contentField.Store = true
	contentField.Index = true
	docMapping.AddFieldMappingsAt("content", contentField)

	indexMapping.DefaultMapping = docMapping
	return indexMapping
}

// IndexDocument adds or replaces a document in the index.
func (b *Index) IndexDocument(id, content string) error {
	return b.index.Index(id, map[string]interface{}{
		"content": content,
	})
}

func (b *Index) Search(ctx context.Context, query string, maxResults int) ([]string, error) {
	q := bleve.NewMatchQuery(query)

	searchRequest := bleve.NewSearchRequest(q)
	searchRequest.Size = maxResults
	searchRequest.Fields = []string{"content"}

	searchResult, err := b.index.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	results := make([]string, 0, len(searchResult.Hits))
	for _, hit := range searchResult.Hits {
		if content, ok := hit.Fields["content"].(string); ok {
			results = append(results, content)
		}
	}
	return results, nil
}

func (b *Index) Close() error {
	return b.index.Close()
}
