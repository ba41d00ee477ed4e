package application

import (
	"context"
	"strings"
)

const (
	defaultSearchSize = 10
	maxSearchSize     = 50
)

// SearchUsersUseCase queries the user index. Without an indexer it returns no hits.
type SearchUsersUseCase struct {
	Indexer UserIndexer
}

func NewSearchUsersUseCase(indexer UserIndexer) *SearchUsersUseCase {
	return &SearchUsersUseCase{Indexer: indexer}
}

func (uc *SearchUsersUseCase) Execute(ctx context.Context, query string, size int) ([]UserSearchHit, error) {
	query = strings.TrimSpace(query)
	if uc.Indexer == nil || query == "" {
		return []UserSearchHit{}, nil
	}
	switch {
	case size <= 0:
		size = defaultSearchSize
	case size > maxSearchSize:
		size = maxSearchSize
	}
	return uc.Indexer.Search(ctx, query, size)
}
