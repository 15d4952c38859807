// Package cache holds the price-suggestion cache: Redis when configured, a no-op otherwise.
package cache

import (
	"context"
	"time"

	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
	"github.com/sigitdim/fortisapp-sub002/internal/application/ports"
)

var (
	_ ports.SuggestionCache = NoopSuggestionCache{}
	_ ports.SuggestionCache = (*RedisSuggestionCache)(nil)
)

type NoopSuggestionCache struct{}

func (NoopSuggestionCache) Get(_ context.Context, _ string) (*dto.SuggestResponse, bool, error) {
	return nil, false, nil
}

func (NoopSuggestionCache) Set(_ context.Context, _ string, _ *dto.SuggestResponse, _ time.Duration) error {
	return nil
}
