package ports

import (
	"context"
	"time"

	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
)

// SuggestionCache stores price suggestions by inputs hash.
type SuggestionCache interface {
	Get(ctx context.Context, key string) (*dto.SuggestResponse, bool, error)
	Set(ctx context.Context, key string, value *dto.SuggestResponse, ttl time.Duration) error
}
