package ports

import (
	"context"

	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
)

// PriceAdvisor is the outbound port to the AI price-suggestion model.
// Callers bound ctx with a timeout; any error makes the caller fall back to the rule price.
type PriceAdvisor interface {
	SuggestPrice(ctx context.Context, req dto.AIPriceRequest) (*dto.AIPriceAdvice, error)
}
