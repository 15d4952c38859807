package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
)

func modelServer(t *testing.T, status int, text string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "text", "text": text}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func request() dto.AIPriceRequest {
	return dto.AIPriceRequest{
		ProdukNama:      "Es Kopi Susu",
		TotalHPP:        decimal.NewFromInt(8000),
		TargetMarginPct: decimal.NewFromInt(30),
		RulePrice:       decimal.NewFromInt(11429),
	}
}

func TestSuggestPrice(t *testing.T) {
	srv := modelServer(t, http.StatusOK, "```json\n{\"recommended_price\": 12000, \"reasoning\": \"dibulatkan\"}\n```")
	svc := NewAnthropicService("test-key", "model").WithEndpoint(srv.URL)

	advice, err := svc.SuggestPrice(context.Background(), request())
	require.NoError(t, err)
	assert.True(t, advice.RecommendedPrice.Equal(decimal.NewFromInt(12000)))
	assert.Equal(t, "dibulatkan", advice.Reasoning)
}

func TestSuggestPrice_BelowHPPRejected(t *testing.T) {
	srv := modelServer(t, http.StatusOK, `{"recommended_price": 5000, "reasoning": "murah"}`)
	svc := NewAnthropicService("test-key", "model").WithEndpoint(srv.URL)

	_, err := svc.SuggestPrice(context.Background(), request())
	assert.Error(t, err)
}

func TestSuggestPrice_HTTPError(t *testing.T) {
	srv := modelServer(t, http.StatusInternalServerError, "")
	svc := NewAnthropicService("test-key", "model").WithEndpoint(srv.URL)

	_, err := svc.SuggestPrice(context.Background(), request())
	assert.Error(t, err)
}

func TestSuggestPrice_NoKey(t *testing.T) {
	_, err := NewAnthropicService("", "model").SuggestPrice(context.Background(), request())
	assert.Error(t, err)
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON("Berikut hasilnya: {\"a\":1} semoga membantu"))
	assert.Equal(t, `{"a":1}`, extractJSON("```json\n{\"a\":1}\n```"))
	assert.Empty(t, extractJSON("tidak ada json"))
}
