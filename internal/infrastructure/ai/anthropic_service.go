package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
	"github.com/sigitdim/fortisapp-sub002/internal/application/ports"
	"github.com/sigitdim/fortisapp-sub002/pkg/money"
)

var _ ports.PriceAdvisor = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	priceSystemPrompt = `Kamu adalah konsultan harga untuk usaha kuliner di Indonesia.
Balas HANYA dengan satu objek JSON valid (tanpa markdown) dengan struktur:
{
  "recommended_price": <angka rupiah bulat>,
  "reasoning": "<alasan singkat dalam bahasa Indonesia, maksimal 200 karakter>"
}

Aturan:
- recommended_price tidak boleh di bawah HPP.
- Pertimbangkan harga target dan harga tier yang diberikan; bulatkan ke kelipatan 500 bila wajar.
- Jangan menulis teks apa pun di luar objek JSON.`
)

// AnthropicService implements ports.PriceAdvisor over the Anthropic Messages REST API.
type AnthropicService struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// NewAnthropicService builds the adapter. An empty apiKey makes every call fail fast,
// which callers treat as "AI unavailable".
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey:   apiKey,
		model:    model,
		endpoint: anthropicMessagesURL,
		// network ceiling; the use case applies its own shorter context deadline
		httpClient: &http.Client{Timeout: 25 * time.Second},
	}
}

// WithEndpoint points the adapter at another messages URL.
func (s *AnthropicService) WithEndpoint(url string) *AnthropicService {
	s.endpoint = url
	return s
}

// ── Anthropic Messages API wire types ─────────────────────────────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

type pricePayload struct {
	RecommendedPrice decimal.Decimal `json:"recommended_price"`
	Reasoning        string          `json:"reasoning"`
}

var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// ── Port implementation ───────────────────────────────────────────────────────

func (s *AnthropicService) SuggestPrice(ctx context.Context, in dto.AIPriceRequest) (*dto.AIPriceAdvice, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("ai: ANTHROPIC_API_KEY is not configured")
	}

	body, err := json.Marshal(anthropicRequest{
		Model:     s.model,
		MaxTokens: 512,
		System:    priceSystemPrompt,
		Messages:  []anthropicMessage{{Role: "user", Content: describe(in)}},
	})
	if err != nil {
		return nil, fmt.Errorf("ai: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ai: build request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("ai: deadline or cancel: %w", ctx.Err())
		}
		return nil, fmt.Errorf("ai: http call failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("ai: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if json.Unmarshal(raw, &errResp) == nil && errResp.Error != nil {
			return nil, fmt.Errorf("ai: anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return nil, fmt.Errorf("ai: anthropic http %d: %s", resp.StatusCode, string(raw))
	}

	var msg anthropicResponse
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("ai: decode response: %w", err)
	}
	if len(msg.Content) == 0 {
		return nil, fmt.Errorf("ai: empty response")
	}

	clean := extractJSON(msg.Content[0].Text)
	if clean == "" {
		return nil, fmt.Errorf("ai: no JSON object in model output: %s", msg.Content[0].Text)
	}
	var payload pricePayload
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return nil, fmt.Errorf("ai: parse price JSON: %w (extracted: %s)", err, clean)
	}
	if payload.RecommendedPrice.LessThan(in.TotalHPP) {
		return nil, fmt.Errorf("ai: recommended price %s is below HPP %s", payload.RecommendedPrice, in.TotalHPP)
	}
	return &dto.AIPriceAdvice{
		RecommendedPrice: payload.RecommendedPrice,
		Reasoning:        strings.TrimSpace(payload.Reasoning),
	}, nil
}

func describe(in dto.AIPriceRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Produk: %s\n", in.ProdukNama)
	if in.Kategori != "" {
		fmt.Fprintf(&b, "Kategori: %s\n", in.Kategori)
	}
	fmt.Fprintf(&b, "HPP per porsi: %s (bahan %s, overhead %s, tenaga kerja %s)\n",
		money.Rupiah(in.TotalHPP), money.Rupiah(in.BahanPerPorsi),
		money.Rupiah(in.OverheadPerPorsi), money.Rupiah(in.TenagaKerjaPerPorsi))
	fmt.Fprintf(&b, "Target margin: %s%% -> harga %s\n", in.TargetMarginPct.String(), money.Rupiah(in.RulePrice))
	for _, t := range in.Tiers {
		fmt.Fprintf(&b, "Tier margin %s%%: %s\n", t.MarginPct.StringFixed(0), money.Rupiah(t.Price))
	}
	return b.String()
}

// extractJSON returns the first JSON object in free text, tolerating markdown fences.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if end := strings.LastIndex(after, "```"); end != -1 {
			after = after[:end]
		}
		text = strings.TrimSpace(after)
	}
	if strings.HasPrefix(text, "{") {
		return text
	}
	return strings.TrimSpace(jsonBlockRe.FindString(text))
}
