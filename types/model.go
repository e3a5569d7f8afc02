// Copyright (c) FlowNet Authors.
// Licensed under the MIT License.

package types

// ModelPricing describes per-token pricing in USD per million tokens.
type ModelPricing struct {
	PromptPerMillion     float64 `json:"prompt_per_million"`
	CompletionPerMillion float64 `json:"completion_per_million"`
}

// Cost computes the cost of the given usage under this pricing.
func (p ModelPricing) Cost(usage TokenUsage) float64 {
	return float64(usage.PromptTokens)/1_000_000*p.PromptPerMillion +
		float64(usage.CompletionTokens)/1_000_000*p.CompletionPerMillion
}

// ModelSpec describes a model's identity and capabilities.
type ModelSpec struct {
	ID             string       `json:"id"`
	Name           string       `json:"name,omitempty"`
	Provider       string       `json:"provider,omitempty"`
	ContextLength  int          `json:"context_length,omitempty"`
	MaxOutput      int          `json:"max_output,omitempty"`
	SupportsTools  bool         `json:"supports_tools,omitempty"`
	SupportsVision bool         `json:"supports_vision,omitempty"`
	Pricing        ModelPricing `json:"pricing,omitempty"`
}

// ProviderInfo describes an upstream provider's availability and performance.
type ProviderInfo struct {
	ProviderID       string  `json:"provider_id"`
	ProviderName     string  `json:"provider_name,omitempty"`
	IsAvailable      bool    `json:"is_available"`
	PerformanceScore float64 `json:"performance_score,omitempty"`
	LatencyMs        float64 `json:"latency_ms,omitempty"`
	ThroughputTPS    float64 `json:"throughput_tokens_per_sec,omitempty"`
}

// ProviderPreferences expresses routing preferences over providers.
type ProviderPreferences struct {
	EnableFallback      bool     `json:"enable_fallback"`
	PreferredProviders  []string `json:"preferred_providers,omitempty"`
	BlockedProviders    []string `json:"blocked_providers,omitempty"`
	MaxPricePerPrompt   float64  `json:"max_price_per_prompt,omitempty"`
	SortBy              string   `json:"sort_by,omitempty"` // "price", "latency" or "throughput"
	DataRetentionPolicy string   `json:"data_retention_policy,omitempty"`
}

// Allows reports whether the preferences permit the given provider id.
func (p ProviderPreferences) Allows(providerID string) bool {
	for _, blocked := range p.BlockedProviders {
		if blocked == providerID {
			return false
		}
	}
	return true
}
