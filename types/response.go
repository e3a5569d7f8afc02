// Copyright (c) FlowNet Authors.
// Licensed under the MIT License.

package types

// TokenUsage represents token consumption statistics for a response.
type TokenUsage struct {
	PromptTokens     int     `json:"prompt_tokens,omitempty"`
	CompletionTokens int     `json:"completion_tokens,omitempty"`
	TotalTokens      int     `json:"total_tokens,omitempty"`
	Cost             float64 `json:"cost,omitempty"`
}

// NewTokenUsage creates a TokenUsage with the total derived from the parts.
func NewTokenUsage(prompt, completion int) TokenUsage {
	return TokenUsage{
		PromptTokens:     prompt,
		CompletionTokens: completion,
		TotalTokens:      prompt + completion,
	}
}

// Add adds another TokenUsage to this one.
func (u *TokenUsage) Add(other TokenUsage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
	u.Cost += other.Cost
}

// ChatResponseChoice is one completion alternative within a ChatResponse.
type ChatResponseChoice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason,omitempty"`
}

// ChatResponse represents a complete model response.
type ChatResponse struct {
	ID      string               `json:"id"`
	Object  string               `json:"object"` // "chat.completion"
	Created int64                `json:"created"`
	Model   string               `json:"model"`
	Choices []ChatResponseChoice `json:"choices"`
	Usage   TokenUsage           `json:"usage,omitempty"`
}

// FirstContent returns the content of the first choice, or "" when the
// response carries no choices.
func (r ChatResponse) FirstContent() string {
	if len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

// StreamingChoice is one delta within a streamed response chunk.
type StreamingChoice struct {
	Index        int     `json:"index"`
	Delta        Message `json:"delta"`
	FinishReason string  `json:"finish_reason,omitempty"`
}

// StreamResponse represents one chunk of a streamed model response.
// The final chunk of a stream may carry aggregate Usage.
type StreamResponse struct {
	ID      string            `json:"id"`
	Object  string            `json:"object"` // "chat.completion.chunk"
	Created int64             `json:"created"`
	Model   string            `json:"model"`
	Choices []StreamingChoice `json:"choices"`
	Usage   *TokenUsage       `json:"usage,omitempty"`
}
