// Copyright (c) FlowNet Authors.
// Licensed under the MIT License.

package types

import (
	"encoding/json"
	"strings"
	"time"
)

// Role identifies the participant a message originates from.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ContentBlock is one typed fragment of a multi-part message body.
// DataType defaults to "text" when empty.
type ContentBlock struct {
	Text     string `json:"text,omitempty"`
	DataType string `json:"data_type,omitempty"`
}

// TextBlock creates a plain text content block.
func TextBlock(text string) ContentBlock {
	return ContentBlock{Text: text, DataType: "text"}
}

// ToolRequest is a tool invocation requested by an assistant message,
// before any execution happens. The executed counterpart is
// ToolInvocation.
type ToolRequest struct {
	InvocationID string          `json:"invocation_id"`
	ToolName     string          `json:"tool_name"`
	Parameters   json.RawMessage `json:"parameters,omitempty"`
}

// Message is a single conversation entry. Content carries a plain text
// body; Blocks carries a multi-part body. At most one of the two is set.
// The role-specific fields are zero for the roles they do not apply to.
type Message struct {
	Role    Role           `json:"role"`
	Content string         `json:"content,omitempty"`
	Blocks  []ContentBlock `json:"blocks,omitempty"`
	Name    string         `json:"name,omitempty"`

	MsgID     string    `json:"msg_id,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
	Timestamp time.Time `json:"timestamp,omitzero"`

	// System messages only. Higher priority instructions win when a
	// prompt is assembled from several system messages.
	Priority int `json:"priority,omitempty"`

	// Assistant messages only.
	ToolRequests []ToolRequest `json:"tool_requests,omitempty"`
	TokensUsed   int           `json:"tokens_used,omitempty"`
	StopReason   string        `json:"stop_reason,omitempty"`

	// Tool result messages only.
	ToolCallID      string `json:"tool_call_id,omitempty"`
	ExecutionStatus string `json:"execution_status,omitempty"`

	Metadata map[string]any `json:"metadata,omitempty"`
}

// NewMessage creates a message with the given role and text body.
func NewMessage(role Role, content string) Message {
	return Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewSystemMessage creates a system message carrying instructions.
func NewSystemMessage(instructions string) Message {
	return NewMessage(RoleSystem, instructions)
}

// NewUserMessage creates a user message.
func NewUserMessage(content string) Message {
	return NewMessage(RoleUser, content)
}

// NewAssistantMessage creates an assistant message carrying a response.
func NewAssistantMessage(response string) Message {
	return NewMessage(RoleAssistant, response)
}

// NewToolMessage creates a tool result message tied to the tool call it
// answers.
func NewToolMessage(toolCallID, name, result string) Message {
	return Message{
		Role:       RoleTool,
		Content:    result,
		Name:       name,
		ToolCallID: toolCallID,
		Timestamp:  time.Now(),
	}
}

// WithBlocks replaces the text body with a multi-part one.
func (m Message) WithBlocks(blocks []ContentBlock) Message {
	m.Content = ""
	m.Blocks = blocks
	return m
}

// WithToolRequests attaches requested tool invocations to the message.
func (m Message) WithToolRequests(reqs []ToolRequest) Message {
	m.ToolRequests = reqs
	return m
}

// WithUsage records the token count and stop reason reported for an
// assistant message.
func (m Message) WithUsage(tokens int, stopReason string) Message {
	m.TokensUsed = tokens
	m.StopReason = stopReason
	return m
}

// WithMetadata attaches metadata to the message.
func (m Message) WithMetadata(metadata map[string]any) Message {
	m.Metadata = metadata
	return m
}

// Text returns the message body as plain text. For a multi-part body the
// text blocks are concatenated; non-text blocks are skipped.
func (m Message) Text() string {
	if len(m.Blocks) == 0 {
		return m.Content
	}
	var b strings.Builder
	for _, block := range m.Blocks {
		if block.DataType == "" || block.DataType == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}
