// Copyright (c) FlowNet Authors.
// Licensed under the MIT License.

package types

import (
	"encoding/json"
	"time"
)

// ToolDefinition defines a tool's interface for model function calling.
type ToolDefinition struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters"`
	Version     string          `json:"version,omitempty"`
}

// ToolChoiceMode controls whether the model may, must, or must not call tools.
type ToolChoiceMode string

const (
	ToolChoiceAuto     ToolChoiceMode = "auto"
	ToolChoiceRequired ToolChoiceMode = "required"
	ToolChoiceNone     ToolChoiceMode = "none"
)

// ToolChoice expresses a tool-calling preference for a request.
// PreferredTool is only meaningful with ToolChoiceRequired.
type ToolChoice struct {
	Mode          ToolChoiceMode `json:"mode"`
	PreferredTool string         `json:"preferred_tool,omitempty"`
}

// ToolInvocationStatus tracks the lifecycle of a tool invocation.
type ToolInvocationStatus string

const (
	ToolInvocationPending   ToolInvocationStatus = "pending"
	ToolInvocationRunning   ToolInvocationStatus = "running"
	ToolInvocationCompleted ToolInvocationStatus = "completed"
	ToolInvocationFailed    ToolInvocationStatus = "failed"
)

// ToolInvocation represents the result of executing a tool call.
type ToolInvocation struct {
	ToolCallID string               `json:"tool_call_id"`
	Name       string               `json:"name"`
	Status     ToolInvocationStatus `json:"status"`
	Result     json.RawMessage      `json:"result,omitempty"`
	Error      string               `json:"error,omitempty"`
	Duration   time.Duration        `json:"duration"`
}

// ToMessage converts the invocation to a tool result message.
func (ti ToolInvocation) ToMessage() Message {
	content := string(ti.Result)
	if ti.Error != "" {
		content = "Error: " + ti.Error
	}
	return Message{
		Role:       RoleTool,
		Content:    content,
		Name:       ti.Name,
		ToolCallID: ti.ToolCallID,
	}
}

// IsError returns true if the tool execution failed.
func (ti ToolInvocation) IsError() bool {
	return ti.Status == ToolInvocationFailed || ti.Error != ""
}
