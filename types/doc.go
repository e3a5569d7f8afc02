// Copyright (c) FlowNet Authors.
// Licensed under the MIT License.

// Package types provides the plain value records that travel inside
// workflow state: conversation messages, model responses, tool
// definitions, and model/provider metadata. The network engine is
// agnostic to their shape and only sees them as opaque state values.
//
// This package has zero dependencies on other flownet packages.
package types
