// Copyright (c) FlowNet Authors.
// Licensed under the MIT License.

// Package config provides unified configuration loading for flownet:
// defaults, YAML files, and environment variable overrides, in that
// precedence order. It also builds zap loggers from LogConfig.
package config
