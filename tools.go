//go:build tools
// +build tools

// Package tools pins tool dependencies invoked via `go generate` (mockgen)
// so they stay tracked in go.mod.
package lunch_roll

import (
	_ "go.uber.org/mock/mockgen"
)
