//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
import (
	_ "github.com/pressly/goose/v3/cmd/goose"
)
