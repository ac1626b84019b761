//go:build tools
// +build tools

package tools

// Pins the developer tooling in go.mod:
//   golangci-lint  lint
//   goose          ad-hoc migrations against migrations/
//   swag           regenerates docs/ from handler annotations
//   mockery        regenerates mocks/ from .mockery.yaml
//   benchstat      compares benchmarks/ runs

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
	_ "golang.org/x/perf/cmd/benchstat"
)
