//go:build tools
// +build tools

// Package tools documents development tool dependencies. They are installed
// globally with `go install` rather than tracked in go.mod because nothing at
// runtime imports them.
package tools

// Development tools:
//
// Air - live reload while developing the API
//   Install: go install github.com/air-verse/air@v1.63.0
//
// mockgen - regenerates internal/mocks (see internal/mocks/generate.go)
//   Install: go install go.uber.org/mock/mockgen@v0.6.0
