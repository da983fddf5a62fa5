//go:build !cgo

package parser

import "context"

// CSharp parses C# source.
// This is a stub implementation for non-CGO builds.
type CSharp struct{}

// NewCSharp creates a C# parser.
// Returns nil when CGO is disabled.
func NewCSharp() *CSharp {
	return nil
}

// Available reports whether source parsing is compiled in.
// Returns false when CGO is disabled.
func Available() bool {
	return false
}

// Parse always fails in non-CGO builds.
func (c *CSharp) Parse(ctx context.Context, path string, src []byte) (*File, error) {
	return nil, ErrNoCGO
}
