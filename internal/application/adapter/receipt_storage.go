// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"io"
)

// ReceiptStorage stores uploaded receipt files and returns a public URL for
// each. A failed upload returns an error rather than an empty URL so the
// caller can react instead of silently losing the file.
type ReceiptStorage interface {
	// Save stores the file content under a generated name derived from
	// filename's extension and returns its public URL.
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
}
