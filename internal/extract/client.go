package extract

import "context"

// Client is the document-extraction oracle. Given extracted text and an
// optional document-type hint it returns a JSON payload in the tagged
// format described in model.go. Implementations guarantee JSON-only output
// but NOT schema correctness — ParseDocument narrows and validates.
type Client interface {
	ExtractDocument(ctx context.Context, text string, hint string) (string, error)
}
