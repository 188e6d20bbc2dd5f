package llm

import "context"

// Client generates a draft menu as a raw JSON string. Implementations
// must not retry and must honor context cancellation.
type Client interface {
	GenerateMenu(ctx context.Context, cuisine, tone string) (string, error)
}
