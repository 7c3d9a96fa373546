package domain

import "context"

// GeneratedNameRepository is the append-only store of generated names.
type GeneratedNameRepository interface {
	SaveAll(ctx context.Context, names []GeneratedName) error
	ListRecent(ctx context.Context, limit int) ([]GeneratedName, error)
	Count(ctx context.Context) (int64, error)
}
