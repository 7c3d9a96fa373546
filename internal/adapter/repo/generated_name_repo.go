package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"petnames/internal/domain"
	"petnames/internal/infra"
	"petnames/internal/sqlinline"
)

// GeneratedNameRepositoryPG implements domain.GeneratedNameRepository using PostgreSQL.
type GeneratedNameRepositoryPG struct {
	sql infra.Transactor
}

// NewGeneratedNameRepository constructs a repository over the given transactor.
func NewGeneratedNameRepository(sql infra.Transactor) *GeneratedNameRepositoryPG {
	return &GeneratedNameRepositoryPG{sql: sql}
}

// SaveAll inserts every name in one transaction. Either all rows are written or none.
// IDs and creation times are filled in on the caller's slice.
func (r *GeneratedNameRepositoryPG) SaveAll(ctx context.Context, names []domain.GeneratedName) error {
	if len(names) == 0 {
		return nil
	}

	return r.sql.InTx(ctx, func(tx infra.SQLExecutor) error {
		for i := range names {
			n := &names[i]
			if n.ID == "" {
				n.ID = uuid.NewString()
			}
			row := tx.QueryRow(ctx, sqlinline.QInsertGeneratedName, n.ID, n.Name, n.AnimalType, n.Count)
			if err := row.Scan(&n.CreatedAt); err != nil {
				return fmt.Errorf("insert generated name %d/%d: %w", i+1, len(names), err)
			}
		}
		return nil
	})
}

// ListRecent returns up to limit names, newest first.
func (r *GeneratedNameRepositoryPG) ListRecent(ctx context.Context, limit int) ([]domain.GeneratedName, error) {
	if limit <= 0 {
		limit = domain.DefaultRecentLimit
	}

	rows, err := r.sql.Query(ctx, sqlinline.QListRecentGeneratedNames, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]domain.GeneratedName, 0, limit)
	for rows.Next() {
		var n domain.GeneratedName
		if err := rows.Scan(&n.ID, &n.Name, &n.AnimalType, &n.Count, &n.CreatedAt); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// Count returns the total number of generated names stored.
func (r *GeneratedNameRepositoryPG) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.sql.QueryRow(ctx, sqlinline.QCountGeneratedNames).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

var _ domain.GeneratedNameRepository = (*GeneratedNameRepositoryPG)(nil)
