package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petnames/internal/domain"
	"petnames/internal/infra"
	"petnames/internal/sqlinline"
)

type scanRow func(dest ...any) error

func (f scanRow) Scan(dest ...any) error { return f(dest...) }

type insertCall struct {
	id         string
	name       string
	animalType *string
	count      int
}

type fakeTransactor struct {
	now        time.Time
	failAt     int
	inserts    []insertCall
	committed  []insertCall
	txCount    int
	recent     []domain.GeneratedName
	recentArgs []any
	total      int64
}

func (f *fakeTransactor) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("unexpected exec")
}

func (f *fakeTransactor) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	switch query {
	case sqlinline.QInsertGeneratedName:
		if f.failAt > 0 && len(f.inserts)+1 == f.failAt {
			return scanRow(func(...any) error { return errors.New("unique violation") })
		}
		f.inserts = append(f.inserts, insertCall{
			id:         args[0].(string),
			name:       args[1].(string),
			animalType: args[2].(*string),
			count:      args[3].(int),
		})
		return scanRow(func(dest ...any) error {
			*dest[0].(*time.Time) = f.now
			return nil
		})
	case sqlinline.QCountGeneratedNames:
		return scanRow(func(dest ...any) error {
			*dest[0].(*int64) = f.total
			return nil
		})
	}
	return scanRow(func(...any) error { return fmt.Errorf("unexpected query: %s", query) })
}

func (f *fakeTransactor) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	if query != sqlinline.QListRecentGeneratedNames {
		return nil, fmt.Errorf("unexpected query: %s", query)
	}
	f.recentArgs = args
	return &recentRows{rows: f.recent}, nil
}

func (f *fakeTransactor) InTx(ctx context.Context, fn func(infra.SQLExecutor) error) error {
	f.txCount++
	before := len(f.inserts)
	if err := fn(f); err != nil {
		f.inserts = f.inserts[:before]
		return err
	}
	f.committed = append(f.committed, f.inserts[before:]...)
	return nil
}

type recentRows struct {
	pgx.Rows
	rows []domain.GeneratedName
	idx  int
}

func (r *recentRows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *recentRows) Scan(dest ...any) error {
	row := r.rows[r.idx-1]
	*dest[0].(*string) = row.ID
	*dest[1].(*string) = row.Name
	*dest[2].(**string) = row.AnimalType
	*dest[3].(*int) = row.Count
	*dest[4].(*time.Time) = row.CreatedAt
	return nil
}

func (r *recentRows) Err() error { return nil }

func (r *recentRows) Close() {}

func TestSaveAllWritesEveryNameInOneTransaction(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	db := &fakeTransactor{now: now}
	r := NewGeneratedNameRepository(db)

	names := []domain.GeneratedName{
		domain.NewGeneratedName("Max", "", 2),
		domain.NewGeneratedName("Bella", "", 2),
	}
	require.NoError(t, r.SaveAll(context.Background(), names))

	assert.Equal(t, 1, db.txCount)
	require.Len(t, db.committed, 2)
	assert.Equal(t, "Max", db.committed[0].name)
	assert.Nil(t, db.committed[0].animalType)
	assert.Equal(t, 2, db.committed[1].count)
	for _, n := range names {
		assert.NotEmpty(t, n.ID)
		assert.Equal(t, now, n.CreatedAt)
	}
}

func TestSaveAllRollsBackOnFailure(t *testing.T) {
	db := &fakeTransactor{failAt: 2}
	r := NewGeneratedNameRepository(db)

	names := []domain.GeneratedName{
		domain.NewGeneratedName("Coco the Poodle", "Dog", 1),
		domain.NewGeneratedName("Rex the Boxer", "Dog", 1),
	}
	err := r.SaveAll(context.Background(), names)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert generated name 2/2")
	assert.Empty(t, db.committed)
}

func TestSaveAllEmptyIsNoop(t *testing.T) {
	db := &fakeTransactor{}
	require.NoError(t, NewGeneratedNameRepository(db).SaveAll(context.Background(), nil))
	assert.Zero(t, db.txCount)
}

func TestListRecent(t *testing.T) {
	dog := "Dog"
	db := &fakeTransactor{recent: []domain.GeneratedName{
		{ID: "b", Name: "Coco the Poodle", AnimalType: &dog, Count: 1, CreatedAt: time.Unix(200, 0)},
		{ID: "a", Name: "Max", Count: 3, CreatedAt: time.Unix(100, 0)},
	}}
	r := NewGeneratedNameRepository(db)

	got, err := r.ListRecent(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, []any{domain.DefaultRecentLimit}, db.recentArgs)
	require.Len(t, got, 2)
	assert.Equal(t, "Coco the Poodle", got[0].Name)
	require.NotNil(t, got[0].AnimalType)
	assert.Equal(t, "Dog", *got[0].AnimalType)
	assert.Nil(t, got[1].AnimalType)
}

func TestCount(t *testing.T) {
	db := &fakeTransactor{total: 42}
	total, err := NewGeneratedNameRepository(db).Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 42, total)
}
