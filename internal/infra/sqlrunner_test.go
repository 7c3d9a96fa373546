package infra

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

const markedQuery = `--sql 0b9e7c52-3f43-4f0e-9f0c-2f7f5b0f6a11
select 1;
`

type recordingDB struct {
	queries []string
	execErr error
}

func (d *recordingDB) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	d.queries = append(d.queries, sql)
	return pgconn.NewCommandTag("INSERT 0 1"), d.execErr
}

func (d *recordingDB) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	d.queries = append(d.queries, sql)
	return errorRow{err: pgx.ErrNoRows}
}

func (d *recordingDB) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	d.queries = append(d.queries, sql)
	return nil, errors.New("not implemented")
}

func TestExtractMarker(t *testing.T) {
	marker, body, err := extractMarker(markedQuery)
	if err != nil {
		t.Fatalf("extractMarker returned error: %v", err)
	}
	if marker != "0b9e7c52-3f43-4f0e-9f0c-2f7f5b0f6a11" {
		t.Fatalf("marker mismatch: %q", marker)
	}
	if strings.TrimSpace(body) != "select 1;" {
		t.Fatalf("body mismatch: %q", body)
	}
}

func TestExtractMarkerRejectsUnmarkedQueries(t *testing.T) {
	for _, q := range []string{"", "   ", "select 1;", "--sql not-a-uuid\nselect 1;"} {
		if _, _, err := extractMarker(q); err == nil {
			t.Fatalf("expected error for %q", q)
		}
	}
}

func TestMarkedExecutorStripsMarkerAndLogs(t *testing.T) {
	var buf bytes.Buffer
	db := &recordingDB{}
	exec := markedExecutor{db: db, logger: zerolog.New(&buf), inTx: true}

	if _, err := exec.Exec(context.Background(), markedQuery); err != nil {
		t.Fatalf("Exec returned error: %v", err)
	}
	if len(db.queries) != 1 || strings.Contains(db.queries[0], "--sql") {
		t.Fatalf("marker should be stripped before execution: %#v", db.queries)
	}
	if !strings.Contains(buf.String(), `"tx":true`) {
		t.Fatalf("expected tx flag in log output: %s", buf.String())
	}
}

func TestMarkedExecutorRefusesUnmarkedQuery(t *testing.T) {
	db := &recordingDB{}
	exec := markedExecutor{db: db, logger: zerolog.Nop()}

	if _, err := exec.Exec(context.Background(), "delete from generated_names"); !errors.Is(err, ErrMissingMarker) {
		t.Fatalf("expected ErrMissingMarker, got %v", err)
	}
	if err := exec.QueryRow(context.Background(), "select 1").Scan(); !errors.Is(err, ErrMissingMarker) {
		t.Fatalf("expected ErrMissingMarker from QueryRow, got %v", err)
	}
	if len(db.queries) != 0 {
		t.Fatalf("unmarked queries must not reach the database: %#v", db.queries)
	}
}

func TestMarkedExecutorPropagatesExecError(t *testing.T) {
	boom := errors.New("boom")
	exec := markedExecutor{db: &recordingDB{execErr: boom}, logger: zerolog.Nop()}

	if _, err := exec.Exec(context.Background(), markedQuery); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
