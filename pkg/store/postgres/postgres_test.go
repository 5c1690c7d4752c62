package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/dashboard-audit/pkg/model"
)

type fakeRow struct {
	doc []byte
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.doc
	return nil
}

type fakeRows struct {
	docs   [][]byte
	idx    int
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.docs) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	*(dest[0].(*[]byte)) = r.docs[r.idx-1]
	return nil
}

type fakeBatchResults struct {
	execs int
}

func (b *fakeBatchResults) Exec() (pgconn.CommandTag, error) {
	b.execs++
	return pgconn.CommandTag{}, nil
}
func (b *fakeBatchResults) Query() (pgx.Rows, error) { return &fakeRows{}, nil }
func (b *fakeBatchResults) QueryRow() pgx.Row        { return fakeRow{} }
func (b *fakeBatchResults) Close() error             { return nil }

type fakeDB struct {
	row      fakeRow
	rows     *fakeRows
	lastSQL  string
	lastArgs []any
	batch    *pgx.Batch
	batchRes *fakeBatchResults
	queryErr error
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.lastSQL, f.lastArgs = sql, args
	return f.row
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.lastSQL, f.lastArgs = sql, args
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.lastSQL, f.lastArgs = sql, args
	return pgconn.CommandTag{}, nil
}

func (f *fakeDB) SendBatch(_ context.Context, b *pgx.Batch) pgx.BatchResults {
	f.batch = b
	f.batchRes = &fakeBatchResults{}
	return f.batchRes
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestComponentFindOne(t *testing.T) {
	db := &fakeDB{row: fakeRow{doc: mustJSON(t, model.Component{ID: "c1", Name: "checkout"})}}
	c := newClient(db)

	got, err := c.Components.FindOne(context.Background(), "c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "checkout", got.Name)
	assert.Equal(t, selectComponentSQL, db.lastSQL)
	assert.Equal(t, []any{"c1"}, db.lastArgs)
}

func TestComponentFindOneNoRows(t *testing.T) {
	c := newClient(&fakeDB{row: fakeRow{err: pgx.ErrNoRows}})

	got, err := c.Components.FindOne(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestComponentFindOneError(t *testing.T) {
	c := newClient(&fakeDB{row: fakeRow{err: errors.New("connection reset")}})

	_, err := c.Components.FindOne(context.Background(), "c1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFailedToQuery)
}

func TestCollectorItemsFindAll(t *testing.T) {
	rows := &fakeRows{docs: [][]byte{
		mustJSON(t, model.CollectorItem{ID: "3"}),
		mustJSON(t, model.CollectorItem{ID: "2", AltIdentifier: "svc-a"}),
	}}
	db := &fakeDB{rows: rows}
	c := newClient(db)

	items, err := c.CollectorItems.FindAll(context.Background(), []string{"1", "2", "3"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "svc-a", items[1].AltIdentifier)
	assert.True(t, rows.closed)
	assert.Equal(t, []any{[]string{"1", "2", "3"}}, db.lastArgs)
}

func TestCollectorItemsFindAllEmptyIDs(t *testing.T) {
	db := &fakeDB{}
	items, err := newClient(db).CollectorItems.FindAll(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Empty(t, db.lastSQL, "no query is issued for an empty id list")
}

func TestDashboardsFindAll(t *testing.T) {
	rows := &fakeRows{docs: [][]byte{mustJSON(t, model.Dashboard{ID: "d1"})}}
	db := &fakeDB{rows: rows}

	got, err := newClient(db).Dashboards.FindAllByBusinessServiceAndBusinessApplication(context.Background(), "payments", "checkout")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "d1", got[0].ID)
	assert.Equal(t, []any{"payments", "checkout"}, db.lastArgs)
}

func TestDashboardsQueryError(t *testing.T) {
	db := &fakeDB{queryErr: errors.New("down")}
	_, err := newClient(db).Dashboards.FindAllByBusinessServiceAndBusinessApplication(context.Background(), "a", "b")
	assert.ErrorIs(t, err, ErrFailedToQuery)
}

func TestSeedQueuesOneStatementPerEntity(t *testing.T) {
	db := &fakeDB{}
	ds := &model.Dataset{
		Dashboards:     []model.Dashboard{{ID: "d1"}},
		Components:     []model.Component{{ID: "c1"}},
		CollectorItems: []model.CollectorItem{{ID: "1"}, {ID: "2"}},
	}

	require.NoError(t, newClient(db).Seed(context.Background(), ds))
	require.NotNil(t, db.batch)
	assert.Equal(t, 4, db.batch.Len())
	assert.Equal(t, 4, db.batchRes.execs)
}

func TestPoolConfig(t *testing.T) {
	_, err := poolConfig(Config{})
	assert.ErrorContains(t, err, "dsn is required")

	pc, err := poolConfig(Config{DSN: "postgres://audit@localhost:5432/audit", MaxConns: 7})
	require.NoError(t, err)
	assert.Equal(t, int32(7), pc.MaxConns)
	assert.Equal(t, "dashaudit", pc.ConnConfig.RuntimeParams["application_name"])
}
