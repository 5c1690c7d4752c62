package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NVIDIA/dashboard-audit/pkg/model"
)

var (
	ErrFailedToQuery = errors.New("failed to query")
	ErrFailedToScan  = errors.New("failed to scan")
)

// Config holds the connection settings.
type Config struct {
	DSN             string
	MaxConns        int32
	MaxConnLifetime time.Duration
	// Migrate creates the tables when they do not exist.
	Migrate bool
}

// querier is the subset of *pgxpool.Pool used by the repositories.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Client owns the pgx pool and exposes one repository per table.
type Client struct {
	pool           *pgxpool.Pool
	db             querier
	Components     *ComponentRepository
	CollectorItems *CollectorItemRepository
	Dashboards     *DashboardRepository
}

func poolConfig(cfg Config) (*pgxpool.Config, error) {
	if cfg.DSN == "" {
		return nil, errors.New("postgres: dsn is required")
	}

	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to parse connection string: %w", err)
	}

	if cfg.MaxConns > 0 {
		pc.MaxConns = cfg.MaxConns
	}
	if cfg.MaxConnLifetime > 0 {
		pc.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if pc.ConnConfig.RuntimeParams == nil {
		pc.ConnConfig.RuntimeParams = make(map[string]string)
	}
	pc.ConnConfig.RuntimeParams["application_name"] = "dashaudit"

	return pc, nil
}

// Connect opens a pool, pings the server and optionally applies the schema.
func Connect(ctx context.Context, cfg Config) (*Client, error) {
	pc, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to initialize pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping failed: %w", err)
	}

	c := newClient(pool)
	c.pool = pool

	if cfg.Migrate {
		if _, err := pool.Exec(ctx, schemaSQL); err != nil {
			pool.Close()
			return nil, fmt.Errorf("postgres: failed to apply schema: %w", err)
		}
	}

	slog.Info("connected to postgres",
		"host", pc.ConnConfig.Host,
		"database", pc.ConnConfig.Database,
		"maxConns", pc.MaxConns)

	return c, nil
}

func newClient(db querier) *Client {
	return &Client{
		db:             db,
		Components:     &ComponentRepository{db: db},
		CollectorItems: &CollectorItemRepository{db: db},
		Dashboards:     &DashboardRepository{db: db},
	}
}

// Close releases the pool.
func (c *Client) Close(context.Context) error {
	if c != nil && c.pool != nil {
		c.pool.Close()
	}
	return nil
}

// Seed upserts every entity in ds in a single batch.
func (c *Client) Seed(ctx context.Context, ds *model.Dataset) error {
	if ds == nil {
		return nil
	}
	if err := ds.Validate(); err != nil {
		return fmt.Errorf("invalid dataset: %w", err)
	}

	batch := &pgx.Batch{}
	for i := range ds.Dashboards {
		d := &ds.Dashboards[i]
		doc, err := json.Marshal(d)
		if err != nil {
			return fmt.Errorf("postgres: failed to encode dashboard %s: %w", d.ID, err)
		}
		batch.Queue(upsertDashboardSQL, d.ID, d.ConfigurationItemBusServName, d.ConfigurationItemBusAppName, doc)
	}
	for i := range ds.Components {
		doc, err := json.Marshal(&ds.Components[i])
		if err != nil {
			return fmt.Errorf("postgres: failed to encode component %s: %w", ds.Components[i].ID, err)
		}
		batch.Queue(upsertComponentSQL, ds.Components[i].ID, doc)
	}
	for i := range ds.CollectorItems {
		doc, err := json.Marshal(&ds.CollectorItems[i])
		if err != nil {
			return fmt.Errorf("postgres: failed to encode collector item %s: %w", ds.CollectorItems[i].ID, err)
		}
		batch.Queue(upsertCollectorItemSQL, ds.CollectorItems[i].ID, doc)
	}

	if batch.Len() == 0 {
		return nil
	}

	br := c.db.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("postgres: seed statement %d failed: %w", i, err)
		}
	}
	return br.Close()
}

// ComponentRepository reads the components table.
type ComponentRepository struct {
	db querier
}

// FindOne returns the component with the given id, or nil when absent.
func (r *ComponentRepository) FindOne(ctx context.Context, id string) (*model.Component, error) {
	var doc []byte
	if err := r.db.QueryRow(ctx, selectComponentSQL, id).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w component %s: %w", ErrFailedToQuery, id, err)
	}

	var c model.Component
	if err := json.Unmarshal(doc, &c); err != nil {
		return nil, fmt.Errorf("%w component %s: %w", ErrFailedToScan, id, err)
	}
	return &c, nil
}

// CollectorItemRepository reads the collector_items table.
type CollectorItemRepository struct {
	db querier
}

// FindAll returns the items whose id is in ids.
func (r *CollectorItemRepository) FindAll(ctx context.Context, ids []string) ([]model.CollectorItem, error) {
	if len(ids) == 0 {
		return []model.CollectorItem{}, nil
	}

	rows, err := r.db.Query(ctx, selectCollectorItemsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("%w collector items: %w", ErrFailedToQuery, err)
	}

	items := make([]model.CollectorItem, 0, len(ids))
	if err := scanDocs(rows, func(doc []byte) error {
		var item model.CollectorItem
		if err := json.Unmarshal(doc, &item); err != nil {
			return err
		}
		items = append(items, item)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("%w collector item row: %w", ErrFailedToScan, err)
	}
	return items, nil
}

// DashboardRepository reads the dashboards table.
type DashboardRepository struct {
	db querier
}

// FindAllByBusinessServiceAndBusinessApplication returns matching dashboards
// in insertion order.
func (r *DashboardRepository) FindAllByBusinessServiceAndBusinessApplication(ctx context.Context, service, application string) ([]model.Dashboard, error) {
	rows, err := r.db.Query(ctx, selectDashboardsSQL, service, application)
	if err != nil {
		return nil, fmt.Errorf("%w dashboards: %w", ErrFailedToQuery, err)
	}

	var out []model.Dashboard
	if err := scanDocs(rows, func(doc []byte) error {
		var d model.Dashboard
		if err := json.Unmarshal(doc, &d); err != nil {
			return err
		}
		out = append(out, d)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("%w dashboard row: %w", ErrFailedToScan, err)
	}
	return out, nil
}

func scanDocs(rows pgx.Rows, fn func(doc []byte) error) error {
	defer rows.Close()

	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return err
		}
		if err := fn(doc); err != nil {
			return err
		}
	}
	return rows.Err()
}
