package mongo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/NVIDIA/dashboard-audit/pkg/model"
)

// Collection names.
const (
	DashboardCollection     = "dashboards"
	ComponentCollection     = "components"
	CollectorItemCollection = "collector_items"
)

// Config holds the connection settings.
type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// Client owns the MongoDB connection and exposes one repository per
// collection.
type Client struct {
	client         *mongo.Client
	db             *mongo.Database
	Components     *ComponentRepository
	CollectorItems *CollectorItemRepository
	Dashboards     *DashboardRepository
}

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.URI == "" {
		return nil, errors.New("mongo: uri is required")
	}
	if cfg.Database == "" {
		return nil, errors.New("mongo: database is required")
	}

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo: failed to connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo: ping failed: %w", err)
	}

	db := client.Database(cfg.Database)

	slog.Info("connected to mongo", "database", cfg.Database)

	return &Client{
		client:         client,
		db:             db,
		Components:     &ComponentRepository{coll: db.Collection(ComponentCollection)},
		CollectorItems: &CollectorItemRepository{coll: db.Collection(CollectorItemCollection)},
		Dashboards:     &DashboardRepository{coll: db.Collection(DashboardCollection)},
	}, nil
}

// Close disconnects from the server.
func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}

// Seed upserts every entity in ds by id.
func (c *Client) Seed(ctx context.Context, ds *model.Dataset) error {
	if ds == nil {
		return nil
	}
	if err := ds.Validate(); err != nil {
		return fmt.Errorf("invalid dataset: %w", err)
	}

	for i := range ds.Dashboards {
		if err := upsert(ctx, c.Dashboards.coll, ds.Dashboards[i].ID, &ds.Dashboards[i]); err != nil {
			return err
		}
	}
	for i := range ds.Components {
		if err := upsert(ctx, c.Components.coll, ds.Components[i].ID, &ds.Components[i]); err != nil {
			return err
		}
	}
	for i := range ds.CollectorItems {
		if err := upsert(ctx, c.CollectorItems.coll, ds.CollectorItems[i].ID, &ds.CollectorItems[i]); err != nil {
			return err
		}
	}
	return nil
}

func upsert(ctx context.Context, coll *mongo.Collection, id string, doc any) error {
	_, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo: failed to upsert %s/%s: %w", coll.Name(), id, err)
	}
	return nil
}

// ComponentRepository reads the components collection.
type ComponentRepository struct {
	coll *mongo.Collection
}

// FindOne returns the component with the given id, or nil when absent.
func (r *ComponentRepository) FindOne(ctx context.Context, id string) (*model.Component, error) {
	var c model.Component
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("mongo: failed to find component %s: %w", id, err)
	}
	return &c, nil
}

// CollectorItemRepository reads the collector_items collection.
type CollectorItemRepository struct {
	coll *mongo.Collection
}

// FindAll returns the items whose _id is in ids. Order follows the server.
func (r *CollectorItemRepository) FindAll(ctx context.Context, ids []string) ([]model.CollectorItem, error) {
	if len(ids) == 0 {
		return []model.CollectorItem{}, nil
	}

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("mongo: failed to query collector items: %w", err)
	}

	items := make([]model.CollectorItem, 0, len(ids))
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("mongo: failed to decode collector items: %w", err)
	}
	return items, nil
}

// DashboardRepository reads the dashboards collection.
type DashboardRepository struct {
	coll *mongo.Collection
}

// FindAllByBusinessServiceAndBusinessApplication returns matching dashboards
// in natural (insertion) order.
func (r *DashboardRepository) FindAllByBusinessServiceAndBusinessApplication(ctx context.Context, service, application string) ([]model.Dashboard, error) {
	filter := dashboardFilter(service, application)
	opts := options.Find().SetSort(bson.D{{Key: "$natural", Value: 1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo: failed to query dashboards: %w", err)
	}

	var out []model.Dashboard
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("mongo: failed to decode dashboards: %w", err)
	}
	return out, nil
}

func dashboardFilter(service, application string) bson.M {
	return bson.M{
		"configurationItemBusServName": service,
		"configurationItemBusAppName":  application,
	}
}
