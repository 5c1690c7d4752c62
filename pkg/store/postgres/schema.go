package postgres

// Documents are stored whole as JSONB. Dashboards additionally expose their
// configuration item pair as columns so lookups can use an index, and seq
// preserves insertion order as the natural order.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS dashboards (
	seq           BIGSERIAL,
	id            TEXT PRIMARY KEY,
	bus_serv_name TEXT NOT NULL DEFAULT '',
	bus_app_name  TEXT NOT NULL DEFAULT '',
	doc           JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS dashboards_configuration_item_idx
	ON dashboards (bus_serv_name, bus_app_name);
CREATE TABLE IF NOT EXISTS components (
	id  TEXT PRIMARY KEY,
	doc JSONB NOT NULL
);
CREATE TABLE IF NOT EXISTS collector_items (
	id  TEXT PRIMARY KEY,
	doc JSONB NOT NULL
);`

const (
	selectComponentSQL = `SELECT doc FROM components WHERE id = $1`

	selectCollectorItemsSQL = `SELECT doc FROM collector_items WHERE id = ANY($1)`

	selectDashboardsSQL = `
SELECT doc FROM dashboards
WHERE bus_serv_name = $1 AND bus_app_name = $2
ORDER BY seq`

	upsertDashboardSQL = `
INSERT INTO dashboards (id, bus_serv_name, bus_app_name, doc)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET
	bus_serv_name = EXCLUDED.bus_serv_name,
	bus_app_name = EXCLUDED.bus_app_name,
	doc = EXCLUDED.doc`

	upsertComponentSQL = `
INSERT INTO components (id, doc) VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc`

	upsertCollectorItemSQL = `
INSERT INTO collector_items (id, doc) VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc`
)
