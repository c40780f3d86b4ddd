package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
//
// Each item's ordered-by multiset is stored normalized as
// (item_id, participant, quantity) rows; GetParty expands it back into the
// repeated-entry list the domain models use.
const schema = `
CREATE TABLE IF NOT EXISTS parties (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    restaurant_name TEXT NOT NULL,
    preset_name TEXT NOT NULL DEFAULT '',
    total_cost REAL NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS party_participants (
    party_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    PRIMARY KEY (party_id, name),
    FOREIGN KEY (party_id) REFERENCES parties(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS party_items (
    id TEXT PRIMARY KEY,
    party_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    unit_cost REAL NOT NULL,
    course_item INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (party_id) REFERENCES parties(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS item_orders (
    item_id TEXT NOT NULL,
    participant TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    PRIMARY KEY (item_id, participant),
    FOREIGN KEY (item_id) REFERENCES party_items(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_party_participants_party_id ON party_participants(party_id);
CREATE INDEX IF NOT EXISTS idx_party_items_party_id ON party_items(party_id);
CREATE INDEX IF NOT EXISTS idx_item_orders_item_id ON item_orders(item_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
