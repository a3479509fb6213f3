package db

import "context"

// Table definitions are applied at startup. Statements are idempotent so a
// restart against an existing database is a no-op.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		role          TEXT NOT NULL DEFAULT 'owner',
		is_google     BOOLEAN NOT NULL DEFAULT FALSE,
		password_hash TEXT,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at    TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_items (
		id                BIGSERIAL PRIMARY KEY,
		name              TEXT NOT NULL,
		category          TEXT NOT NULL DEFAULT 'other',
		unit              TEXT NOT NULL DEFAULT '',
		quantity          INTEGER NOT NULL DEFAULT 0,
		reorder_threshold INTEGER NOT NULL DEFAULT 0,
		notes             TEXT NOT NULL DEFAULT '',
		created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at        TIMESTAMPTZ
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS inventory_items_name_unique
		ON inventory_items (name) WHERE deleted_at IS NULL`,
	`CREATE TABLE IF NOT EXISTS inventory_history (
		id         BIGSERIAL PRIMARY KEY,
		item_id    BIGINT NOT NULL REFERENCES inventory_items(id),
		change     INTEGER NOT NULL,
		remaining  INTEGER NOT NULL,
		kind       TEXT NOT NULL DEFAULT 'adjust',
		note       TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id           BIGSERIAL PRIMARY KEY,
		title        TEXT NOT NULL,
		event_date   DATE NOT NULL,
		location     TEXT NOT NULL DEFAULT '',
		type         TEXT NOT NULL DEFAULT 'other',
		client_name  TEXT NOT NULL DEFAULT '',
		client_email TEXT NOT NULL DEFAULT '',
		client_phone TEXT NOT NULL DEFAULT '',
		status       TEXT NOT NULL DEFAULT 'inquiry',
		notes        TEXT NOT NULL DEFAULT '',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at   TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS events_date_idx ON events (event_date)`,
	`CREATE TABLE IF NOT EXISTS goals (
		id         BIGSERIAL PRIMARY KEY,
		title      TEXT NOT NULL,
		month      TEXT NOT NULL,
		is_done    BOOLEAN NOT NULL DEFAULT FALSE,
		notes      TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS cash_sessions (
		id            BIGSERIAL PRIMARY KEY,
		session_date  DATE NOT NULL,
		opening_total BIGINT NOT NULL DEFAULT 0,
		closing_total BIGINT NOT NULL DEFAULT 0,
		stall_fee     BIGINT NOT NULL DEFAULT 0,
		payouts       BIGINT NOT NULL DEFAULT 0,
		notes         TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at    TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS cash_sessions_date_idx ON cash_sessions (session_date)`,
}

// EnsureSchema creates missing tables and indexes.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := p.Pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
