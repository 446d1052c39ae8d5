package storage

var pgMigration = []string{
	`CREATE TABLE plan (
id uuid PRIMARY KEY,
hobby VARCHAR(255) NOT NULL,
title VARCHAR(255) NOT NULL,
difficulty VARCHAR(32) NOT NULL,
created_at TIMESTAMPTZ NOT NULL,
body JSONB NOT NULL
)`,
	`ALTER TABLE plan ADD COLUMN text_source VARCHAR(32) NOT NULL DEFAULT 'fallback'`,
	`CREATE INDEX plan_hobby_idx ON plan (hobby)`,
}
