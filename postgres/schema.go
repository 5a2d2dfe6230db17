package postgres

import "context"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS flow_users (
    id            TEXT PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS flow_projects (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    intake      JSONB NOT NULL DEFAULT '{}',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS flow_documents (
    project_id TEXT NOT NULL REFERENCES flow_projects(id) ON DELETE CASCADE,
    variant    TEXT NOT NULL,
    doc        JSONB NOT NULL DEFAULT '{}',
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (project_id, variant)
);

CREATE TABLE IF NOT EXISTS flow_integrations (
    project_id  TEXT NOT NULL REFERENCES flow_projects(id) ON DELETE CASCADE,
    name        TEXT NOT NULL,
    type        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    ord         INT NOT NULL DEFAULT 0,
    PRIMARY KEY (project_id, name)
);

CREATE INDEX IF NOT EXISTS idx_flow_documents_project    ON flow_documents(project_id);
CREATE INDEX IF NOT EXISTS idx_flow_integrations_project ON flow_integrations(project_id);
`

// CreateSchema creates the orgflow tables if they don't exist.
func (s *PGStore) CreateSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, schemaSQL)
	return err
}

// DropSchema drops the orgflow tables.
func (s *PGStore) DropSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DROP TABLE IF EXISTS flow_integrations, flow_documents, flow_projects, flow_users CASCADE;`)
	return err
}
