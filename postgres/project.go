package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/meikuraledutech/orgflow"
)

// CreateProject inserts a project together with its intake form.
// If p.ID is empty, a UUID is auto-generated. Returns the project ID.
func (s *PGStore) CreateProject(ctx context.Context, p *orgflow.Project, intake *orgflow.Intake) (string, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if intake == nil {
		intake = &orgflow.Intake{}
	}
	raw, err := json.Marshal(intake)
	if err != nil {
		return "", fmt.Errorf("orgflow: marshal intake: %w", err)
	}

	err = s.db.QueryRow(ctx,
		`INSERT INTO flow_projects (id, name, description, intake) VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		p.ID, p.Name, p.Description, raw,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return "", fmt.Errorf("orgflow: insert project: %w", err)
	}

	return p.ID, nil
}

// GetProject fetches a single project by its ID.
// Returns nil, nil if not found.
func (s *PGStore) GetProject(ctx context.Context, projectID string) (*orgflow.Project, error) {
	var p orgflow.Project
	err := s.db.QueryRow(ctx,
		`SELECT id, name, description, created_at, updated_at FROM flow_projects WHERE id = $1`,
		projectID,
	).Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("orgflow: get project: %w", err)
	}

	return &p, nil
}

// ListProjects returns all projects, newest first.
// Returns an empty slice (not nil) if none found.
func (s *PGStore) ListProjects(ctx context.Context) ([]orgflow.Project, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, description, created_at, updated_at FROM flow_projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("orgflow: list projects: %w", err)
	}
	defer rows.Close()

	projects := []orgflow.Project{}
	for rows.Next() {
		var p orgflow.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("orgflow: scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orgflow: rows projects: %w", err)
	}

	return projects, nil
}

// DeleteProject deletes a project by its ID.
// Documents and integrations are cascade-deleted by the DB.
// No error if the project doesn't exist.
func (s *PGStore) DeleteProject(ctx context.Context, projectID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM flow_projects WHERE id = $1`, projectID)
	if err != nil {
		return fmt.Errorf("orgflow: delete project: %w", err)
	}
	return nil
}
