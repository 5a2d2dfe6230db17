package postgres

import (
	"context"
	"fmt"

	"github.com/meikuraledutech/orgflow"
)

// PutIntegrations replaces the integration metadata for a project in one
// transaction. Returns ErrProjectNotFound if the project doesn't exist.
func (s *PGStore) PutIntegrations(ctx context.Context, projectID string, items []orgflow.Integration) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("orgflow: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM flow_integrations WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("orgflow: delete integrations: %w", err)
	}

	for i, item := range items {
		_, err := tx.Exec(ctx,
			`INSERT INTO flow_integrations (project_id, name, type, description, ord) VALUES ($1, $2, $3, $4, $5)`,
			projectID, item.Name, string(orgflow.NormalizeKind(item.Type)), item.Description, i,
		)
		if err != nil {
			if pgErrCode(err) == codeForeignKeyViolation {
				return orgflow.ErrProjectNotFound
			}
			return fmt.Errorf("orgflow: insert integration %s: %w", item.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("orgflow: commit: %w", err)
	}
	return nil
}

// ListIntegrations returns a project's integration metadata in insertion
// order. Returns an empty slice (not nil) if none found.
func (s *PGStore) ListIntegrations(ctx context.Context, projectID string) ([]orgflow.Integration, error) {
	rows, err := s.db.Query(ctx,
		`SELECT name, type, description FROM flow_integrations WHERE project_id = $1 ORDER BY ord`,
		projectID)
	if err != nil {
		return nil, fmt.Errorf("orgflow: list integrations: %w", err)
	}
	defer rows.Close()

	items := []orgflow.Integration{}
	for rows.Next() {
		var it orgflow.Integration
		var kind string
		if err := rows.Scan(&it.Name, &kind, &it.Description); err != nil {
			return nil, fmt.Errorf("orgflow: scan integration: %w", err)
		}
		it.Type = orgflow.Kind(kind)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orgflow: rows integrations: %w", err)
	}

	return items, nil
}
