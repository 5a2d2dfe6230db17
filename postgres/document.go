package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/meikuraledutech/orgflow"
)

// SaveDocument upserts the document for (projectID, variant).
// Returns ErrProjectNotFound if the project doesn't exist.
func (s *PGStore) SaveDocument(ctx context.Context, projectID string, v orgflow.Variant, doc *orgflow.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("orgflow: marshal document: %w", err)
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO flow_documents (project_id, variant, doc) VALUES ($1, $2, $3)
		 ON CONFLICT (project_id, variant) DO UPDATE SET doc = EXCLUDED.doc, updated_at = NOW()`,
		projectID, string(v), raw,
	)
	if err != nil {
		if pgErrCode(err) == codeForeignKeyViolation {
			return orgflow.ErrProjectNotFound
		}
		return fmt.Errorf("orgflow: save document: %w", err)
	}

	return nil
}

// GetDocument fetches the document for (projectID, variant).
// Returns nil, nil if not found.
func (s *PGStore) GetDocument(ctx context.Context, projectID string, v orgflow.Variant) (*orgflow.Document, error) {
	var raw []byte
	err := s.db.QueryRow(ctx,
		`SELECT doc FROM flow_documents WHERE project_id = $1 AND variant = $2`,
		projectID, string(v),
	).Scan(&raw)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("orgflow: get document: %w", err)
	}

	var doc orgflow.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("orgflow: unmarshal document: %w", err)
	}

	return &doc, nil
}
