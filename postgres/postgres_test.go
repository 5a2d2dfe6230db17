package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meikuraledutech/orgflow"
)

// newTestStore connects to the database named by DATABASE_URL and gives
// the test a clean schema. Skipped when no database is configured.
func newTestStore(t *testing.T) *PGStore {
	t.Helper()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set; skipping postgres integration test")
	}

	pool, err := pgxpool.New(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	s := New(pool)
	require.NoError(t, s.DropSchema(context.Background()))
	require.NoError(t, s.CreateSchema(context.Background()))
	t.Cleanup(func() { _ = s.DropSchema(context.Background()) })
	return s
}

func TestPGStore_ProjectLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := orgflow.Project{Name: "Sales", Description: "lead handling"}
	id, err := s.CreateProject(ctx, &p, &orgflow.Intake{DepartmentFunction: "sales", TeamSize: 4})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.False(t, p.CreatedAt.IsZero())

	got, err := s.GetProject(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Sales", got.Name)

	list, err := s.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, s.DeleteProject(ctx, id))
	got, err = s.GetProject(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.DeleteProject(ctx, id), "deleting twice is a no-op")
}

func TestPGStore_DocumentRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := orgflow.Project{Name: "Docs"}
	id, err := s.CreateProject(ctx, &p, nil)
	require.NoError(t, err)

	doc := orgflow.DefaultDocument()
	require.NoError(t, s.SaveDocument(ctx, id, orgflow.VariantCurrent, &doc))

	got, err := s.GetDocument(ctx, id, orgflow.VariantCurrent)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, len(doc.Nodes), len(got.Nodes))
	assert.Equal(t, len(doc.Edges), len(got.Edges))

	missing, err := s.GetDocument(ctx, id, orgflow.VariantImproved)
	require.NoError(t, err)
	assert.Nil(t, missing)

	// Upsert replaces in place.
	doc.Nodes = doc.Nodes[:1]
	doc.Edges = nil
	require.NoError(t, s.SaveDocument(ctx, id, orgflow.VariantCurrent, &doc))
	got, err = s.GetDocument(ctx, id, orgflow.VariantCurrent)
	require.NoError(t, err)
	assert.Len(t, got.Nodes, 1)

	err = s.SaveDocument(ctx, "no-such-project", orgflow.VariantCurrent, &doc)
	assert.ErrorIs(t, err, orgflow.ErrProjectNotFound)
}

func TestPGStore_DocumentsCascadeWithProject(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := orgflow.Project{Name: "Cascade"}
	id, err := s.CreateProject(ctx, &p, nil)
	require.NoError(t, err)

	doc := orgflow.DefaultDocument()
	require.NoError(t, s.SaveDocument(ctx, id, orgflow.VariantCurrent, &doc))
	require.NoError(t, s.PutIntegrations(ctx, id, orgflow.IntegrationsFrom(doc)))

	require.NoError(t, s.DeleteProject(ctx, id))

	got, err := s.GetDocument(ctx, id, orgflow.VariantCurrent)
	require.NoError(t, err)
	assert.Nil(t, got)
	items, err := s.ListIntegrations(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPGStore_Integrations(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := orgflow.Project{Name: "Integrations"}
	id, err := s.CreateProject(ctx, &p, nil)
	require.NoError(t, err)

	items := []orgflow.Integration{
		{Name: "Notify Sales", Type: orgflow.KindSlack, Description: "pings the channel"},
		{Name: "Log Leads", Type: orgflow.KindGoogleSheets},
	}
	require.NoError(t, s.PutIntegrations(ctx, id, items))

	got, err := s.ListIntegrations(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, items, got, "insertion order preserved")

	// Put replaces wholesale.
	require.NoError(t, s.PutIntegrations(ctx, id, items[:1]))
	got, err = s.ListIntegrations(ctx, id)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	err = s.PutIntegrations(ctx, "no-such-project", items)
	assert.ErrorIs(t, err, orgflow.ErrProjectNotFound)
}

func TestPGStore_Users(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := orgflow.User{Email: "dev@example.com", PasswordHash: "hash"}
	id, err := s.CreateUser(ctx, &u)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	dup := orgflow.User{Email: "dev@example.com", PasswordHash: "other"}
	_, err = s.CreateUser(ctx, &dup)
	assert.ErrorIs(t, err, orgflow.ErrUserExists)

	got, err := s.GetUserByEmail(ctx, "dev@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	_, err = s.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, orgflow.ErrUserNotFound)
}
