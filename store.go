package orgflow

import (
	"context"
	"errors"
	"time"
)

var (
	ErrProjectNotFound = errors.New("orgflow: project not found")
	ErrUserExists      = errors.New("orgflow: email already registered")
	ErrUserNotFound    = errors.New("orgflow: user not found")
)

// Variant names which document of a project is meant: the one the user
// edits, or the AI-improved proposal shown next to it.
type Variant string

const (
	VariantCurrent  Variant = "current"
	VariantImproved Variant = "improved"
)

// IsValid reports whether v is a known variant.
func (v Variant) IsValid() bool {
	return v == VariantCurrent || v == VariantImproved
}

// Intake is the free-text form a user submits to have a workflow
// generated for a department.
type Intake struct {
	DepartmentFunction  string `json:"departmentFunction"`
	TeamSize            int    `json:"teamSize"`
	QuarterlyBudget     string `json:"quarterlyBudget"`
	WorkflowDescription string `json:"workflowDescription"`
}

// Project is one workflow project: the owner of a pair of documents and
// the integration metadata summarizing them.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Integration is display metadata for one integration used by a project.
type Integration struct {
	Name        string `json:"name"`
	Type        Kind   `json:"type"`
	Description string `json:"description"`
}

// User is a registered account. PasswordHash never leaves the store layer.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Store defines the contract for persisting projects, their workflow
// documents, integration metadata, and user accounts.
type Store interface {
	// Schema
	CreateSchema(ctx context.Context) error
	DropSchema(ctx context.Context) error

	// Projects
	CreateProject(ctx context.Context, p *Project, intake *Intake) (string, error)
	GetProject(ctx context.Context, projectID string) (*Project, error)
	ListProjects(ctx context.Context) ([]Project, error)
	DeleteProject(ctx context.Context, projectID string) error

	// Documents
	SaveDocument(ctx context.Context, projectID string, v Variant, doc *Document) error
	GetDocument(ctx context.Context, projectID string, v Variant) (*Document, error)

	// Integrations
	PutIntegrations(ctx context.Context, projectID string, items []Integration) error
	ListIntegrations(ctx context.Context, projectID string) ([]Integration, error)

	// Users
	CreateUser(ctx context.Context, u *User) (string, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}
