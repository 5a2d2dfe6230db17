// Package session ties one live Graph and one dialog Controller to a
// project for the duration of an editing session. A session holds exactly
// one document at a time; a reload that was superseded by a newer request
// is discarded rather than applied late.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/meikuraledutech/orgflow"
	"github.com/meikuraledutech/orgflow/editor"
)

// Session is one continuous editing period over a single document.
type Session struct {
	ID        string
	ProjectID string

	graph  *orgflow.Graph
	editor *editor.Controller

	mu      sync.Mutex
	issued  uint64
	applied uint64
}

// Graph returns the session's live graph store.
func (s *Session) Graph() *orgflow.Graph { return s.graph }

// Editor returns the session's dialog controller.
func (s *Session) Editor() *editor.Controller { return s.editor }

// Snapshot returns the current document.
func (s *Session) Snapshot() orgflow.Document { return s.graph.Document() }

// NextRequest issues a sequence number for a document fetch. Pass it to
// Initialize when the response arrives; only the most recently issued
// request is allowed to land.
func (s *Session) NextRequest() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Initialize replaces the session's document with the response to request
// seq. Responses to superseded requests are discarded and false is
// returned, keeping the "one live document per session" invariant intact.
func (s *Session) Initialize(seq uint64, doc orgflow.Document) bool {
	s.mu.Lock()
	if seq < s.issued || seq <= s.applied {
		s.mu.Unlock()
		return false
	}
	s.applied = seq
	s.mu.Unlock()

	s.graph.Init(doc)
	return true
}

// Manager tracks the open editing sessions.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager returns an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Open creates a session for a project, seeded with doc, and returns it.
func (m *Manager) Open(projectID string, doc orgflow.Document) *Session {
	g := orgflow.NewGraph(doc)
	s := &Session{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		graph:     g,
		editor:    editor.NewController(g),
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns the session with the given id, if open.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Close discards the session. No-op if the id is unknown.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
