package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/meikuraledutech/orgflow"
	"github.com/meikuraledutech/orgflow/auth"
	"github.com/meikuraledutech/orgflow/config"
	"github.com/meikuraledutech/orgflow/editor"
	"github.com/meikuraledutech/orgflow/postgres"
	"github.com/meikuraledutech/orgflow/session"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	var store orgflow.Store = postgres.New(pool)

	tokens, err := auth.New(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("auth: %v", err)
	}

	sessions := session.NewManager()

	app := fiber.New()

	// ── Schema ────────────────────────────────────────────────────────
	app.Post("/schema", func(c fiber.Ctx) error {
		if err := store.CreateSchema(c.Context()); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "schema created"})
	})

	app.Delete("/schema", func(c fiber.Ctx) error {
		if err := store.DropSchema(c.Context()); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "schema dropped"})
	})

	// ── Auth ──────────────────────────────────────────────────────────
	app.Post("/auth/register", func(c fiber.Ctx) error {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.Bind().JSON(&body); err != nil || body.Email == "" || body.Password == "" {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		u := orgflow.User{Email: body.Email, PasswordHash: string(hash)}
		id, err := store.CreateUser(c.Context(), &u)
		if errors.Is(err, orgflow.ErrUserExists) {
			return c.Status(400).JSON(fiber.Map{"error": "email already registered"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		token, err := tokens.Issue(id, u.Email)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(201).JSON(fiber.Map{"access_token": token, "token_type": "bearer"})
	})

	app.Post("/auth/login", func(c fiber.Ctx) error {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.Bind().JSON(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		u, err := store.GetUserByEmail(c.Context(), body.Email)
		if errors.Is(err, orgflow.ErrUserNotFound) {
			return c.Status(401).JSON(fiber.Map{"error": "incorrect email or password"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(body.Password)) != nil {
			slog.Warn("failed login attempt", "email", body.Email)
			return c.Status(401).JSON(fiber.Map{"error": "incorrect email or password"})
		}
		token, err := tokens.Issue(u.ID, u.Email)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"access_token": token, "token_type": "bearer"})
	})

	app.Use("/flows", tokens.Middleware())
	app.Use("/orgview", tokens.Middleware())
	app.Use("/sessions", tokens.Middleware())

	// ── Flows ─────────────────────────────────────────────────────────
	app.Get("/flows", func(c fiber.Ctx) error {
		projects, err := store.ListProjects(c.Context())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(projects)
	})

	app.Post("/flows/text-input", func(c fiber.Ctx) error {
		var body struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			orgflow.Intake
		}
		if err := c.Bind().JSON(&body); err != nil || body.Name == "" {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}

		p := orgflow.Project{Name: body.Name, Description: body.Description}
		projectID, err := store.CreateProject(c.Context(), &p, &body.Intake)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}

		// Graph generation is a separate pipeline; new projects start
		// from the seed workflow until it delivers.
		doc := orgflow.DefaultDocument()
		doc.Normalize()
		for _, v := range []orgflow.Variant{orgflow.VariantCurrent, orgflow.VariantImproved} {
			if err := store.SaveDocument(c.Context(), projectID, v, &doc); err != nil {
				return c.Status(500).JSON(fiber.Map{"error": err.Error()})
			}
		}
		if err := store.PutIntegrations(c.Context(), projectID, orgflow.IntegrationsFrom(doc)); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}

		return c.Status(201).JSON(fiber.Map{
			"project_id":      projectID,
			"name":            p.Name,
			"react_flow_json": doc,
		})
	})

	app.Delete("/flows/:id", func(c fiber.Ctx) error {
		if err := store.DeleteProject(c.Context(), c.Params("id")); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	// ── Org view ──────────────────────────────────────────────────────
	app.Get("/orgview/retrieve/:id", func(c fiber.Ctx) error {
		projectID := c.Params("id")
		current, err := store.GetDocument(c.Context(), projectID, orgflow.VariantCurrent)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		improved, err := store.GetDocument(c.Context(), projectID, orgflow.VariantImproved)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if current == nil && improved == nil {
			return c.Status(404).JSON(fiber.Map{"error": "flow not found"})
		}
		return c.JSON(fiber.Map{
			"react_flow_json":    current,
			"ai_react_flow_json": improved,
		})
	})

	app.Put("/orgview/save/:id", func(c fiber.Ctx) error {
		var doc orgflow.Document
		if err := c.Bind().JSON(&doc); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		variant := orgflow.Variant(c.Query("variant", string(orgflow.VariantCurrent)))
		if !variant.IsValid() {
			return c.Status(400).JSON(fiber.Map{"error": "unknown variant"})
		}
		doc.Normalize()
		err := store.SaveDocument(c.Context(), c.Params("id"), variant, &doc)
		if errors.Is(err, orgflow.ErrProjectNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "flow not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	app.Get("/orgview/integrations/:id", func(c fiber.Ctx) error {
		items, err := store.ListIntegrations(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"node_list": items})
	})

	// ── Editing sessions ──────────────────────────────────────────────
	sessionNotFound := func(c fiber.Ctx) error {
		return c.Status(404).JSON(fiber.Map{"error": "session not found"})
	}

	app.Post("/sessions", func(c fiber.Ctx) error {
		var body struct {
			ProjectID string          `json:"project_id"`
			Variant   orgflow.Variant `json:"variant"`
		}
		if err := c.Bind().JSON(&body); err != nil || body.ProjectID == "" {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		if body.Variant == "" {
			body.Variant = orgflow.VariantCurrent
		}
		if !body.Variant.IsValid() {
			return c.Status(400).JSON(fiber.Map{"error": "unknown variant"})
		}

		doc, err := store.GetDocument(c.Context(), body.ProjectID, body.Variant)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if doc == nil {
			return c.Status(404).JSON(fiber.Map{"error": "flow not found"})
		}

		s := sessions.Open(body.ProjectID, *doc)
		return c.Status(201).JSON(fiber.Map{"session_id": s.ID, "document": s.Snapshot()})
	})

	app.Get("/sessions/:id", func(c fiber.Ctx) error {
		s, ok := sessions.Get(c.Params("id"))
		if !ok {
			return sessionNotFound(c)
		}
		return c.JSON(s.Snapshot())
	})

	app.Delete("/sessions/:id", func(c fiber.Ctx) error {
		sessions.Close(c.Params("id"))
		return c.SendStatus(204)
	})

	app.Post("/sessions/:id/save", func(c fiber.Ctx) error {
		s, ok := sessions.Get(c.Params("id"))
		if !ok {
			return sessionNotFound(c)
		}
		doc := s.Snapshot()
		if err := store.SaveDocument(c.Context(), s.ProjectID, orgflow.VariantCurrent, &doc); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	app.Post("/sessions/:id/reload", func(c fiber.Ctx) error {
		s, ok := sessions.Get(c.Params("id"))
		if !ok {
			return sessionNotFound(c)
		}
		seq := s.NextRequest()
		doc, err := store.GetDocument(c.Context(), s.ProjectID, orgflow.VariantCurrent)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if doc == nil {
			return c.Status(404).JSON(fiber.Map{"error": "flow not found"})
		}
		if !s.Initialize(seq, *doc) {
			slog.Info("discarded stale reload", "session", s.ID, "seq", seq)
			return c.Status(409).JSON(fiber.Map{"error": "superseded by a newer reload"})
		}
		return c.JSON(s.Snapshot())
	})

	// ── Session: direct gestures ──────────────────────────────────────
	app.Post("/sessions/:id/nodes", func(c fiber.Ctx) error {
		s, ok := sessions.Get(c.Params("id"))
		if !ok {
			return sessionNotFound(c)
		}
		var body struct {
			Kind     orgflow.Kind     `json:"kind"`
			Label    string           `json:"label"`
			Position orgflow.Position `json:"position"`
		}
		if err := c.Bind().JSON(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		id := s.Graph().AddNode(body.Kind, body.Label, body.Position)
		return c.Status(201).JSON(fiber.Map{"id": id})
	})

	app.Patch("/sessions/:id/nodes/:nodeID/label", func(c fiber.Ctx) error {
		s, ok := sessions.Get(c.Params("id"))
		if !ok {
			return sessionNotFound(c)
		}
		var body struct {
			Label string `json:"label"`
		}
		if err := c.Bind().JSON(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		s.Graph().UpdateNodeLabel(c.Params("nodeID"), body.Label)
		return c.SendStatus(204)
	})

	app.Patch("/sessions/:id/nodes/:nodeID/position", func(c fiber.Ctx) error {
		s, ok := sessions.Get(c.Params("id"))
		if !ok {
			return sessionNotFound(c)
		}
		var pos orgflow.Position
		if err := c.Bind().JSON(&pos); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		s.Editor().Move(c.Params("nodeID"), pos)
		return c.SendStatus(204)
	})

	app.Delete("/sessions/:id/nodes/:nodeID", func(c fiber.Ctx) error {
		s, ok := sessions.Get(c.Params("id"))
		if !ok {
			return sessionNotFound(c)
		}
		s.Graph().DeleteNode(c.Params("nodeID"))
		return c.SendStatus(204)
	})

	app.Post("/sessions/:id/edges", func(c fiber.Ctx) error {
		s, ok := sessions.Get(c.Params("id"))
		if !ok {
			return sessionNotFound(c)
		}
		var body struct {
			Source string `json:"source"`
			Target string `json:"target"`
		}
		if err := c.Bind().JSON(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		id := s.Editor().Connect(body.Source, body.Target)
		if id == "" {
			return c.Status(404).JSON(fiber.Map{"error": "node not found"})
		}
		return c.Status(201).JSON(fiber.Map{"id": id})
	})

	app.Patch("/sessions/:id/edges/:edgeID", func(c fiber.Ctx) error {
		s, ok := sessions.Get(c.Params("id"))
		if !ok {
			return sessionNotFound(c)
		}
		var body struct {
			Label    *string           `json:"label"`
			Type     *orgflow.EdgeType `json:"type"`
			Animated *bool             `json:"animated"`
		}
		if err := c.Bind().JSON(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		s.Graph().UpdateEdge(c.Params("edgeID"), orgflow.EdgeUpdate{
			Label:    body.Label,
			Type:     body.Type,
			Animated: body.Animated,
		})
		return c.SendStatus(204)
	})

	app.Delete("/sessions/:id/edges/:edgeID", func(c fiber.Ctx) error {
		s, ok := sessions.Get(c.Params("id"))
		if !ok {
			return sessionNotFound(c)
		}
		s.Graph().DeleteEdge(c.Params("edgeID"))
		return c.SendStatus(204)
	})

	app.Post("/sessions/:id/delete", func(c fiber.Ctx) error {
		s, ok := sessions.Get(c.Params("id"))
		if !ok {
			return sessionNotFound(c)
		}
		var body struct {
			NodeIDs []string `json:"node_ids"`
			EdgeIDs []string `json:"edge_ids"`
		}
		if err := c.Bind().JSON(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		s.Editor().DeleteSelection(body.NodeIDs, body.EdgeIDs)
		return c.SendStatus(204)
	})

	// ── Session: property dialog ──────────────────────────────────────
	dialogState := func(ed *editor.Controller) fiber.Map {
		return fiber.Map{
			"state":   ed.State().String(),
			"subject": ed.Subject(),
			"form":    ed.Form(),
		}
	}

	app.Post("/sessions/:id/dialog/add-node", func(c fiber.Ctx) error {
		s, ok := sessions.Get(c.Params("id"))
		if !ok {
			return sessionNotFound(c)
		}
		s.Editor().OpenAddNode()
		return c.JSON(dialogState(s.Editor()))
	})

	app.Post("/sessions/:id/dialog/node/:nodeID", func(c fiber.Ctx) error {
		s, ok := sessions.Get(c.Params("id"))
		if !ok {
			return sessionNotFound(c)
		}
		if !s.Editor().OpenNode(c.Params("nodeID")) {
			return c.Status(404).JSON(fiber.Map{"error": "node not found"})
		}
		return c.JSON(dialogState(s.Editor()))
	})

	app.Post("/sessions/:id/dialog/edge/:edgeID", func(c fiber.Ctx) error {
		s, ok := sessions.Get(c.Params("id"))
		if !ok {
			return sessionNotFound(c)
		}
		if !s.Editor().OpenEdge(c.Params("edgeID")) {
			return c.Status(404).JSON(fiber.Map{"error": "edge not found"})
		}
		return c.JSON(dialogState(s.Editor()))
	})

	app.Post("/sessions/:id/dialog/confirm", func(c fiber.Ctx) error {
		s, ok := sessions.Get(c.Params("id"))
		if !ok {
			return sessionNotFound(c)
		}
		var form editor.Form
		if err := c.Bind().JSON(&form); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		if !s.Editor().Confirm(form) {
			return c.Status(422).JSON(dialogState(s.Editor()))
		}
		return c.JSON(dialogState(s.Editor()))
	})

	app.Post("/sessions/:id/dialog/cancel", func(c fiber.Ctx) error {
		s, ok := sessions.Get(c.Params("id"))
		if !ok {
			return sessionNotFound(c)
		}
		s.Editor().Cancel()
		return c.JSON(dialogState(s.Editor()))
	})

	app.Post("/sessions/:id/dialog/delete", func(c fiber.Ctx) error {
		s, ok := sessions.Get(c.Params("id"))
		if !ok {
			return sessionNotFound(c)
		}
		if !s.Editor().Delete() {
			return c.Status(422).JSON(dialogState(s.Editor()))
		}
		return c.JSON(dialogState(s.Editor()))
	})

	slog.Info("orgflow server listening", "addr", cfg.Addr, "mode", cfg.Mode)
	log.Fatal(app.Listen(cfg.Addr))
}
