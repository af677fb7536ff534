package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"ideavault/internal/auth"
	"ideavault/internal/config"
	"ideavault/internal/domain"
	"ideavault/internal/domain/models"
	"ideavault/internal/domain/models/richtext"
	"ideavault/internal/domain/repositories"
	"ideavault/internal/domain/services"
	"ideavault/internal/repository/postgres"
	"ideavault/internal/service"
)

const (
	demoEmail    = "demo@ideavault.dev"
	demoPassword = "demo-password-123"
	demoName     = "Demo User"
)

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed data")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("🚫 BLOCKED: Cannot run --drop-tables in production environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if *schemaOnly {
		log.Printf("🏗️  Setting up schema only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	} else {
		log.Printf("🌱 Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	}

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		log.Println("🗑️  Dropping all tables...")
		if err := dropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("✅ Tables dropped")
	}

	log.Println("📋 Ensuring database schema is up to date...")
	if err := runSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("✅ Schema ready")

	if *schemaOnly {
		log.Println("✅ Schema setup complete (schema-only mode)")
		return
	}

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	ideaRepo := postgres.NewIdeaRepository(repoConfig)
	eventRepo := postgres.NewEventRepository(repoConfig)

	issuer, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("Failed to create token issuer: %v", err)
	}
	authService := service.NewAuthService(userRepo, issuer, logger)
	ideaService := service.NewIdeaService(ideaRepo, logger)
	eventService := service.NewEventService(eventRepo, logger)

	// Demo account (idempotent - reuse it if a previous run created it)
	user, err := ensureDemoUser(ctx, authService, userRepo)
	if err != nil {
		log.Fatalf("Failed to ensure demo user: %v", err)
	}
	log.Printf("✅ Demo user ready: %s (ID: %s)", user.Email, user.ID)

	// Demo data lands in one transaction so a failed run leaves nothing behind
	txManager := postgres.NewTransactionManager(pool)
	err = txManager.ExecTx(ctx, func(txCtx context.Context) error {
		log.Println("📝 Seeding ideas...")
		for i, input := range seedIdeas() {
			idea, err := ideaService.Create(txCtx, user.ID, input)
			if err != nil {
				return fmt.Errorf("create idea %q: %w", input.Title, err)
			}
			log.Printf("✅ Created idea %d: %s (ID: %s)", i+1, idea.Title, idea.ID)
		}

		log.Println("📅 Seeding events...")
		for i, input := range seedEvents() {
			event, err := eventService.Create(txCtx, user.ID, input)
			if err != nil {
				return fmt.Errorf("create event %q: %w", input.Title, err)
			}
			log.Printf("✅ Created event %d: %s (ID: %s)", i+1, event.Title, event.ID)
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	log.Println("🎉 Seeding complete!")
}

func ensureDemoUser(ctx context.Context, authService services.AuthService, users repositories.UserRepository) (*models.User, error) {
	result, err := authService.Register(ctx, &services.RegisterRequest{
		Email:    demoEmail,
		Password: demoPassword,
		Name:     demoName,
	})
	if err == nil {
		return result.User, nil
	}
	if errors.Is(err, domain.ErrConflict) {
		return users.GetByEmail(ctx, demoEmail)
	}
	return nil, err
}

func dropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	// Children first so foreign keys don't block the drop
	for _, table := range []string{tables.Events, tables.Ideas, tables.Users} {
		if _, err := pool.Exec(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %s CASCADE`, table)); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	return nil
}

func runSchema(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				email TEXT NOT NULL UNIQUE,
				name TEXT NOT NULL,
				password_hash TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`, tables.Users),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				user_id UUID NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				title TEXT NOT NULL,
				status TEXT NOT NULL,
				tags TEXT[] NOT NULL DEFAULT '{}',
				content JSONB NOT NULL,
				platform_content JSONB,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`, tables.Ideas, tables.Users),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				user_id UUID NOT NULL REFERENCES %s(id) ON DELETE CASCADE,
				title TEXT NOT NULL,
				start_time TIMESTAMPTZ NOT NULL,
				end_time TIMESTAMPTZ NOT NULL,
				all_day BOOLEAN NOT NULL DEFAULT FALSE,
				description TEXT,
				color TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)
		`, tables.Events, tables.Users),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_user_updated ON %s (user_id, updated_at DESC)`,
			tables.Ideas, tables.Ideas),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_user_start ON %s (user_id, start_time)`,
			tables.Events, tables.Events),
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("run schema statement: %w", err)
		}
	}
	return nil
}

func seedIdeas() []*services.IdeaInput {
	mustDoc := func(nodes ...richtext.Node) []byte {
		data, err := richtext.Marshal(nodes)
		if err != nil {
			log.Fatalf("Failed to build seed content: %v", err)
		}
		return data
	}

	return []*services.IdeaInput{
		{
			Title:  "Behind-the-scenes studio tour",
			Status: models.IdeaStatusIdeation,
			Tags:   []string{"video", "studio"},
			Content: mustDoc(
				richtext.HeadingOne(richtext.Text("Studio tour")),
				richtext.Paragraph(richtext.Text("Walk through the workspace, show the gear, and talk about the daily routine.")),
			),
		},
		{
			Title:  "Weekly productivity tips thread",
			Status: models.IdeaStatusDrafting,
			Tags:   []string{"thread", "productivity"},
			Content: mustDoc(
				richtext.Paragraph(richtext.Text("Collect the five best tips from this week's reading and turn them into a thread.")),
			),
		},
		{
			Title:  "Product launch teaser",
			Status: models.IdeaStatusInProgress,
			Tags:   []string{"launch", "teaser", "video"},
			Content: mustDoc(
				richtext.HeadingOne(richtext.Text("Launch teaser")),
				richtext.Paragraph(richtext.Text("Fifteen seconds, fast cuts, end on the release date.")),
				richtext.Paragraph(richtext.Text("Needs music selection and a call to action.")),
			),
		},
	}
}

func seedEvents() []*services.EventInput {
	nextMonday := time.Now().AddDate(0, 0, (8-int(time.Now().Weekday()))%7)
	morning := time.Date(nextMonday.Year(), nextMonday.Month(), nextMonday.Day(), 9, 0, 0, 0, time.Local)

	blue := "#3b82f6"
	green := "#22c55e"
	filmingNotes := "Film the studio tour segments"

	return []*services.EventInput{
		{
			Title:       "Film studio tour",
			Start:       morning,
			End:         morning.Add(2 * time.Hour),
			AllDay:      false,
			Description: &filmingNotes,
			Color:       &blue,
		},
		{
			Title:  "Launch day",
			Start:  morning.AddDate(0, 0, 14),
			End:    morning.AddDate(0, 0, 14),
			AllDay: true,
			Color:  &green,
		},
	}
}
