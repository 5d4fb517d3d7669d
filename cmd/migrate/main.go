package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/streetdogs/backend/internal/config"
	"github.com/streetdogs/backend/internal/logging"
	"github.com/streetdogs/backend/internal/repository"
	"github.com/streetdogs/backend/migrations"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  (default)   差分マイグレーションを適用
  reset       全テーブルを DROP し、集約スキーマで再作成
  fresh       全テーブルを DROP し、全マイグレーションを順番に適用

Reads DATABASE_URL (postgres://...).`)
	os.Exit(1)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("config", "error", err)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if !strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		logging.Fatal("DATABASE_URL must be a postgres:// URL", "database_url_set", cfg.DatabaseURL != "")
	}

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	m := &migrator{pool: pool, files: migrations.Files}
	switch cmd {
	case "":
		err = m.incremental(ctx)
	case "reset":
		if err = m.dropAll(ctx); err == nil {
			err = m.consolidated(ctx)
		}
	case "fresh":
		if err = m.dropAll(ctx); err == nil {
			err = m.incremental(ctx)
		}
	default:
		usage()
	}
	if err != nil {
		logging.Fatal("migrate failed", "command", cmd, "error", err)
	}
}

type migrator struct {
	pool  *pgxpool.Pool
	files fs.FS
}

// collectUpFiles は .up.sql ファイル名をソート済みで返す
func collectUpFiles(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

func migrationName(filename string) string {
	return strings.TrimSuffix(filename, ".up.sql")
}

func (m *migrator) ensureSchemaMigrations(ctx context.Context) error {
	_, err := m.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`)
	return err
}

func (m *migrator) execFile(ctx context.Context, name string) error {
	sql, err := fs.ReadFile(m.files, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if _, err := m.pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("apply %s: %w", name, err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// (default) 差分マイグレーション
// ---------------------------------------------------------------------------
func (m *migrator) incremental(ctx context.Context) error {
	if err := m.ensureSchemaMigrations(ctx); err != nil {
		return err
	}

	upFiles, err := collectUpFiles(m.files)
	if err != nil {
		return err
	}
	applied := 0
	for i, filename := range upFiles {
		name := migrationName(filename)

		var exists bool
		if err := m.pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE name=$1)", name).Scan(&exists); err != nil {
			return fmt.Errorf("check %s: %w", name, err)
		}
		if exists {
			continue
		}

		if err := m.execFile(ctx, filename); err != nil {
			return err
		}
		if _, err := m.pool.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1)", name); err != nil {
			return fmt.Errorf("record %s: %w", name, err)
		}
		applied++
		slog.Info("migration completed", "number", i+1, "migration", name)
	}

	if applied == 0 {
		slog.Info("all migrations already applied")
	} else {
		slog.Info("migrations completed", "count", applied)
	}
	return nil
}

// ---------------------------------------------------------------------------
// 全テーブル DROP
// ---------------------------------------------------------------------------
func (m *migrator) dropAll(ctx context.Context) error {
	slog.Info("dropping all tables")
	if err := m.execFile(ctx, "000_drop_all.sql"); err != nil {
		return err
	}
	slog.Info("all tables dropped")
	return nil
}

// ---------------------------------------------------------------------------
// 集約スキーマで再作成
// ---------------------------------------------------------------------------
func (m *migrator) consolidated(ctx context.Context) error {
	slog.Info("applying consolidated schema")
	if err := m.execFile(ctx, "000_consolidated.sql"); err != nil {
		return err
	}

	// 全マイグレーションを適用済みとして記録
	if err := m.ensureSchemaMigrations(ctx); err != nil {
		return err
	}
	upFiles, err := collectUpFiles(m.files)
	if err != nil {
		return err
	}
	for _, filename := range upFiles {
		if _, err := m.pool.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1) ON CONFLICT DO NOTHING", migrationName(filename)); err != nil {
			return fmt.Errorf("record %s: %w", filename, err)
		}
	}
	slog.Info("consolidated schema applied", "migrations_marked", len(upFiles))
	return nil
}
