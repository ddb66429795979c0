package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command line flags
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`); err != nil {
		log.Fatalf("failed to ensure schema_migrations table: %v", err)
	}

	migrationsDir := "migrations"
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		log.Fatalf("failed to read migrations directory: %v", err)
	}

	var migrationFiles []string
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".sql" && !strings.HasSuffix(entry.Name(), ".down.sql") {
			migrationFiles = append(migrationFiles, entry.Name())
		}
	}
	// Sort files to apply in order
	sort.Strings(migrationFiles)

	if *rollback {
		rollbackLast(db, migrationsDir)
		return
	}

	for _, file := range migrationFiles {
		version := strings.SplitN(file, "_", 2)[0]

		var exists bool
		if err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, version).Scan(&exists); err != nil {
			log.Fatalf("failed to check migration %s: %v", file, err)
		}
		if exists {
			continue
		}

		content, err := os.ReadFile(filepath.Join(migrationsDir, file))
		if err != nil {
			log.Fatalf("failed to read migration %s: %v", file, err)
		}

		tx, err := db.Begin()
		if err != nil {
			log.Fatalf("failed to begin transaction: %v", err)
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			log.Fatalf("failed to apply migration %s: %v", file, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, version, file); err != nil {
			tx.Rollback()
			log.Fatalf("failed to record migration %s: %v", file, err)
		}
		if err := tx.Commit(); err != nil {
			log.Fatalf("failed to commit migration %s: %v", file, err)
		}

		fmt.Printf("applied %s\n", file)
	}
}

func rollbackLast(db *sql.DB, migrationsDir string) {
	var version, name string
	err := db.QueryRow(`
		SELECT version, name
		FROM schema_migrations
		ORDER BY applied_at DESC
		LIMIT 1
	`).Scan(&version, &name)
	if err == sql.ErrNoRows {
		log.Fatal("no migrations to roll back")
	}
	if err != nil {
		log.Fatalf("failed to find last migration: %v", err)
	}

	downFile := strings.TrimSuffix(name, ".sql") + ".down.sql"
	content, err := os.ReadFile(filepath.Join(migrationsDir, downFile))
	if err != nil {
		log.Fatalf("failed to read rollback file %s: %v", downFile, err)
	}

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("failed to begin transaction: %v", err)
	}
	if _, err := tx.Exec(string(content)); err != nil {
		tx.Rollback()
		log.Fatalf("failed to roll back %s: %v", name, err)
	}
	if _, err := tx.Exec(`DELETE FROM schema_migrations WHERE version = $1`, version); err != nil {
		tx.Rollback()
		log.Fatalf("failed to delete migration record %s: %v", version, err)
	}
	if err := tx.Commit(); err != nil {
		log.Fatalf("failed to commit rollback: %v", err)
	}

	fmt.Printf("rolled back %s\n", name)
}
