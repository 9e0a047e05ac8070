package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"realty/internal/config"
)

const migrationsDir = "migrations"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	command := flag.String("command", "up", "Migration command: up, down, down-to, status, create")
	name := flag.String("name", "", "Migration name (required for create)")
	targetVersion := flag.Int64("version", 0, "Target version for down-to command")
	flag.Parse()

	cfg := config.Load()

	db, err := open(cfg, *command == "up")
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("failed to set dialect: %v", err)
	}

	if err := run(db, *command, *name, *targetVersion); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}

func run(db *sql.DB, command, name string, targetVersion int64) error {
	switch command {
	case "up":
		if err := goose.Up(db, migrationsDir); err != nil {
			return err
		}
		log.Println("migrations applied")
		return nil
	case "down":
		if err := goose.Down(db, migrationsDir); err != nil {
			return err
		}
		log.Println("migrations rolled back")
		return nil
	case "down-to":
		if err := goose.DownTo(db, migrationsDir, targetVersion); err != nil {
			return err
		}
		log.Printf("migrations rolled back to version %d", targetVersion)
		return nil
	case "status":
		return goose.Status(db, migrationsDir)
	case "create":
		if name == "" {
			return errors.New("migration name is required for create")
		}
		return goose.Create(db, migrationsDir, name, "sql")
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

// open connects to the configured database, creating it first when an `up`
// run targets a database that does not exist yet.
func open(cfg *config.Config, createIfMissing bool) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err == nil {
		return db, nil
	}
	db.Close()

	if !createIfMissing || !isPqError(err, "3D000") {
		return nil, err
	}

	if err := createDatabase(cfg); err != nil {
		return nil, err
	}

	db, err = sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func createDatabase(cfg *config.Config) error {
	admin, err := sql.Open("postgres", cfg.Database.DSNFor("postgres"))
	if err != nil {
		return err
	}
	defer admin.Close()

	if _, err := admin.Exec(fmt.Sprintf("CREATE DATABASE %s", cfg.Database.Name)); err != nil {
		if isPqError(err, "42P04") {
			return nil
		}
		return fmt.Errorf("create database: %w", err)
	}

	log.Printf("database %q created", cfg.Database.Name)
	return nil
}

func isPqError(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}
