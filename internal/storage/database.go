package storage

import (
	"database/sql"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Store is the sqlite-backed home of user accounts and the prediction log.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "storage: open database")
	}
	// sqlite allows one writer; a single connection avoids SQLITE_BUSY under load.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "storage: connect to database")
	}

	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"name" TEXT NOT NULL,
			"email" TEXT NOT NULL UNIQUE,
			"password_hash" TEXT NOT NULL,
			"created_at" TEXT NOT NULL
	);`
	createPredictionsTable := `
	CREATE TABLE IF NOT EXISTS predictions (
			"id" TEXT PRIMARY KEY,
			"actor" TEXT,
			"loan_amnt" REAL NOT NULL,
			"annual_inc" REAL NOT NULL,
			"dti" REAL NOT NULL,
			"open_acc" INTEGER NOT NULL,
			"credit_age" REAL NOT NULL,
			"revol_util" REAL NOT NULL,
			"probability" REAL NOT NULL,
			"risk_band" TEXT NOT NULL,
			"action" TEXT NOT NULL,
			"created_at" TEXT NOT NULL
	);`
	createPredictionsIndex := `CREATE INDEX IF NOT EXISTS idx_predictions_created_at ON predictions(created_at)`

	for _, stmt := range []string{createUsersTable, createPredictionsTable, createPredictionsIndex} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, eris.Wrap(err, "storage: create schema")
		}
	}
	zap.L().Info("database ready", zap.String("path", path))

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
