package sqldb

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Per-dialect DDL. The animal refuge_id columns deliberately carry no
// foreign key clause: the historical data contains dangling references
// and the API accepts them (known gap, kept permissive).
//
// dates are stored as ISO strings so both drivers round-trip them the
// same way.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS refuges (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nom TEXT NOT NULL,
		responsable TEXT,
		telephone TEXT,
		adresse TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS chiens (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nom TEXT NOT NULL,
		age INTEGER,
		race TEXT,
		refuge_id INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS chien12mois (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nom TEXT NOT NULL,
		age INTEGER,
		race TEXT,
		refuge_id INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS chat12mois (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nom TEXT NOT NULL,
		age INTEGER,
		race TEXT,
		refuge_id INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS transferts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		animal_type TEXT,
		animal_id INTEGER,
		chien_id INTEGER,
		refuge_depart_id INTEGER NOT NULL,
		refuge_arrivee_id INTEGER NOT NULL,
		date_transfert TEXT,
		statut TEXT
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS refuges (
		id SERIAL PRIMARY KEY,
		nom VARCHAR(100) NOT NULL,
		responsable VARCHAR(100),
		telephone VARCHAR(50),
		adresse VARCHAR(200)
	)`,
	`CREATE TABLE IF NOT EXISTS chiens (
		id SERIAL PRIMARY KEY,
		nom VARCHAR(100) NOT NULL,
		age INTEGER,
		race VARCHAR(100),
		refuge_id INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS chien12mois (
		id SERIAL PRIMARY KEY,
		nom VARCHAR(100) NOT NULL,
		age INTEGER,
		race VARCHAR(100),
		refuge_id INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS chat12mois (
		id SERIAL PRIMARY KEY,
		nom VARCHAR(100) NOT NULL,
		age INTEGER,
		race VARCHAR(100),
		refuge_id INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS transferts (
		id SERIAL PRIMARY KEY,
		animal_type VARCHAR(20),
		animal_id INTEGER,
		chien_id INTEGER,
		refuge_depart_id INTEGER NOT NULL,
		refuge_arrivee_id INTEGER NOT NULL,
		date_transfert VARCHAR(10),
		statut VARCHAR(50)
	)`,
}

// CreateSchema brings a fresh database up to the full table set. It is
// additive only and safe to run on every start.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	schema := sqliteSchema
	if db.DriverName() == DriverPostgres {
		schema = postgresSchema
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
