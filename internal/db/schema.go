package db

import "database/sql"

func Migrate(db *sql.DB) {
	db.Exec(`
	CREATE TABLE IF NOT EXISTS purchases (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		buyer TEXT,
		method TEXT,
		amount_out TEXT,
		amount_in TEXT,
		ts INTEGER
	);`)

	db.Exec(`
	CREATE TABLE IF NOT EXISTS wagers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player TEXT,
		method TEXT,
		stake TEXT,
		win INTEGER,
		payout TEXT,
		ts INTEGER
	);`)

	db.Exec(`
	CREATE TABLE IF NOT EXISTS journal (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ref TEXT,
		account TEXT,
		asset TEXT,
		debit TEXT,
		credit TEXT,
		ts INTEGER
	);`)

	db.Exec(`
	CREATE TABLE IF NOT EXISTS audit_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		account TEXT,
		action TEXT,
		metadata TEXT,
		created_at INTEGER
	);`)
}
