package main

import (
	"database/sql"
	"log"

	_ "github.com/glebarez/go-sqlite"
)

func main() {
	// connect
	db, err := sql.Open("sqlite", "./db.sqlite3")
	if err != nil {
		log.Fatal(err)
	}

	_, _ = db.Query(`
		CREATE TABLE IF NOT EXISTS transcript (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			original_filename TEXT NOT NULL DEFAULT '',
			summary_style TEXT NOT NULL DEFAULT 'meeting',
			status TEXT NOT NULL DEFAULT 'pending',
			language TEXT NOT NULL DEFAULT '',
			audio_duration REAL NOT NULL DEFAULT 0,
			transcript_text TEXT NOT NULL DEFAULT '',
			transcript_segments JSON,
			summary TEXT NOT NULL DEFAULT '',
			file_info JSON,
			updated_at TEXT NOT NULL DEFAULT (datetime('now')),
			created_at TEXT NOT NULL DEFAULT (datetime('now'))
		);
	`)
}
