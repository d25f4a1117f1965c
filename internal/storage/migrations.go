package storage

import "fmt"

var pgMigration = []string{
	`CREATE TABLE channels (
channel_id VARCHAR(100) PRIMARY KEY,
channel_name VARCHAR(200) NOT NULL DEFAULT '',
description TEXT NOT NULL DEFAULT '',
subscribers BIGINT NOT NULL DEFAULT 0,
total_videos BIGINT NOT NULL DEFAULT 0,
total_views BIGINT NOT NULL DEFAULT 0,
created_date TIMESTAMPTZ,
thumbnail_url TEXT NOT NULL DEFAULT ''
)`,
	`CREATE TABLE videos (
video_id VARCHAR(100) PRIMARY KEY,
channel_id VARCHAR(100) REFERENCES channels(channel_id),
title TEXT NOT NULL DEFAULT '',
description TEXT NOT NULL DEFAULT '',
publish_date TIMESTAMPTZ,
duration VARCHAR(50) NOT NULL DEFAULT '',
thumbnail_url TEXT NOT NULL DEFAULT ''
)`,
	`CREATE TABLE video_statistics (
id SERIAL PRIMARY KEY,
video_id VARCHAR(100) NOT NULL UNIQUE REFERENCES videos(video_id),
views BIGINT NOT NULL DEFAULT 0,
likes BIGINT NOT NULL DEFAULT 0,
comments BIGINT NOT NULL DEFAULT 0
)`,
	`CREATE INDEX idx_videos_channel_id ON videos(channel_id)`,
}

// migrate executes the migrations that have not been registered yet and
// refuses to run against a store whose history diverged.
func (p *Postgres) migrate(wanted []string) error {
	query := `CREATE TABLE IF NOT EXISTS migration
("id" SERIAL PRIMARY KEY, "query" TEXT)`
	if _, err := p.db.Exec(query); err != nil {
		return err
	}

	// find existing
	rows, err := p.db.Query(`SELECT query FROM migration ORDER BY id`)
	if err != nil {
		return err
	}

	existing := []string{}
	for rows.Next() {
		var query string
		if err := rows.Scan(&query); err != nil {
			return err
		}
		existing = append(existing, query)
	}
	rows.Close()

	missing, err := compareMigrations(wanted, existing)
	if err != nil {
		return err
	}

	for _, query := range missing {
		if _, err := p.db.Exec(query); err != nil {
			return err
		}

		// register
		if _, err := p.db.Exec(`INSERT INTO migration (query) VALUES ($1)`, query); err != nil {
			return err
		}
	}

	return nil
}

func compareMigrations(wanted, existing []string) ([]string, error) {
	needed := []string{}
	if len(wanted) < len(existing) {
		return []string{}, fmt.Errorf("not enough migrations")
	}

	for i, want := range wanted {
		switch {
		case i >= len(existing):
			needed = append(needed, want)
		case want == existing[i]:
			// do nothing
		case want != existing[i]:
			return []string{}, fmt.Errorf("incompatible migration: %v", want)
		}
	}

	return needed, nil
}
