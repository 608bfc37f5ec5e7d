package leads

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps leads in a SQLite database. Used by served
// deployments where concurrent appends and ad-hoc querying matter more
// than greppability.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness under concurrent requests.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS leads (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		school TEXT NOT NULL,
		plan_type TEXT NOT NULL,
		saved_at_unixms INTEGER NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) Append(ctx context.Context, l Lead) (Lead, error) {
	l = normalize(l, time.Now())
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO leads(id, name, email, school, plan_type, saved_at_unixms) VALUES(?, ?, ?, ?, ?, ?)`,
		l.ID, l.Name, l.Email, l.School, l.PlanType, l.SavedAt.UnixMilli())
	if err != nil {
		return Lead{}, err
	}
	return l, nil
}

func (s *SQLiteStore) All(ctx context.Context) ([]Lead, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, school, plan_type, saved_at_unixms FROM leads ORDER BY saved_at_unixms ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Lead{}
	for rows.Next() {
		var l Lead
		var ms int64
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.School, &l.PlanType, &ms); err != nil {
			return nil, err
		}
		l.SavedAt = time.UnixMilli(ms).UTC()
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
