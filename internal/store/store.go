// Package store is the durable backing for the browser: a small key/value
// meta table for the persisted search term, and a cache of the last
// successfully loaded story collection.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hackstories/hackstories/internal/story"
)

type Store struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	s := &Store{readDB: readDB, writeDB: writeDB}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS stories (
			object_id    INTEGER PRIMARY KEY,
			position     INTEGER NOT NULL,
			url          TEXT NOT NULL,
			title        TEXT NOT NULL,
			author       TEXT NOT NULL DEFAULT '',
			num_comments INTEGER NOT NULL DEFAULT 0,
			points       INTEGER NOT NULL DEFAULT 0,
			fetched_at   DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_stories_position ON stories(position);

		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// Get returns the meta value for key. The second result is false when the
// store holds no value for it.
func (s *Store) Get(key string) (string, bool) {
	var value string
	err := s.readDB.QueryRow("SELECT value FROM meta WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

// Set writes value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.writeDB.Exec(`
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// SaveStories replaces the cached collection with the given one, preserving
// its order.
func (s *Store) SaveStories(stories story.Stories) error {
	tx, err := s.writeDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM stories"); err != nil {
		return fmt.Errorf("clearing cached stories: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO stories (object_id, position, url, title, author, num_comments, points, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for i, st := range stories {
		_, err := stmt.Exec(st.ObjectID, i, st.URL, st.Title, st.Author, st.NumComments, st.Points, now)
		if err != nil {
			return fmt.Errorf("caching story %d: %w", st.ObjectID, err)
		}
	}

	return tx.Commit()
}

// LoadStories returns the cached collection in its saved order. An empty
// cache yields a nil collection and no error.
func (s *Store) LoadStories() (story.Stories, error) {
	rows, err := s.readDB.Query(`
		SELECT object_id, url, title, author, num_comments, points
		FROM stories ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying cached stories: %w", err)
	}
	defer rows.Close()

	var stories story.Stories
	for rows.Next() {
		var st story.Story
		if err := rows.Scan(&st.ObjectID, &st.URL, &st.Title, &st.Author, &st.NumComments, &st.Points); err != nil {
			return nil, fmt.Errorf("scanning story: %w", err)
		}
		stories = append(stories, st)
	}
	return stories, rows.Err()
}

// Clear drops the cached stories and all meta values.
func (s *Store) Clear() error {
	_, err := s.writeDB.Exec("DELETE FROM stories; DELETE FROM meta;")
	return err
}

// Stats reports the cached story count and the database file size.
func (s *Store) Stats(dbPath string) (count int, size int64, err error) {
	if err := s.readDB.QueryRow("SELECT COUNT(*) FROM stories").Scan(&count); err != nil {
		return 0, 0, fmt.Errorf("counting stories: %w", err)
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return count, 0, fmt.Errorf("reading db size: %w", err)
	}
	return count, info.Size(), nil
}
