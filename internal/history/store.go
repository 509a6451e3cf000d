package history

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"karasync/internal/textutil"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; users clear the history database after schema changes.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// ErrLocked indicates another process holds the history database.
var ErrLocked = errors.New("history database locked by another process")

// Run is one recorded synchronization run.
type Run struct {
	ID             string
	Title          string
	Artist         string
	SongKey        string
	LyricsPath     string
	TranscriptPath string
	OutputPath     string
	LineCount      int
	WordCount      int
	MatchedWords   int
	GlobalOffset   float64
	OffsetApplied  bool
	CreatedAt      time.Time
}

// Exclusion is one entry of the song exclusion set.
type Exclusion struct {
	SongKey string
	Title   string
	Artist  string
	AddedAt time.Time
}

// Store manages run history persistence backed by SQLite. A file lock on
// the store directory guards against concurrent writers from separate
// processes.
type Store struct {
	db   *sql.DB
	lock *flock.Flock
	path string
}

// Open initializes or connects to the history database in dir.
func Open(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("history directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, "history.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire history lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}

	dbPath := filepath.Join(dir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, lock: lock, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	return store, nil
}

// Close closes the database connection and releases the directory lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); err == nil {
			err = unlockErr
		}
	}
	return err
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if _, err := s.db.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
		return nil
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (run 'karasync history clear' or delete the database)",
			ErrSchemaMismatch, version, schemaVersion)
	}
	return nil
}

// SongKey builds the normalized identity used for exclusion matching and
// run grouping.
func SongKey(title, artist string) string {
	parts := make([]string, 0, 2)
	if t := strings.Join(textutil.Tokenize(title, 0), " "); t != "" {
		parts = append(parts, t)
	}
	if a := strings.Join(textutil.Tokenize(artist, 0), " "); a != "" {
		parts = append(parts, a)
	}
	return strings.Join(parts, " - ")
}

// RecordRun inserts a completed run and returns its generated identifier.
func (s *Store) RecordRun(ctx context.Context, run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.SongKey == "" {
		run.SongKey = SongKey(run.Title, run.Artist)
	}
	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (
            id, title, artist, song_key, lyrics_path, transcript_path,
            output_path, line_count, word_count, matched_words,
            global_offset, offset_applied, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Title, run.Artist, run.SongKey, run.LyricsPath,
		run.TranscriptPath, run.OutputPath, run.LineCount, run.WordCount,
		run.MatchedWords, run.GlobalOffset, boolToInt(run.OffsetApplied),
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return run.ID, nil
}

// ListRuns returns the most recent runs, newest first. A limit of zero or
// less returns everything.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, title, artist, song_key, lyrics_path, transcript_path,
        output_path, line_count, word_count, matched_words, global_offset,
        offset_applied, created_at FROM runs ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var offsetApplied int
		var createdAt string
		if err := rows.Scan(
			&run.ID, &run.Title, &run.Artist, &run.SongKey, &run.LyricsPath,
			&run.TranscriptPath, &run.OutputPath, &run.LineCount,
			&run.WordCount, &run.MatchedWords, &run.GlobalOffset,
			&offsetApplied, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.OffsetApplied = offsetApplied != 0
		if ts, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			run.CreatedAt = ts
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// ClearRuns removes all recorded runs and returns the number deleted.
func (s *Store) ClearRuns(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM runs")
	if err != nil {
		return 0, fmt.Errorf("clear runs: %w", err)
	}
	return res.RowsAffected()
}

// AddExclusion registers a song in the exclusion set. Re-adding an existing
// song is a no-op.
func (s *Store) AddExclusion(ctx context.Context, title, artist string) error {
	key := SongKey(title, artist)
	if key == "" {
		return errors.New("exclusion requires a title or artist")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO exclusions (song_key, title, artist, added_at)
         VALUES (?, ?, ?, ?)
         ON CONFLICT(song_key) DO NOTHING`,
		key, title, artist, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert exclusion: %w", err)
	}
	return nil
}

// Exclusions returns the full exclusion set ordered by song key.
func (s *Store) Exclusions(ctx context.Context) ([]Exclusion, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT song_key, title, artist, added_at FROM exclusions ORDER BY song_key")
	if err != nil {
		return nil, fmt.Errorf("query exclusions: %w", err)
	}
	defer rows.Close()

	var exclusions []Exclusion
	for rows.Next() {
		var e Exclusion
		var addedAt string
		if err := rows.Scan(&e.SongKey, &e.Title, &e.Artist, &addedAt); err != nil {
			return nil, fmt.Errorf("scan exclusion: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339Nano, addedAt); parseErr == nil {
			e.AddedAt = ts
		}
		exclusions = append(exclusions, e)
	}
	return exclusions, rows.Err()
}

// IsExcluded reports whether the song identity is in the exclusion set.
func (s *Store) IsExcluded(ctx context.Context, title, artist string) (bool, error) {
	key := SongKey(title, artist)
	if key == "" {
		return false, nil
	}
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM exclusions WHERE song_key = ?", key).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check exclusion: %w", err)
	}
	return count > 0, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
