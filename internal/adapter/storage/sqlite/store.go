package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/anicla/anicla/internal/domain"
	"github.com/anicla/anicla/internal/port"
	"github.com/oklog/ulid/v2"
	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrations embed.FS

const (
	DBFileName = "anicla.db"

	// Fixed width so that created_at sorts lexically.
	timeLayout = "2006-01-02T15:04:05.000000000Z"
)

type Store struct {
	db *sql.DB
}

var hookOnce sync.Once

func registerHook() {
	hookOnce.Do(func() {
		sqlite.RegisterConnectionHook(func(conn sqlite.ExecQuerierContext, dsn string) error {
			pragmas := []string{
				"PRAGMA journal_mode = WAL",
				"PRAGMA busy_timeout = 5000",
				"PRAGMA synchronous = NORMAL",
				"PRAGMA cache_size = -8000", // 8MB
			}
			for _, p := range pragmas {
				if _, err := conn.ExecContext(context.Background(), p, nil); err != nil {
					return fmt.Errorf("execute %s: %w", p, err)
				}
			}
			return nil
		})
	})
}

func NewStore(dataDir string) (*Store, error) {
	registerHook()

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DBFileName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL allows concurrent readers but only one writer.
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

const insertEntry = `INSERT INTO media_entries (
	id, name, hashed_name, created_at, result, media_type, resolution,
	duration, size_bytes, original_path, hash_path, thumb_source
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func (s *Store) Add(ctx context.Context, entry *domain.MediaEntry) error {
	if entry.ID == "" {
		entry.ID = ulid.Make().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	var duration sql.NullFloat64
	if entry.Duration != nil {
		duration = sql.NullFloat64{Float64: *entry.Duration, Valid: true}
	}
	var originalPath sql.NullString
	if entry.OriginalPath != nil {
		originalPath = sql.NullString{String: *entry.OriginalPath, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, insertEntry,
		entry.ID,
		entry.Name,
		entry.HashedName,
		entry.CreatedAt.UTC().Format(timeLayout),
		entry.Result,
		string(entry.MediaType),
		entry.Resolution,
		duration,
		int64(entry.SizeBytes),
		originalPath,
		entry.HashPath,
		entry.ThumbSource,
	)
	if err != nil {
		return domain.NewStorageError("add media entry", err)
	}
	return nil
}

const listEntries = `SELECT
	id, name, hashed_name, created_at, result, media_type, resolution,
	duration, size_bytes, original_path, hash_path, thumb_source
FROM media_entries
ORDER BY created_at DESC, id DESC`

// List returns the history newest first.
func (s *Store) List(ctx context.Context) ([]*domain.MediaEntry, error) {
	rows, err := s.db.QueryContext(ctx, listEntries)
	if err != nil {
		return nil, fmt.Errorf("list media entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.MediaEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list media entries: %w", err)
	}
	return entries, nil
}

func scanEntry(rows *sql.Rows) (*domain.MediaEntry, error) {
	var (
		e            domain.MediaEntry
		createdAt    string
		mediaType    string
		duration     sql.NullFloat64
		sizeBytes    int64
		originalPath sql.NullString
	)
	if err := rows.Scan(
		&e.ID, &e.Name, &e.HashedName, &createdAt, &e.Result, &mediaType, &e.Resolution,
		&duration, &sizeBytes, &originalPath, &e.HashPath, &e.ThumbSource,
	); err != nil {
		return nil, fmt.Errorf("scan media entry: %w", err)
	}

	t, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at of %s: %w", e.ID, err)
	}
	e.CreatedAt = t
	e.MediaType = domain.MediaKind(mediaType)
	e.SizeBytes = uint64(sizeBytes)
	if duration.Valid {
		d := duration.Float64
		e.Duration = &d
	}
	if originalPath.Valid {
		p := originalPath.String
		e.OriginalPath = &p
	}
	return &e, nil
}

var _ port.EntryStore = (*Store)(nil)
