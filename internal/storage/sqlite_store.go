package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"git.home.luguber.info/inful/sportcal/internal/calendar"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// timeLayout is the stored timestamp format. RFC3339Nano keeps sub-second
// creation-time ordering intact across a round trip.
const timeLayout = time.RFC3339Nano

// NewSQLiteStore creates a new SQLite-backed exercise store.
// Use ":memory:" for an in-memory database, or a file path for persistence.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close() // Best effort cleanup on initialization error
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS exercises (
		id TEXT PRIMARY KEY,
		day TEXT NOT NULL,
		type TEXT NOT NULL,
		title TEXT NOT NULL CHECK (length(title) <= 200),
		target REAL NOT NULL,
		progress REAL NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_exercises_day ON exercises(day);
	`
	_, err := s.db.Exec(schema)
	return err
}

// ListRange returns all exercises scheduled within [from, to] inclusive.
// Day is stored as YYYY-MM-DD text, so lexicographic BETWEEN matches
// chronological order.
func (s *SQLiteStore) ListRange(ctx context.Context, from, to calendar.Date) ([]calendar.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, day, type, title, target, progress, created_at, updated_at FROM exercises WHERE day BETWEEN ? AND ?",
		from.String(), to.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer rows.Close()

	return scanExercises(rows)
}

// Insert stores a new exercise row.
func (s *SQLiteStore) Insert(ctx context.Context, ex calendar.Exercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO exercises (id, day, type, title, target, progress, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		ex.ID.String(), ex.Day.String(), string(ex.Type), truncateTitle(ex.Title),
		ex.Target, ex.Progress,
		ex.CreatedAt.UTC().Format(timeLayout), ex.UpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert exercise: %w", err)
	}
	return nil
}

// GetByID retrieves a single exercise by id.
func (s *SQLiteStore) GetByID(ctx context.Context, id uuid.UUID) (calendar.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT id, day, type, title, target, progress, created_at, updated_at FROM exercises WHERE id = ?",
		id.String(),
	)
	ex, err := scanExercise(row)
	if err == sql.ErrNoRows {
		return calendar.Exercise{}, ErrNotFound{ID: id}
	}
	if err != nil {
		return calendar.Exercise{}, fmt.Errorf("get exercise: %w", err)
	}
	return ex, nil
}

// UpdateProgress persists the clamped progress value and modification time.
func (s *SQLiteStore) UpdateProgress(ctx context.Context, id uuid.UUID, progress float64, updatedAt time.Time) (calendar.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		"UPDATE exercises SET progress = ?, updated_at = ? WHERE id = ?",
		progress, updatedAt.UTC().Format(timeLayout), id.String(),
	)
	if err != nil {
		return calendar.Exercise{}, fmt.Errorf("update progress: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return calendar.Exercise{}, fmt.Errorf("update progress: %w", err)
	}
	if affected == 0 {
		return calendar.Exercise{}, ErrNotFound{ID: id}
	}

	row := s.db.QueryRowContext(ctx,
		"SELECT id, day, type, title, target, progress, created_at, updated_at FROM exercises WHERE id = ?",
		id.String(),
	)
	ex, err := scanExercise(row)
	if err != nil {
		return calendar.Exercise{}, fmt.Errorf("reload exercise: %w", err)
	}
	return ex, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExercise(row rowScanner) (calendar.Exercise, error) {
	var (
		idText, dayText, typeText string
		title                     string
		target, progress          float64
		createdText, updatedText  string
	)
	if err := row.Scan(&idText, &dayText, &typeText, &title, &target, &progress, &createdText, &updatedText); err != nil {
		return calendar.Exercise{}, err
	}

	id, err := uuid.Parse(idText)
	if err != nil {
		return calendar.Exercise{}, fmt.Errorf("parse id %q: %w", idText, err)
	}
	day, err := calendar.ParseDate(dayText)
	if err != nil {
		return calendar.Exercise{}, fmt.Errorf("parse day %q: %w", dayText, err)
	}
	createdAt, err := time.Parse(timeLayout, createdText)
	if err != nil {
		return calendar.Exercise{}, fmt.Errorf("parse created_at %q: %w", createdText, err)
	}
	updatedAt, err := time.Parse(timeLayout, updatedText)
	if err != nil {
		return calendar.Exercise{}, fmt.Errorf("parse updated_at %q: %w", updatedText, err)
	}

	return calendar.Exercise{
		ID:        id,
		Day:       day,
		Type:      calendar.ExerciseType(typeText),
		Title:     title,
		Target:    target,
		Progress:  progress,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func scanExercises(rows *sql.Rows) ([]calendar.Exercise, error) {
	var exercises []calendar.Exercise
	for rows.Next() {
		ex, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return exercises, nil
}
