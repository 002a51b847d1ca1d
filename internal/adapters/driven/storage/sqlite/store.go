package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/paperiq-labs/paperiq-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/paperiq-labs/paperiq-cli/internal/core/domain"
	"github.com/paperiq-labs/paperiq-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.AnalysisStore = (*Store)(nil)

// Store is a SQLite-backed analysis history store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.paperiq/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".paperiq", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "history.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Save stores or updates an analysis.
func (s *Store) Save(ctx context.Context, analysis *domain.Analysis) error {
	if analysis == nil || analysis.ID == "" {
		return domain.ErrInvalidInput
	}

	featuresJSON, err := json.Marshal(analysis.Features)
	if err != nil {
		return fmt.Errorf("marshalling features: %w", err)
	}
	flaggedJSON, err := json.Marshal(analysis.Flagged)
	if err != nil {
		return fmt.Errorf("marshalling flagged sentences: %w", err)
	}
	sentimentsJSON, err := json.Marshal(analysis.Sentiments)
	if err != nil {
		return fmt.Errorf("marshalling sentiments: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO analyses
			(id, title, source, text, composite, language, coherence, reasoning,
			 features, flagged, sentiments, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			source = excluded.source,
			text = excluded.text,
			composite = excluded.composite,
			language = excluded.language,
			coherence = excluded.coherence,
			reasoning = excluded.reasoning,
			features = excluded.features,
			flagged = excluded.flagged,
			sentiments = excluded.sentiments,
			created_at = excluded.created_at
	`, analysis.ID, analysis.Title, analysis.Source, analysis.Text,
		analysis.Scores.Composite, analysis.Scores.Language,
		analysis.Scores.Coherence, analysis.Scores.Reasoning,
		string(featuresJSON), string(flaggedJSON), string(sentimentsJSON),
		analysis.CreatedAt)

	if err != nil {
		return fmt.Errorf("saving analysis: %w", err)
	}
	return nil
}

// Get retrieves an analysis by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Analysis, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, source, text, composite, language, coherence, reasoning,
		       features, flagged, sentiments, created_at
		FROM analyses WHERE id = ?
	`, id)

	return scanAnalysisRow(row)
}

// List returns analyses ordered newest first, capped at limit.
// A non-positive limit returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]domain.Analysis, error) {
	query := `
		SELECT id, title, source, text, composite, language, coherence, reasoning,
		       features, flagged, sentiments, created_at
		FROM analyses ORDER BY created_at DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying analyses: %w", err)
	}
	defer rows.Close()

	var analyses []domain.Analysis //nolint:prealloc // size unknown from query
	for rows.Next() {
		analysis, err := scanAnalysisRows(rows)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, *analysis)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating analyses: %w", err)
	}

	return analyses, nil
}

// Delete removes an analysis by ID.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM analyses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting analysis: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteAll removes every stored analysis.
func (s *Store) DeleteAll(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM analyses")
	if err != nil {
		return fmt.Errorf("clearing analyses: %w", err)
	}
	return nil
}

// Count returns the number of stored analyses.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM analyses").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting analyses: %w", err)
	}
	return count, nil
}

// scanAnalysisRow scans a single analysis row.
func scanAnalysisRow(row *sql.Row) (*domain.Analysis, error) {
	var a domain.Analysis
	var featuresJSON, flaggedJSON, sentimentsJSON string

	if err := row.Scan(&a.ID, &a.Title, &a.Source, &a.Text,
		&a.Scores.Composite, &a.Scores.Language, &a.Scores.Coherence, &a.Scores.Reasoning,
		&featuresJSON, &flaggedJSON, &sentimentsJSON, &a.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning analysis: %w", err)
	}

	if err := decodeAnalysisJSON(&a, featuresJSON, flaggedJSON, sentimentsJSON); err != nil {
		return nil, err
	}
	return &a, nil
}

// scanAnalysisRows scans an analysis from *sql.Rows.
func scanAnalysisRows(rows *sql.Rows) (*domain.Analysis, error) {
	var a domain.Analysis
	var featuresJSON, flaggedJSON, sentimentsJSON string

	if err := rows.Scan(&a.ID, &a.Title, &a.Source, &a.Text,
		&a.Scores.Composite, &a.Scores.Language, &a.Scores.Coherence, &a.Scores.Reasoning,
		&featuresJSON, &flaggedJSON, &sentimentsJSON, &a.CreatedAt); err != nil {
		return nil, fmt.Errorf("scanning analysis: %w", err)
	}

	if err := decodeAnalysisJSON(&a, featuresJSON, flaggedJSON, sentimentsJSON); err != nil {
		return nil, err
	}
	return &a, nil
}

// decodeAnalysisJSON unpacks the JSON-encoded columns into the analysis.
func decodeAnalysisJSON(a *domain.Analysis, featuresJSON, flaggedJSON, sentimentsJSON string) error {
	if err := json.Unmarshal([]byte(featuresJSON), &a.Features); err != nil {
		return fmt.Errorf("unmarshalling features: %w", err)
	}
	if err := json.Unmarshal([]byte(flaggedJSON), &a.Flagged); err != nil {
		return fmt.Errorf("unmarshalling flagged sentences: %w", err)
	}
	if err := json.Unmarshal([]byte(sentimentsJSON), &a.Sentiments); err != nil {
		return fmt.Errorf("unmarshalling sentiments: %w", err)
	}
	return nil
}
