// Package reports archives finished analyses.
package reports

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aristath/hunter/internal/domain"
	"github.com/aristath/hunter/internal/modules/hunter"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrNotFound is returned by Get for an unknown id
var ErrNotFound = errors.New("report not found")

// DefaultListLimit caps List when no positive limit is given
const DefaultListLimit = 50

// Entry is the index row of an archived report
type Entry struct {
	CreatedAt time.Time   `json:"created_at"`
	ID        string      `json:"id"`
	Game      domain.Game `json:"game"`
	Headline  int         `json:"headline"` // score for keno, hits for positional
}

// Record is an archived report with its payload decoded.
// Exactly one of Keno and Positional is set, matching Game.
type Record struct {
	Keno       *hunter.KenoReport       `json:"keno,omitempty"`
	Positional *hunter.PositionalReport `json:"positional,omitempty"`
	Entry
}

// Repository stores reports in the reports table
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new report repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repository", "reports").Logger(),
	}
}

// SaveKeno archives a keno report and returns its id
func (r *Repository) SaveKeno(report *hunter.KenoReport) (string, error) {
	if report == nil {
		return "", fmt.Errorf("nil keno report")
	}
	return r.save(domain.GameKeno, report.Score.Score, report.GeneratedAt, report)
}

// SavePositional archives a positional report and returns its id
func (r *Repository) SavePositional(report *hunter.PositionalReport) (string, error) {
	if report == nil {
		return "", fmt.Errorf("nil positional report")
	}
	return r.save(domain.GamePositional, report.Result.Hits, report.GeneratedAt, report)
}

func (r *Repository) save(game domain.Game, headline int, createdAt time.Time, payload interface{}) (string, error) {
	blob, err := encode(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s report: %w", game, err)
	}
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	id := uuid.New().String()
	_, err = r.db.Exec(`
		INSERT INTO reports (id, game, headline, payload, created_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		id,
		string(game),
		headline,
		blob,
		createdAt.UTC().UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert report: %w", err)
	}

	r.log.Debug().
		Str("id", id).
		Str("game", string(game)).
		Int("headline", headline).
		Int("bytes", len(blob)).
		Msg("Archived report")

	return id, nil
}

// Get loads one report with its payload
func (r *Repository) Get(id string) (*Record, error) {
	var (
		rec       Record
		game      string
		blob      []byte
		createdAt int64
	)
	err := r.db.QueryRow(`
		SELECT id, game, headline, payload, created_at
		FROM reports
		WHERE id = ?
	`, id).Scan(&rec.ID, &game, &rec.Headline, &blob, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query report: %w", err)
	}

	rec.Game = domain.Game(game)
	rec.CreatedAt = time.Unix(0, createdAt).UTC()

	switch rec.Game {
	case domain.GameKeno:
		rec.Keno = &hunter.KenoReport{}
		err = decode(blob, rec.Keno)
	case domain.GamePositional:
		rec.Positional = &hunter.PositionalReport{}
		err = decode(blob, rec.Positional)
	default:
		err = fmt.Errorf("unknown game %q", game)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode report %s: %w", id, err)
	}

	return &rec, nil
}

// List returns the newest entries first, without payloads
func (r *Repository) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := r.db.Query(`
		SELECT id, game, headline, created_at
		FROM reports
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var (
			entry     Entry
			game      string
			createdAt int64
		)
		if err := rows.Scan(&entry.ID, &game, &entry.Headline, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		entry.Game = domain.Game(game)
		entry.CreatedAt = time.Unix(0, createdAt).UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reports: %w", err)
	}

	return entries, nil
}

// Prune deletes reports created before cutoff and returns how many were removed
func (r *Repository) Prune(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM reports WHERE created_at < ?`, cutoff.UTC().UnixNano())
	if err != nil {
		return 0, fmt.Errorf("failed to prune reports: %w", err)
	}
	return result.RowsAffected()
}

// Payloads reuse the json tags so archived and served field names match
func encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte, v interface{}) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}
