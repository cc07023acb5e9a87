// Package intent persists claim intents in SQLite so minted-but-unsettled claims survive
// restarts and can be reconciled.
package intent

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/dayanaadylkhanova/credit-claim/internal/entity"
)

// ErrTransition is returned when the intent does not exist or is not in a phase the
// requested transition starts from.
var ErrTransition = errors.New("intent phase transition not allowed")

const schema = `
CREATE TABLE IF NOT EXISTS claim_intents (
	id           TEXT PRIMARY KEY,
	wallet       TEXT NOT NULL,
	amount       INTEGER NOT NULL,
	base_units   TEXT NOT NULL,
	phase        TEXT NOT NULL,
	tx_signature TEXT NOT NULL DEFAULT '',
	error        TEXT NOT NULL DEFAULT '',
	created_at   INTEGER NOT NULL,
	updated_at   INTEGER NOT NULL
)`

type Store struct {
	db  *sql.DB
	now func() time.Time
}

func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer keeps SQLite from returning SQLITE_BUSY under concurrent claims.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=FULL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma %s: %w", pragma, err)
		}
	}

	stmts := []string{
		schema,
		"CREATE INDEX IF NOT EXISTS idx_claim_intents_phase ON claim_intents(phase)",
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Create(ctx context.Context, in entity.ClaimIntent) error {
	created := in.CreatedAt
	if created.IsZero() {
		created = s.now()
	}
	phase := in.Phase
	if phase == "" {
		phase = entity.PhaseStarted
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO claim_intents (id, wallet, amount, base_units, phase, tx_signature, error, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.ID, in.Wallet, in.Amount, strconv.FormatUint(in.BaseUnits, 10), string(phase),
		in.TxSignature, in.Error, created.UnixMilli(), created.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert intent %s: %w", in.ID, err)
	}
	return nil
}

func (s *Store) MarkMinted(ctx context.Context, id, txSignature string) error {
	return s.transition(ctx, id, entity.PhaseMinted, "tx_signature", txSignature, entity.PhaseStarted)
}

// AttachTx records a sent but unconfirmed mint signature; the intent stays started.
func (s *Store) AttachTx(ctx context.Context, id, txSignature string) error {
	return s.transition(ctx, id, entity.PhaseStarted, "tx_signature", txSignature, entity.PhaseStarted)
}

func (s *Store) MarkSettled(ctx context.Context, id string) error {
	return s.transition(ctx, id, entity.PhaseSettled, "", "", entity.PhaseStarted, entity.PhaseMinted)
}

func (s *Store) MarkFailed(ctx context.Context, id, reason string) error {
	return s.transition(ctx, id, entity.PhaseFailed, "error", reason, entity.PhaseStarted)
}

func (s *Store) transition(ctx context.Context, id string, to entity.IntentPhase, column, value string, from ...entity.IntentPhase) error {
	set := "phase = ?, updated_at = ?"
	args := []any{string(to), s.now().UnixMilli()}
	if column != "" {
		set += ", " + column + " = ?"
		args = append(args, value)
	}
	where := "id = ? AND phase IN (?" + strings.Repeat(", ?", len(from)-1) + ")"
	args = append(args, id)
	for _, p := range from {
		args = append(args, string(p))
	}

	res, err := s.db.ExecContext(ctx, "UPDATE claim_intents SET "+set+" WHERE "+where, args...)
	if err != nil {
		return fmt.Errorf("update intent %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update intent %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s to %s", ErrTransition, id, to)
	}
	return nil
}

func (s *Store) ListByPhase(ctx context.Context, phase entity.IntentPhase) ([]entity.ClaimIntent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, wallet, amount, base_units, phase, tx_signature, error, created_at, updated_at
		 FROM claim_intents WHERE phase = ? ORDER BY created_at`, string(phase))
	if err != nil {
		return nil, fmt.Errorf("query intents: %w", err)
	}
	defer rows.Close()

	var out []entity.ClaimIntent
	for rows.Next() {
		var (
			in               entity.ClaimIntent
			baseUnits, ph    string
			created, updated int64
		)
		if err := rows.Scan(&in.ID, &in.Wallet, &in.Amount, &baseUnits, &ph,
			&in.TxSignature, &in.Error, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan intent: %w", err)
		}
		in.BaseUnits, err = strconv.ParseUint(baseUnits, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("intent %s base units: %w", in.ID, err)
		}
		in.Phase = entity.IntentPhase(ph)
		in.CreatedAt = time.UnixMilli(created)
		in.UpdatedAt = time.UnixMilli(updated)
		out = append(out, in)
	}
	return out, rows.Err()
}
