package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/raiyan/alumni-network/internal/apperror"
	"github.com/raiyan/alumni-network/internal/model"
	"github.com/raiyan/alumni-network/internal/repository"
)

// sessionSlot is the well-known key the current session lives under.
// One named slot, one writer.
const sessionSlot = "alumni_platform_user"

// compile-time check that *DB implements repository.SessionRepository
var _ repository.SessionRepository = (*DB)(nil)

// Load reads the persisted session, if any.
//
// Three outcomes:
//   - slot empty            → (nil, nil): the unauthenticated state
//   - slot holds valid JSON → (*Session, nil)
//   - slot holds garbage    → (nil, apperror.ErrCorruptSession)
//
// The corrupt case is a distinct sentinel rather than a raw json error so the
// session store can recognise it and degrade gracefully instead of treating
// it as a storage failure.
func (db *DB) Load(ctx context.Context) (*model.Session, error) {
	var payload string
	err := db.conn.QueryRowContext(ctx,
		`SELECT payload FROM session_slot WHERE slot = ?`, sessionSlot,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: loading session slot: %w", err)
	}

	var session model.Session
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		return nil, apperror.CorruptSession(err)
	}
	return &session, nil
}

// Save serializes the session into the slot, replacing whatever was there.
// The slot key is UNIQUE, so INSERT OR REPLACE keeps "at most one session"
// true at the storage level, not just by convention.
func (db *DB) Save(ctx context.Context, session *model.Session) error {
	if session == nil {
		return fmt.Errorf("sqlite: refusing to save nil session (use Clear)")
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("sqlite: encoding session %s: %w", session.ID, err)
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT OR REPLACE INTO session_slot (slot, payload, updated_at) VALUES (?, ?, ?)`,
		sessionSlot, string(payload), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("sqlite: saving session %s: %w", session.ID, err)
	}
	return nil
}

// Clear empties the slot. Clearing an already-empty slot is not an error —
// logout must be idempotent.
func (db *DB) Clear(ctx context.Context) error {
	_, err := db.conn.ExecContext(ctx,
		`DELETE FROM session_slot WHERE slot = ?`, sessionSlot,
	)
	if err != nil {
		return fmt.Errorf("sqlite: clearing session slot: %w", err)
	}
	return nil
}

// saveRaw writes an arbitrary payload into the slot, bypassing the JSON
// encode. Only used by tests to plant corrupt data.
func (db *DB) saveRaw(ctx context.Context, payload string) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT OR REPLACE INTO session_slot (slot, payload, updated_at) VALUES (?, ?, ?)`,
		sessionSlot, payload, time.Now(),
	)
	return err
}
