// Package repository declares the storage interfaces the rest of the app
// depends on. Concrete backends live in subpackages (sqlite); the session
// store only ever sees these interfaces.
package repository

import (
	"context"

	"github.com/raiyan/alumni-network/internal/model"
)

// SessionRepository persists the single current session.
//
// The storage model is deliberately a single named slot, not a sessions
// table: at most one session exists at a time (the current one), and logout
// empties the slot. Load returning (nil, nil) means the slot is empty — the
// unauthenticated state — and is not an error.
//
// A corrupt slot (payload that no longer decodes) is reported as
// apperror.ErrCorruptSession so the caller can degrade to "no session"
// instead of crashing on a raw decode failure.
type SessionRepository interface {
	Load(ctx context.Context) (*model.Session, error)
	Save(ctx context.Context, session *model.Session) error
	Clear(ctx context.Context) error
}
