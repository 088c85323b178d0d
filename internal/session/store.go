// Package session owns "who is currently using the application".
//
// The Store is the single source of truth for the current authenticated
// identity and its lifecycle: restore at startup, login/register (which
// simulate a backend round trip), and logout. Authentication here is a mock:
// login fabricates a session from whatever email was supplied, and there
// is no real credential boundary unless a stricter verifier is injected.
//
// DESIGN NOTES:
//   - The store is an explicit, injectable object with subscribe/notify
//     semantics, not ambient global state. Tests construct isolated
//     instances with a fake repository and zero latency.
//   - Overlapping login/register calls are sequenced: each call takes a
//     monotonically increasing sequence number, and only the most recently
//     issued call may commit. A superseded call returns ErrSuperseded and
//     leaves both the store and the persisted slot untouched. Without this,
//     a stale call resolving late could silently overwrite a newer result.
//   - Restoring from a corrupt persisted slot degrades to "no session" and
//     clears the slot instead of propagating a decode failure.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode"

	"github.com/rs/xid"

	"github.com/raiyan/alumni-network/internal/apperror"
	"github.com/raiyan/alumni-network/internal/auth"
	"github.com/raiyan/alumni-network/internal/model"
	"github.com/raiyan/alumni-network/internal/repository"
)

// DefaultLatency is the simulated backend round trip for login/register.
const DefaultLatency = time.Second

// Config holds the store's tunables.
type Config struct {
	// Latency is the simulated backend round trip applied to Login and
	// Register. Zero means no delay (use that in tests).
	Latency time.Duration

	// Verifier decides whether a login attempt is genuine. Nil means
	// auth.AllowAll, which never rejects.
	Verifier auth.CredentialVerifier
}

// Store is the session store. Construct with New; the zero value is not
// usable.
type Store struct {
	repo     repository.SessionRepository
	verifier auth.CredentialVerifier
	logger   *slog.Logger
	latency  time.Duration

	seq atomic.Uint64 // most recently issued login/register sequence number

	mu      sync.Mutex
	current *model.Session
	subs    map[int]func(*model.Session)
	nextSub int
}

// New creates a Store persisting through repo.
func New(repo repository.SessionRepository, cfg Config, logger *slog.Logger) *Store {
	verifier := cfg.Verifier
	if verifier == nil {
		verifier = auth.AllowAll{}
	}
	return &Store{
		repo:     repo,
		verifier: verifier,
		logger:   logger,
		latency:  cfg.Latency,
		subs:     make(map[int]func(*model.Session)),
	}
}

// Restore loads the persisted session, if any, and makes it current.
//
// Called once at startup. It never fails visibly: an empty slot means
// unauthenticated, a corrupt slot is logged, cleared, and treated as
// unauthenticated, and a storage error is logged and treated as
// unauthenticated. Calling Restore again with the same persisted content
// yields the same session.
func (s *Store) Restore(ctx context.Context) *model.Session {
	loaded, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, apperror.ErrCorruptSession) {
			s.logger.Warn("persisted session is corrupt, discarding",
				slog.String("error", err.Error()),
			)
			// Clear the slot so the corrupt payload doesn't greet every
			// subsequent start.
			if clearErr := s.repo.Clear(ctx); clearErr != nil {
				s.logger.Warn("failed to clear corrupt session slot",
					slog.String("error", clearErr.Error()),
				)
			}
		} else {
			s.logger.Warn("failed to load persisted session",
				slog.String("error", err.Error()),
			)
		}
		s.commit(nil)
		return nil
	}

	if loaded == nil {
		s.commit(nil)
		return nil
	}

	s.logger.Info("session restored",
		slog.String("sessionID", loaded.ID),
		slog.String("role", string(loaded.Role)),
	)
	s.commit(loaded)
	return s.Current()
}

// Login simulates a backend round trip, then fabricates a session from the
// supplied email and role and makes it current.
//
// The display name is derived from the email's local part: separators become
// spaces and each word is capitalized ("jane.doe@x.com" → "Jane Doe").
//
// With the default verifier this never rejects credentials — it is a mock,
// not a security boundary. It does fail for invalid input (empty email, bad
// role), for a cancelled context, and when a newer login/register call was
// issued while this one was waiting (ErrSuperseded).
func (s *Store) Login(ctx context.Context, email, secret string, role model.Role) (*model.Session, error) {
	email = strings.TrimSpace(email)
	if err := validateIdentity(email, role); err != nil {
		return nil, err
	}

	if err := s.verifier.Verify(ctx, email, secret); err != nil {
		s.logger.Info("login rejected", slog.String("email", email))
		return nil, err
	}

	seq := s.seq.Add(1)
	if err := s.simulateRoundTrip(ctx); err != nil {
		return nil, err
	}

	fabricated := &model.Session{
		ID:    xid.New().String(),
		Email: email,
		Name:  displayName(email),
		Role:  role,
	}

	return s.commitLatest(ctx, "login", seq, fabricated)
}

// Register simulates a backend round trip, then fabricates a session from
// the supplied name, email, and role and makes it current.
//
// No uniqueness check happens anywhere — there is no account database to be
// unique in. Same sequencing and cancellation rules as Login.
func (s *Store) Register(ctx context.Context, email, secret, name string, role model.Role) (*model.Session, error) {
	email = strings.TrimSpace(email)
	if err := validateIdentity(email, role); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.ValidationFailed("name", "name is required")
	}

	if err := s.verifier.Verify(ctx, email, secret); err != nil {
		s.logger.Info("registration rejected", slog.String("email", email))
		return nil, err
	}

	seq := s.seq.Add(1)
	if err := s.simulateRoundTrip(ctx); err != nil {
		return nil, err
	}

	fabricated := &model.Session{
		ID:    xid.New().String(),
		Email: email,
		Name:  name,
		Role:  role,
	}

	return s.commitLatest(ctx, "register", seq, fabricated)
}

// Logout clears the current session and the persisted slot. Synchronous —
// no simulated latency — and idempotent.
func (s *Store) Logout(ctx context.Context) error {
	// Invalidate any in-flight login/register: whatever they were doing, the
	// user has since asked to be logged out.
	s.seq.Add(1)

	// Clear under the commit lock so the slot write is ordered against any
	// concurrent login/register persisting at the same moment.
	s.mu.Lock()
	if err := s.repo.Clear(ctx); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("session: clearing persisted session: %w", err)
	}
	s.current = nil
	subs := s.snapshotSubsLocked()
	s.mu.Unlock()

	s.notify(subs, nil)
	s.logger.Info("logged out")
	return nil
}

// Current returns a copy of the current session, or nil when unauthenticated.
// A copy, so callers can never mutate the store's state through the result.
func (s *Store) Current() *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	c := *s.current
	return &c
}

// IsAuthenticated reports whether a session is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// Subscribe registers fn to run after every session change (set or cleared),
// with a copy of the new session (nil on logout). The returned function
// unsubscribes. Callbacks run synchronously on the mutating goroutine, so
// they should be quick.
func (s *Store) Subscribe(fn func(*model.Session)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// simulateRoundTrip blocks for the configured latency or until the context
// is cancelled. A cancelled call must not commit anything, so the ctx error
// propagates.
func (s *Store) simulateRoundTrip(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// commitLatest persists and commits the fabricated session, but only if seq
// is still the most recently issued lifecycle call.
//
// The repository write happens under the commit lock, so concurrent
// lifecycle calls reach the slot in commit order and a stale call can never
// overwrite a newer call's write. If a newer call is issued while the slot
// is being written, the write is undone before the lock is released: a
// superseded call must leave no durable trace, or a restart would revive
// the session the user had already moved past.
func (s *Store) commitLatest(ctx context.Context, op string, seq uint64, fabricated *model.Session) (*model.Session, error) {
	if s.seq.Load() != seq {
		return nil, apperror.Superseded(op)
	}

	s.mu.Lock()
	if s.seq.Load() != seq {
		s.mu.Unlock()
		return nil, apperror.Superseded(op)
	}

	prev := s.current
	if err := s.repo.Save(ctx, fabricated); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("session: persisting session: %w", err)
	}

	if s.seq.Load() != seq {
		// Superseded mid-write. Put the slot back; the newer call is
		// waiting on the lock and will write its own session next.
		s.restoreSlotLocked(ctx, prev)
		s.mu.Unlock()
		return nil, apperror.Superseded(op)
	}

	s.current = fabricated
	subs := s.snapshotSubsLocked()
	s.mu.Unlock()

	s.logger.Info("session established",
		slog.String("op", op),
		slog.String("sessionID", fabricated.ID),
		slog.String("email", fabricated.Email),
		slog.String("role", string(fabricated.Role)),
	)

	s.notify(subs, fabricated)

	c := *fabricated
	return &c, nil
}

// restoreSlotLocked rewrites the slot to the session it held before a
// superseded write, or clears it when there was none. A failure is logged,
// not returned: the caller is already reporting ErrSuperseded.
func (s *Store) restoreSlotLocked(ctx context.Context, prev *model.Session) {
	var err error
	if prev == nil {
		err = s.repo.Clear(ctx)
	} else {
		err = s.repo.Save(ctx, prev)
	}
	if err != nil {
		s.logger.Warn("failed to undo superseded slot write",
			slog.String("error", err.Error()),
		)
	}
}

// commit unconditionally replaces the current session (used by Restore,
// which is not raced by the sequence counter).
func (s *Store) commit(session *model.Session) {
	s.mu.Lock()
	s.current = session
	subs := s.snapshotSubsLocked()
	s.mu.Unlock()
	s.notify(subs, session)
}

func (s *Store) snapshotSubsLocked() []func(*model.Session) {
	subs := make([]func(*model.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return subs
}

func (s *Store) notify(subs []func(*model.Session), session *model.Session) {
	for _, fn := range subs {
		if session == nil {
			fn(nil)
			continue
		}
		c := *session
		fn(&c)
	}
}

func validateIdentity(email string, role model.Role) error {
	if email == "" {
		return apperror.ValidationFailed("email", "email is required")
	}
	if !strings.Contains(email, "@") {
		return apperror.ValidationFailed("email", "email must contain @")
	}
	if !role.Valid() {
		return apperror.ValidationFailed("role", "role must be student, alumni, or admin")
	}
	return nil
}

// displayName derives a presentable name from the email's local part:
// "jane.doe@example.com" → "Jane Doe". Dots and underscores act as word
// separators; each word gets its first letter capitalized.
func displayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.NewReplacer(".", " ", "_", " ").Replace(local)

	words := strings.Fields(local)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
