package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/raiyan/alumni-network/internal/apperror"
)

// CredentialVerifier is the seam between the session store and whatever
// decides whether a login attempt is genuine.
//
// By default login never rejects: the store fabricates a session from
// whatever email was typed. The interface exists so that behavior is a
// choice, not a hard-coded gap. Swapping in BcryptVerifier (or a future
// backend client) turns the mock into a real credential check without
// touching the store.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, secret string) error
}

// AllowAll accepts every email/secret pair: any credentials produce a
// session. Do not ship this beyond a prototype.
type AllowAll struct{}

func (AllowAll) Verify(ctx context.Context, email, secret string) error {
	return nil
}

// defaultCost is the bcrypt work factor for newly hashed secrets.
// Cost 12 takes roughly 250ms on a modern server — negligible for a login,
// expensive for a brute-force attacker.
const defaultCost = 12

// BcryptVerifier checks a login attempt against a fixed table of
// email → bcrypt hash entries. Unknown emails and wrong secrets both come
// back as apperror.ErrLoginRejected, indistinguishable on purpose.
type BcryptVerifier struct {
	hashes map[string]string
	cost   int
}

// NewBcryptVerifier creates a verifier over the given email → hash table.
func NewBcryptVerifier(hashes map[string]string) *BcryptVerifier {
	return &BcryptVerifier{hashes: hashes, cost: defaultCost}
}

// NewBcryptVerifierForTest creates a verifier with a custom bcrypt cost.
// Cost 4 is the bcrypt minimum — use it in tests to avoid the ~250ms
// per-operation overhead of cost 12.
func NewBcryptVerifierForTest(hashes map[string]string, cost int) *BcryptVerifier {
	return &BcryptVerifier{hashes: hashes, cost: cost}
}

// Verify checks the secret against the stored hash for the email.
// bcrypt.CompareHashAndPassword is constant-time internally, so a wrong
// secret cannot be distinguished from a right one by response timing.
func (v *BcryptVerifier) Verify(ctx context.Context, email, secret string) error {
	hash, ok := v.hashes[email]
	if !ok {
		return apperror.LoginRejected(email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return apperror.LoginRejected(email)
		}
		return fmt.Errorf("auth: comparing secret hash: %w", err)
	}
	return nil
}

// HashSecret hashes a plaintext secret for inclusion in a verifier table.
//
// Returns an error for secrets longer than 72 bytes: bcrypt silently
// truncates beyond that, and silent truncation is worse than a refusal.
func (v *BcryptVerifier) HashSecret(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		return "", fmt.Errorf("auth: secret must be 72 bytes or fewer")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), v.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing secret: %w", err)
	}
	return string(hashed), nil
}
