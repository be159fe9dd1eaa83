// Package session keeps per-session planner state: the last submitted
// profile and the weight log. Nothing in a session outlives it.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aiprdesign/fitness-plan-ai/internal/health"
	"github.com/aiprdesign/fitness-plan-ai/internal/weightlog"
)

// ErrNotFound is returned for unknown, ended, or expired sessions.
var ErrNotFound = errors.New("session not found")

// Session is a snapshot of one session's state.
type Session struct {
	ID         uuid.UUID           `json:"id"           db:"id"`
	CreatedAt  time.Time           `json:"created_at"   db:"created_at"`
	LastSeenAt time.Time           `json:"last_seen_at" db:"last_seen_at"`
	Profile    *health.UserProfile `json:"profile"      db:"profile"`

	// Loaded separately from the sessions row.
	WeightLog weightlog.Log `json:"weight_log" db:"-"`
}

// Store isolates state per session. Every method that takes an id returns
// ErrNotFound when the session does not exist, and refreshes LastSeenAt
// when it does.
type Store interface {
	Create(ctx context.Context) (Session, error)
	Get(ctx context.Context, id uuid.UUID) (Session, error)
	SetProfile(ctx context.Context, id uuid.UUID, p health.UserProfile) error
	LogWeight(ctx context.Context, id uuid.UUID, date weightlog.Date, weightKG float64) (weightlog.Log, error)
	End(ctx context.Context, id uuid.UUID) error
	// ExpireIdle ends every session last seen before cutoff and reports how
	// many were removed.
	ExpireIdle(ctx context.Context, cutoff time.Time) (int, error)
}
