package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aiprdesign/fitness-plan-ai/internal/health"
	"github.com/aiprdesign/fitness-plan-ai/internal/weightlog"
)

// MemoryStore keeps sessions in process memory. State is lost on restart.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[uuid.UUID]*Session),
		now:      time.Now,
	}
}

// snapshot copies s so callers never share the stored log or profile.
func snapshot(s *Session) Session {
	out := *s
	out.WeightLog = weightlog.Series(s.WeightLog)
	if s.Profile != nil {
		p := *s.Profile
		out.Profile = &p
	}
	return out
}

// touch must be called with mu held.
func (m *MemoryStore) touch(id uuid.UUID) (*Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	s.LastSeenAt = m.now()
	return s, nil
}

func (m *MemoryStore) Create(_ context.Context) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	s := &Session{ID: uuid.New(), CreatedAt: now, LastSeenAt: now, WeightLog: weightlog.Log{}}
	m.sessions[s.ID] = s
	return snapshot(s), nil
}

func (m *MemoryStore) Get(_ context.Context, id uuid.UUID) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.touch(id)
	if err != nil {
		return Session{}, err
	}
	return snapshot(s), nil
}

func (m *MemoryStore) SetProfile(_ context.Context, id uuid.UUID, p health.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.touch(id)
	if err != nil {
		return err
	}
	s.Profile = &p
	return nil
}

func (m *MemoryStore) LogWeight(_ context.Context, id uuid.UUID, date weightlog.Date, weightKG float64) (weightlog.Log, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := m.touch(id)
	if err != nil {
		return nil, err
	}
	next, err := weightlog.Append(s.WeightLog, date, weightKG)
	if err != nil {
		return nil, err
	}
	s.WeightLog = next
	return weightlog.Series(next), nil
}

func (m *MemoryStore) End(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *MemoryStore) ExpireIdle(_ context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for id, s := range m.sessions {
		if s.LastSeenAt.Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}
