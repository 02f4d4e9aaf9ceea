package memory

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/kitchen-backend/internal/usecase"
	"github.com/DRSN-tech/kitchen-backend/pkg/e"
)

type entry struct {
	session   usecase.Session
	expiresAt time.Time
}

// SessionRepo — хранилище сессий в памяти процесса. Снапшоты каталога и корзины
// неизменяемы, поэтому достаточно копировать саму структуру Session.
// Как и в Redis, каждое сохранение продлевает TTL; ttl <= 0 отключает истечение.
type SessionRepo struct {
	mu        sync.RWMutex
	sessions  map[string]entry
	ttl       time.Duration
	nextSweep time.Time
	now       func() time.Time
}

func NewSessionRepo(ttl time.Duration) *SessionRepo {
	return &SessionRepo{
		sessions: make(map[string]entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *SessionRepo) Save(_ context.Context, session *usecase.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.sweep(now)

	var expiresAt time.Time
	if r.ttl > 0 {
		expiresAt = now.Add(r.ttl)
	}

	r.sessions[session.ID] = entry{session: *session, expiresAt: expiresAt}
	return nil
}

func (r *SessionRepo) Get(_ context.Context, id string) (*usecase.Session, error) {
	const op = "SessionRepo.Get"

	r.mu.RLock()
	defer r.mu.RUnlock()

	ent, ok := r.sessions[id]
	if !ok || ent.expired(r.now()) {
		return nil, e.Wrap(op, e.ErrSessionNotFound)
	}

	session := ent.session
	return &session, nil
}

func (r *SessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

// Len возвращает число хранимых сессий, включая истёкшие, но ещё не вычищенные.
func (r *SessionRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

// sweep удаляет истёкшие сессии не чаще раза в ttl. Вызывается под r.mu.
func (r *SessionRepo) sweep(now time.Time) {
	if r.ttl <= 0 || now.Before(r.nextSweep) {
		return
	}

	for id, ent := range r.sessions {
		if ent.expired(now) {
			delete(r.sessions, id)
		}
	}
	r.nextSweep = now.Add(r.ttl)
}

func (ent entry) expired(now time.Time) bool {
	return !ent.expiresAt.IsZero() && !now.Before(ent.expiresAt)
}
