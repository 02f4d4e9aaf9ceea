package usecase

import "context"

// SessionRepository хранит снапшоты сессий. Get отсутствующей сессии возвращает e.ErrSessionNotFound.
type SessionRepository interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
