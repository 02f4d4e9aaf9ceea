package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DRSN-tech/kitchen-backend/internal/cfg"
	"github.com/DRSN-tech/kitchen-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/kitchen-backend/internal/usecase"
	"github.com/DRSN-tech/kitchen-backend/pkg/clients"
	"github.com/DRSN-tech/kitchen-backend/pkg/e"
	"github.com/DRSN-tech/kitchen-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// SessionRepo хранит снапшоты сессий в Redis. Каждое сохранение продлевает TTL.
type SessionRepo struct {
	client *clients.RedisClient
	conv   converter.SessionConverter
	cfg    *cfg.SessionCfg
	logger logger.Logger
}

func NewSessionRepo(client *clients.RedisClient, conv converter.SessionConverter,
	cfg *cfg.SessionCfg, logger logger.Logger) *SessionRepo {
	return &SessionRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *SessionRepo) Save(ctx context.Context, session *usecase.Session) error {
	data, err := json.Marshal(s.conv.ToRedisModel(session))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := s.client.Client.Set(ctx, sessionKey(session.ID), data, s.cfg.TTL).Err(); err != nil {
		s.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Get читает снапшот. Повреждённый снапшот удаляется и считается отсутствующим.
func (s *SessionRepo) Get(ctx context.Context, id string) (*usecase.Session, error) {
	data, err := s.client.Client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, r.Nil) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrSessionNotFound)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	session, err := s.decode(data)
	if err != nil {
		s.logger.Warnf("dropping session %s: %v", id, err)
		if err := s.client.Client.Del(ctx, sessionKey(id)).Err(); err != nil {
			s.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrSessionNotFound)
	}

	if session.ID != id {
		s.logger.Warnf("Session ID mismatch: key_id: %s, model_id: %s", id, session.ID)
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrSessionNotFound)
	}

	return session, nil
}

func (s *SessionRepo) Delete(ctx context.Context, id string) error {
	if err := s.client.Client.Del(ctx, sessionKey(id)).Err(); err != nil {
		s.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (s *SessionRepo) decode(data []byte) (*usecase.Session, error) {
	var model converter.SessionRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}

	return s.conv.ToUseCase(&model)
}

// sessionKey возвращает Redis-ключ сессии
func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}
