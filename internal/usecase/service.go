package usecase

import (
	"context"
	"strconv"
	"time"

	"filmes-api/internal/data/repository"
	"filmes-api/pkg/cache"
	"filmes-api/pkg/queue"

	"go.uber.org/zap"
)

type Service struct {
	Filme  FilmeService
	Cinema CinemaService
	Sessao SessaoService
}

func NewService(repo *repository.Repository, c cache.Cache, events queue.Publisher, log *zap.Logger) *Service {
	b := base{
		repo:   repo,
		cache:  c,
		events: events,
		now:    time.Now,
	}

	return &Service{
		Filme:  NewFilmeService(b, log),
		Cinema: NewCinemaService(b, log),
		Sessao: NewSessaoService(b, log),
	}
}

// base bundles the collaborators shared by every service.
type base struct {
	repo   *repository.Repository
	cache  cache.Cache
	events queue.Publisher
	log    *zap.Logger
	now    func() time.Time
}

func (b base) withLog(log *zap.Logger, service string) base {
	b.log = log.With(zap.String("service", service))
	return b
}

// publish never fails the request; a lost event is only logged.
func (b base) publish(ctx context.Context, event queue.Event) {
	if err := b.events.Publish(ctx, event); err != nil {
		b.log.Warn("Failed to publish event",
			zap.Error(err),
			zap.String("event_type", event.Type),
			zap.String("resource_id", event.ResourceID),
		)
	}
}

func (b base) invalidate(ctx context.Context, keys ...string) {
	if err := b.cache.Delete(ctx, keys...); err != nil {
		b.log.Warn("Failed to invalidate cache", zap.Error(err), zap.Strings("keys", keys))
	}
}

func (b base) cacheGet(ctx context.Context, key string, dst any) bool {
	found, err := b.cache.Get(ctx, key, dst)
	if err != nil {
		b.log.Warn("Failed to read cache", zap.Error(err), zap.String("key", key))
		return false
	}
	return found
}

func (b base) cacheSet(ctx context.Context, key string, value any) {
	if err := b.cache.Set(ctx, key, value); err != nil {
		b.log.Warn("Failed to write cache", zap.Error(err), zap.String("key", key))
	}
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
