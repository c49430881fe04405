package usecase

import (
	"context"
	"errors"
	"fmt"

	"filmes-api/internal/data/entity"
	"filmes-api/internal/data/repository"
	"filmes-api/internal/dto/request"
	"filmes-api/internal/dto/response"
	"filmes-api/internal/patch"
	"filmes-api/pkg/cache"
	"filmes-api/pkg/queue"

	"go.uber.org/zap"
)

type CinemaService interface {
	CreateCinema(ctx context.Context, req *request.CreateCinemaDto) (*response.ReadCinemaDto, error)
	GetCinemas(ctx context.Context, req *request.ListRequest) ([]response.ReadCinemaDto, error)
	GetCinemaByID(ctx context.Context, id uint) (*response.ReadCinemaDto, error)
	UpdateCinema(ctx context.Context, id uint, req *request.UpdateCinemaDto) (*response.ReadCinemaDto, error)
	PatchCinema(ctx context.Context, id uint, doc patch.Document) (*response.ReadCinemaDto, error)
	DeleteCinema(ctx context.Context, id uint) error
}

type cinemaService struct {
	base
}

func NewCinemaService(b base, log *zap.Logger) CinemaService {
	return &cinemaService{base: b.withLog(log, "cinema")}
}

func (s *cinemaService) CreateCinema(ctx context.Context, req *request.CreateCinemaDto) (*response.ReadCinemaDto, error) {
	if errs := req.Validate(); errs != nil {
		s.log.Warn("Cinema validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	cinema := req.ToEntity()
	if err := s.repo.Cinema.Create(ctx, cinema); err != nil {
		s.log.Error("Failed to create cinema", zap.Error(err), zap.String("nome", cinema.Nome))
		return nil, fmt.Errorf("create cinema: %w", err)
	}

	s.log.Info("Cinema created",
		zap.Uint("cinema_id", cinema.ID),
		zap.String("nome", cinema.Nome),
	)

	resp := response.CinemaToResponse(cinema)
	s.publish(ctx, queue.NewEvent(queue.ResourceCinema, queue.ActionCreated, idString(cinema.ID), resp))

	return &resp, nil
}

func (s *cinemaService) GetCinemas(ctx context.Context, req *request.ListRequest) ([]response.ReadCinemaDto, error) {
	cinemas, err := s.repo.Cinema.FindAll(ctx, req.Offset(), req.Limit())
	if err != nil {
		s.log.Error("Failed to get cinemas",
			zap.Error(err),
			zap.Int("skip", req.Skip),
			zap.Int("take", req.Take),
		)
		return nil, fmt.Errorf("get cinemas: %w", err)
	}

	result := make([]response.ReadCinemaDto, len(cinemas))
	for i, cinema := range cinemas {
		result[i] = response.CinemaToResponse(cinema)
	}

	s.log.Info("Cinemas retrieved",
		zap.Int("count", len(result)),
		zap.Int("skip", req.Skip),
		zap.Int("take", req.Take),
	)

	return result, nil
}

func (s *cinemaService) GetCinemaByID(ctx context.Context, id uint) (*response.ReadCinemaDto, error) {
	var cached response.ReadCinemaDto
	if s.cacheGet(ctx, cache.CinemaKey(id), &cached) {
		return &cached, nil
	}

	cinema, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.CinemaToResponse(cinema)
	// A write that invalidates between the read above and this set leaves a
	// stale entry until CACHE_TTL expires.
	s.cacheSet(ctx, cache.CinemaKey(id), resp)

	return &resp, nil
}

func (s *cinemaService) UpdateCinema(ctx context.Context, id uint, req *request.UpdateCinemaDto) (*response.ReadCinemaDto, error) {
	if errs := req.Validate(); errs != nil {
		s.log.Warn("Cinema validation failed", zap.Uint("cinema_id", id), zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	cinema, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(cinema)
	return s.save(ctx, cinema)
}

func (s *cinemaService) PatchCinema(ctx context.Context, id uint, doc patch.Document) (*response.ReadCinemaDto, error) {
	cinema, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := request.CinemaToUpdateDto(cinema)
	if err := doc.Apply(&dto); err != nil {
		s.log.Warn("Cinema patch rejected", zap.Uint("cinema_id", id), zap.Error(err))
		return nil, patchError(err)
	}
	if errs := dto.Validate(); errs != nil {
		s.log.Warn("Patched cinema is invalid", zap.Uint("cinema_id", id), zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	dto.ApplyTo(cinema)
	return s.save(ctx, cinema)
}

func (s *cinemaService) DeleteCinema(ctx context.Context, id uint) error {
	cinema, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Cinema.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("cinema %d: %w", id, ErrNotFound)
		}
		s.log.Error("Failed to delete cinema", zap.Error(err), zap.Uint("cinema_id", id))
		return fmt.Errorf("delete cinema: %w", err)
	}

	keys := []string{cache.CinemaKey(id)}
	for _, sessao := range cinema.Sessoes {
		keys = append(keys, cache.FilmeKey(sessao.FilmeID))
	}
	s.invalidate(ctx, keys...)

	s.log.Info("Cinema deleted", zap.Uint("cinema_id", id), zap.Int("sessoes", len(cinema.Sessoes)))
	s.publish(ctx, queue.NewEvent(queue.ResourceCinema, queue.ActionDeleted, idString(id), nil))

	return nil
}

func (s *cinemaService) find(ctx context.Context, id uint) (*entity.Cinema, error) {
	cinema, err := s.repo.Cinema.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get cinema by ID", zap.Error(err), zap.Uint("cinema_id", id))
		return nil, fmt.Errorf("get cinema by id: %w", err)
	}
	if cinema == nil {
		return nil, fmt.Errorf("cinema %d: %w", id, ErrNotFound)
	}
	return cinema, nil
}

func (s *cinemaService) save(ctx context.Context, cinema *entity.Cinema) (*response.ReadCinemaDto, error) {
	if err := s.repo.Cinema.Update(ctx, cinema); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("cinema %d: %w", cinema.ID, ErrNotFound)
		}
		s.log.Error("Failed to update cinema", zap.Error(err), zap.Uint("cinema_id", cinema.ID))
		return nil, fmt.Errorf("update cinema: %w", err)
	}

	s.invalidate(ctx, cache.CinemaKey(cinema.ID))
	s.log.Info("Cinema updated", zap.Uint("cinema_id", cinema.ID))

	resp := response.CinemaToResponse(cinema)
	s.publish(ctx, queue.NewEvent(queue.ResourceCinema, queue.ActionUpdated, idString(cinema.ID), resp))

	return &resp, nil
}
