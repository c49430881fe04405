package usecase

import (
	"context"
	"errors"
	"fmt"

	"filmes-api/internal/data/repository"
	"filmes-api/internal/dto/request"
	"filmes-api/internal/dto/response"
	"filmes-api/pkg/cache"
	"filmes-api/pkg/queue"

	"go.uber.org/zap"
)

type SessaoService interface {
	CreateSessao(ctx context.Context, req *request.CreateSessaoDto) (*response.ReadSessaoDto, error)
	GetSessoes(ctx context.Context, req *request.ListRequest) ([]response.ReadSessaoDto, error)
	GetSessao(ctx context.Context, filmeID, cinemaID uint) (*response.ReadSessaoDto, error)
	DeleteSessao(ctx context.Context, filmeID, cinemaID uint) error
}

type sessaoService struct {
	base
}

func NewSessaoService(b base, log *zap.Logger) SessaoService {
	return &sessaoService{base: b.withLog(log, "sessao")}
}

func (s *sessaoService) CreateSessao(ctx context.Context, req *request.CreateSessaoDto) (*response.ReadSessaoDto, error) {
	if errs := req.Validate(); errs != nil {
		s.log.Warn("Sessao validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	sessao := req.ToEntity()
	if err := s.repo.Sessao.Create(ctx, sessao); err != nil {
		switch {
		case errors.Is(err, repository.ErrForeignKey):
			return nil, fmt.Errorf("filme %d or cinema %d: %w", sessao.FilmeID, sessao.CinemaID, ErrInvalidReference)
		case errors.Is(err, repository.ErrDuplicate):
			return nil, fmt.Errorf("sessao %d/%d: %w", sessao.FilmeID, sessao.CinemaID, ErrConflict)
		}
		s.log.Error("Failed to create sessao", zap.Error(err))
		return nil, fmt.Errorf("create sessao: %w", err)
	}

	s.invalidate(ctx, cache.FilmeKey(sessao.FilmeID), cache.CinemaKey(sessao.CinemaID))
	s.log.Info("Sessao created",
		zap.Uint("filme_id", sessao.FilmeID),
		zap.Uint("cinema_id", sessao.CinemaID),
	)

	resp := response.SessaoToResponse(sessao)
	s.publish(ctx, queue.NewEvent(queue.ResourceSessao, queue.ActionCreated, sessaoID(sessao.FilmeID, sessao.CinemaID), resp))

	return &resp, nil
}

func (s *sessaoService) GetSessoes(ctx context.Context, req *request.ListRequest) ([]response.ReadSessaoDto, error) {
	sessoes, err := s.repo.Sessao.FindAll(ctx, req.Offset(), req.Limit())
	if err != nil {
		s.log.Error("Failed to get sessoes",
			zap.Error(err),
			zap.Int("skip", req.Skip),
			zap.Int("take", req.Take),
		)
		return nil, fmt.Errorf("get sessoes: %w", err)
	}

	result := make([]response.ReadSessaoDto, len(sessoes))
	for i, sessao := range sessoes {
		result[i] = response.SessaoToResponse(sessao)
	}

	return result, nil
}

func (s *sessaoService) GetSessao(ctx context.Context, filmeID, cinemaID uint) (*response.ReadSessaoDto, error) {
	sessao, err := s.repo.Sessao.FindByID(ctx, filmeID, cinemaID)
	if err != nil {
		s.log.Error("Failed to get sessao",
			zap.Error(err),
			zap.Uint("filme_id", filmeID),
			zap.Uint("cinema_id", cinemaID),
		)
		return nil, fmt.Errorf("get sessao: %w", err)
	}
	if sessao == nil {
		return nil, fmt.Errorf("sessao %d/%d: %w", filmeID, cinemaID, ErrNotFound)
	}

	resp := response.SessaoToResponse(sessao)
	return &resp, nil
}

func (s *sessaoService) DeleteSessao(ctx context.Context, filmeID, cinemaID uint) error {
	if err := s.repo.Sessao.Delete(ctx, filmeID, cinemaID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("sessao %d/%d: %w", filmeID, cinemaID, ErrNotFound)
		}
		s.log.Error("Failed to delete sessao",
			zap.Error(err),
			zap.Uint("filme_id", filmeID),
			zap.Uint("cinema_id", cinemaID),
		)
		return fmt.Errorf("delete sessao: %w", err)
	}

	s.invalidate(ctx, cache.FilmeKey(filmeID), cache.CinemaKey(cinemaID))
	s.log.Info("Sessao deleted",
		zap.Uint("filme_id", filmeID),
		zap.Uint("cinema_id", cinemaID),
	)
	s.publish(ctx, queue.NewEvent(queue.ResourceSessao, queue.ActionDeleted, sessaoID(filmeID, cinemaID), nil))

	return nil
}

func sessaoID(filmeID, cinemaID uint) string {
	return idString(filmeID) + "/" + idString(cinemaID)
}
