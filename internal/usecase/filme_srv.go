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

type FilmeService interface {
	CreateFilme(ctx context.Context, req *request.CreateFilmeDto) (*response.ReadFilmeDto, error)
	GetFilmes(ctx context.Context, req *request.ListRequest, nomeCinema *string) ([]response.ReadFilmeDto, error)
	GetFilmeByID(ctx context.Context, id uint) (*response.ReadFilmeDto, error)
	UpdateFilme(ctx context.Context, id uint, req *request.UpdateFilmeDto) (*response.ReadFilmeDto, error)
	PatchFilme(ctx context.Context, id uint, doc patch.Document) (*response.ReadFilmeDto, error)
	DeleteFilme(ctx context.Context, id uint) error
}

type filmeService struct {
	base
}

func NewFilmeService(b base, log *zap.Logger) FilmeService {
	return &filmeService{base: b.withLog(log, "filme")}
}

func (s *filmeService) CreateFilme(ctx context.Context, req *request.CreateFilmeDto) (*response.ReadFilmeDto, error) {
	if errs := req.Validate(); errs != nil {
		s.log.Warn("Filme validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	filme := req.ToEntity()
	if err := s.repo.Filme.Create(ctx, filme); err != nil {
		s.log.Error("Failed to create filme", zap.Error(err), zap.String("titulo", filme.Titulo))
		return nil, fmt.Errorf("create filme: %w", err)
	}

	s.log.Info("Filme created",
		zap.Uint("filme_id", filme.ID),
		zap.String("titulo", filme.Titulo),
	)

	resp := response.FilmeToResponse(filme, s.now())
	s.publish(ctx, queue.NewEvent(queue.ResourceFilme, queue.ActionCreated, idString(filme.ID), resp))

	return &resp, nil
}

func (s *filmeService) GetFilmes(ctx context.Context, req *request.ListRequest, nomeCinema *string) ([]response.ReadFilmeDto, error) {
	filmes, err := s.repo.Filme.FindAll(ctx, req.Offset(), req.Limit(), nomeCinema)
	if err != nil {
		s.log.Error("Failed to get filmes",
			zap.Error(err),
			zap.Int("skip", req.Skip),
			zap.Int("take", req.Take),
			zap.Stringp("nome_cinema", nomeCinema),
		)
		return nil, fmt.Errorf("get filmes: %w", err)
	}

	now := s.now()
	result := make([]response.ReadFilmeDto, len(filmes))
	for i, filme := range filmes {
		result[i] = response.FilmeToResponse(filme, now)
	}

	s.log.Info("Filmes retrieved",
		zap.Int("count", len(result)),
		zap.Int("skip", req.Skip),
		zap.Int("take", req.Take),
	)

	return result, nil
}

func (s *filmeService) GetFilmeByID(ctx context.Context, id uint) (*response.ReadFilmeDto, error) {
	var cached response.ReadFilmeDto
	if s.cacheGet(ctx, cache.FilmeKey(id), &cached) {
		cached.HoraDaConsulta = s.now()
		return &cached, nil
	}

	filme, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.FilmeToResponse(filme, s.now())
	// A write that invalidates between the read above and this set leaves a
	// stale entry until CACHE_TTL expires.
	s.cacheSet(ctx, cache.FilmeKey(id), resp)

	return &resp, nil
}

func (s *filmeService) UpdateFilme(ctx context.Context, id uint, req *request.UpdateFilmeDto) (*response.ReadFilmeDto, error) {
	if errs := req.Validate(); errs != nil {
		s.log.Warn("Filme validation failed", zap.Uint("filme_id", id), zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	filme, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(filme)
	return s.save(ctx, filme)
}

func (s *filmeService) PatchFilme(ctx context.Context, id uint, doc patch.Document) (*response.ReadFilmeDto, error) {
	filme, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := request.FilmeToUpdateDto(filme)
	if err := doc.Apply(&dto); err != nil {
		s.log.Warn("Filme patch rejected", zap.Uint("filme_id", id), zap.Error(err))
		return nil, patchError(err)
	}
	if errs := dto.Validate(); errs != nil {
		s.log.Warn("Patched filme is invalid", zap.Uint("filme_id", id), zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	dto.ApplyTo(filme)
	return s.save(ctx, filme)
}

func (s *filmeService) DeleteFilme(ctx context.Context, id uint) error {
	filme, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Filme.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("filme %d: %w", id, ErrNotFound)
		}
		s.log.Error("Failed to delete filme", zap.Error(err), zap.Uint("filme_id", id))
		return fmt.Errorf("delete filme: %w", err)
	}

	// Sessoes go with the filme, so cached cinemas listing them are stale too.
	keys := []string{cache.FilmeKey(id)}
	for _, sessao := range filme.Sessoes {
		keys = append(keys, cache.CinemaKey(sessao.CinemaID))
	}
	s.invalidate(ctx, keys...)

	s.log.Info("Filme deleted", zap.Uint("filme_id", id), zap.Int("sessoes", len(filme.Sessoes)))
	s.publish(ctx, queue.NewEvent(queue.ResourceFilme, queue.ActionDeleted, idString(id), nil))

	return nil
}

func (s *filmeService) find(ctx context.Context, id uint) (*entity.Filme, error) {
	filme, err := s.repo.Filme.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get filme by ID", zap.Error(err), zap.Uint("filme_id", id))
		return nil, fmt.Errorf("get filme by id: %w", err)
	}
	if filme == nil {
		return nil, fmt.Errorf("filme %d: %w", id, ErrNotFound)
	}
	return filme, nil
}

func (s *filmeService) save(ctx context.Context, filme *entity.Filme) (*response.ReadFilmeDto, error) {
	if err := s.repo.Filme.Update(ctx, filme); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("filme %d: %w", filme.ID, ErrNotFound)
		}
		s.log.Error("Failed to update filme", zap.Error(err), zap.Uint("filme_id", filme.ID))
		return nil, fmt.Errorf("update filme: %w", err)
	}

	s.invalidate(ctx, cache.FilmeKey(filme.ID))
	s.log.Info("Filme updated", zap.Uint("filme_id", filme.ID))

	resp := response.FilmeToResponse(filme, s.now())
	s.publish(ctx, queue.NewEvent(queue.ResourceFilme, queue.ActionUpdated, idString(filme.ID), resp))

	return &resp, nil
}
