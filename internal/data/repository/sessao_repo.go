package repository

import (
	"context"
	"errors"
	"fmt"

	"filmes-api/internal/data/entity"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SessaoRepository interface {
	Create(ctx context.Context, sessao *entity.Sessao) error
	FindByID(ctx context.Context, filmeID, cinemaID uint) (*entity.Sessao, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.Sessao, error)
	Delete(ctx context.Context, filmeID, cinemaID uint) error
}

type sessaoRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSessaoRepository(db *gorm.DB, log *zap.Logger) SessaoRepository {
	return &sessaoRepository{
		db:  db,
		log: log.With(zap.String("repository", "sessao")),
	}
}

// Create fails with ErrForeignKey when the filme or cinema is missing and
// ErrDuplicate when the pair is already registered.
func (r *sessaoRepository) Create(ctx context.Context, sessao *entity.Sessao) error {
	err := r.db.WithContext(ctx).Create(sessao).Error
	if err == nil {
		return nil
	}

	err = translate(err)
	if errors.Is(err, ErrForeignKey) || errors.Is(err, ErrDuplicate) {
		r.log.Warn("Sessao rejected by store",
			zap.Error(err),
			zap.Uint("filme_id", sessao.FilmeID),
			zap.Uint("cinema_id", sessao.CinemaID),
		)
	} else {
		r.log.Error("Failed to create sessao",
			zap.Error(err),
			zap.Uint("filme_id", sessao.FilmeID),
			zap.Uint("cinema_id", sessao.CinemaID),
		)
	}
	return fmt.Errorf("create sessao: %w", err)
}

func (r *sessaoRepository) FindByID(ctx context.Context, filmeID, cinemaID uint) (*entity.Sessao, error) {
	var sessao entity.Sessao
	err := r.db.WithContext(ctx).
		Where("filme_id = ? AND cinema_id = ?", filmeID, cinemaID).
		First(&sessao).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find sessao",
			zap.Error(err),
			zap.Uint("filme_id", filmeID),
			zap.Uint("cinema_id", cinemaID),
		)
		return nil, fmt.Errorf("find sessao %d/%d: %w", filmeID, cinemaID, translate(err))
	}

	return &sessao, nil
}

func (r *sessaoRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Sessao, error) {
	sessoes := []*entity.Sessao{}
	if limit <= 0 {
		return sessoes, nil
	}

	err := r.db.WithContext(ctx).
		Order("filme_id, cinema_id").
		Offset(offset).
		Limit(limit).
		Find(&sessoes).Error
	if err != nil {
		r.log.Error("Failed to find all sessoes",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("find sessoes: %w", translate(err))
	}

	return sessoes, nil
}

func (r *sessaoRepository) Delete(ctx context.Context, filmeID, cinemaID uint) error {
	result := r.db.WithContext(ctx).
		Where("filme_id = ? AND cinema_id = ?", filmeID, cinemaID).
		Delete(&entity.Sessao{})
	if result.Error != nil {
		r.log.Error("Failed to delete sessao",
			zap.Error(result.Error),
			zap.Uint("filme_id", filmeID),
			zap.Uint("cinema_id", cinemaID),
		)
		return fmt.Errorf("delete sessao %d/%d: %w", filmeID, cinemaID, translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete sessao %d/%d: %w", filmeID, cinemaID, ErrNotFound)
	}

	return nil
}
