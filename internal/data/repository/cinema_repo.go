package repository

import (
	"context"
	"errors"
	"fmt"

	"filmes-api/internal/data/entity"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CinemaRepository interface {
	Create(ctx context.Context, cinema *entity.Cinema) error
	FindByID(ctx context.Context, id uint) (*entity.Cinema, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.Cinema, error)
	Update(ctx context.Context, cinema *entity.Cinema) error
	Delete(ctx context.Context, id uint) error
}

type cinemaRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCinemaRepository(db *gorm.DB, log *zap.Logger) CinemaRepository {
	return &cinemaRepository{
		db:  db,
		log: log.With(zap.String("repository", "cinema")),
	}
}

func (r *cinemaRepository) Create(ctx context.Context, cinema *entity.Cinema) error {
	if err := r.db.WithContext(ctx).Omit("Sessoes").Create(cinema).Error; err != nil {
		r.log.Error("Failed to create cinema",
			zap.Error(err),
			zap.String("nome", cinema.Nome),
		)
		return fmt.Errorf("create cinema %s: %w", cinema.Nome, translate(err))
	}
	return nil
}

func (r *cinemaRepository) FindByID(ctx context.Context, id uint) (*entity.Cinema, error) {
	var cinema entity.Cinema
	err := r.db.WithContext(ctx).
		Preload("Sessoes", orderSessoes).
		First(&cinema, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cinema by ID",
			zap.Error(err),
			zap.Uint("cinema_id", id),
		)
		return nil, fmt.Errorf("find cinema %d: %w", id, translate(err))
	}

	return &cinema, nil
}

func (r *cinemaRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Cinema, error) {
	cinemas := []*entity.Cinema{}
	if limit <= 0 {
		return cinemas, nil
	}

	err := r.db.WithContext(ctx).
		Preload("Sessoes", orderSessoes).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&cinemas).Error
	if err != nil {
		r.log.Error("Failed to find all cinemas",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("find cinemas: %w", translate(err))
	}

	return cinemas, nil
}

func (r *cinemaRepository) Update(ctx context.Context, cinema *entity.Cinema) error {
	result := r.db.WithContext(ctx).
		Model(cinema).
		Select("nome", "endereco_logradouro", "endereco_numero", "updated_at").
		Updates(cinema)

	if result.Error != nil {
		r.log.Error("Failed to update cinema",
			zap.Error(result.Error),
			zap.Uint("cinema_id", cinema.ID),
		)
		return fmt.Errorf("update cinema %d: %w", cinema.ID, translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update cinema %d: %w", cinema.ID, ErrNotFound)
	}

	return nil
}

func (r *cinemaRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Cinema{}, id)
	if result.Error != nil {
		r.log.Error("Failed to delete cinema",
			zap.Error(result.Error),
			zap.Uint("cinema_id", id),
		)
		return fmt.Errorf("delete cinema %d: %w", id, translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete cinema %d: %w", id, ErrNotFound)
	}

	r.log.Info("Cinema deleted", zap.Uint("cinema_id", id))
	return nil
}
