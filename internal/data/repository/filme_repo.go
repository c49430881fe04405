package repository

import (
	"context"
	"errors"
	"fmt"

	"filmes-api/internal/data/entity"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type FilmeRepository interface {
	Create(ctx context.Context, filme *entity.Filme) error
	FindByID(ctx context.Context, id uint) (*entity.Filme, error)
	FindAll(ctx context.Context, offset, limit int, nomeCinema *string) ([]*entity.Filme, error)
	Update(ctx context.Context, filme *entity.Filme) error
	Delete(ctx context.Context, id uint) error
}

type filmeRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewFilmeRepository(db *gorm.DB, log *zap.Logger) FilmeRepository {
	return &filmeRepository{
		db:  db,
		log: log.With(zap.String("repository", "filme")),
	}
}

func (r *filmeRepository) Create(ctx context.Context, filme *entity.Filme) error {
	if err := r.db.WithContext(ctx).Omit("Sessoes").Create(filme).Error; err != nil {
		r.log.Error("Failed to create filme",
			zap.Error(err),
			zap.String("titulo", filme.Titulo),
		)
		return fmt.Errorf("create filme: %w", translate(err))
	}
	return nil
}

// FindByID returns nil, nil when no row matches.
func (r *filmeRepository) FindByID(ctx context.Context, id uint) (*entity.Filme, error) {
	var filme entity.Filme
	err := r.db.WithContext(ctx).
		Preload("Sessoes", orderSessoes).
		First(&filme, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find filme by ID",
			zap.Error(err),
			zap.Uint("filme_id", id),
		)
		return nil, fmt.Errorf("find filme %d: %w", id, translate(err))
	}

	return &filme, nil
}

func (r *filmeRepository) FindAll(ctx context.Context, offset, limit int, nomeCinema *string) ([]*entity.Filme, error) {
	filmes := []*entity.Filme{}
	if limit <= 0 {
		return filmes, nil
	}

	query := r.db.WithContext(ctx).Model(&entity.Filme{}).Preload("Sessoes", orderSessoes)

	if nomeCinema != nil {
		exibidoEm := r.db.Table("sessoes").
			Select("1").
			Joins("JOIN cinemas ON cinemas.id = sessoes.cinema_id").
			Where("sessoes.filme_id = filmes.id AND cinemas.nome = ?", *nomeCinema)
		query = query.Where("EXISTS (?)", exibidoEm)
	}

	err := query.Order("filmes.id").Offset(offset).Limit(limit).Find(&filmes).Error
	if err != nil {
		r.log.Error("Failed to find all filmes",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
			zap.Stringp("nome_cinema", nomeCinema),
		)
		return nil, fmt.Errorf("find filmes: %w", translate(err))
	}

	r.log.Debug("Filmes found",
		zap.Int("count", len(filmes)),
		zap.Int("offset", offset),
		zap.Int("limit", limit),
	)

	return filmes, nil
}

func (r *filmeRepository) Update(ctx context.Context, filme *entity.Filme) error {
	result := r.db.WithContext(ctx).
		Model(filme).
		Select("titulo", "genero", "duracao", "updated_at").
		Updates(filme)

	if result.Error != nil {
		r.log.Error("Failed to update filme",
			zap.Error(result.Error),
			zap.Uint("filme_id", filme.ID),
		)
		return fmt.Errorf("update filme %d: %w", filme.ID, translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update filme %d: %w", filme.ID, ErrNotFound)
	}

	return nil
}

func (r *filmeRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Filme{}, id)
	if result.Error != nil {
		r.log.Error("Failed to delete filme",
			zap.Error(result.Error),
			zap.Uint("filme_id", id),
		)
		return fmt.Errorf("delete filme %d: %w", id, translate(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete filme %d: %w", id, ErrNotFound)
	}

	r.log.Info("Filme deleted", zap.Uint("filme_id", id))
	return nil
}

func orderSessoes(db *gorm.DB) *gorm.DB {
	return db.Order("filme_id, cinema_id")
}
