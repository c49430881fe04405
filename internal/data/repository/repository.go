package repository

import (
	"context"
	"fmt"

	"filmes-api/internal/data/entity"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Repository struct {
	Filme  FilmeRepository
	Cinema CinemaRepository
	Sessao SessaoRepository
}

func NewRepository(db *gorm.DB, log *zap.Logger) *Repository {
	return &Repository{
		Filme:  NewFilmeRepository(db, log),
		Cinema: NewCinemaRepository(db, log),
		Sessao: NewSessaoRepository(db, log),
	}
}

// AutoMigrate creates or updates the tables backing every entity.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&entity.Filme{},
		&entity.Cinema{},
		&entity.Sessao{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
