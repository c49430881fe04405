package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"filmes-api/internal/data/entity"
	"filmes-api/pkg/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// containsAll matches when every " && " separated fragment of the expected
// query occurs in the executed one. A fragment prefixed with "!" must not occur.
var containsAll = sqlmock.QueryMatcherFunc(func(expected, actual string) error {
	for _, fragment := range strings.Split(expected, " && ") {
		if absent, ok := strings.CutPrefix(fragment, "!"); ok {
			if strings.Contains(actual, absent) {
				return fmt.Errorf("query %q must not contain %q", actual, absent)
			}
			continue
		}
		if !strings.Contains(actual, fragment) {
			return fmt.Errorf("query %q does not contain %q", actual, fragment)
		}
	}
	return nil
})

func query(fragments ...string) string {
	return strings.Join(fragments, " && ")
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(containsAll))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := database.OpenGorm(sqlDB, zap.NewNop(), false)
	require.NoError(t, err)

	t.Cleanup(func() { assert.NoError(t, mock.ExpectationsWereMet()) })
	return db, mock
}

// explainQueries returns a dry-run session and the statements it renders,
// with arguments inlined.
func explainQueries(t *testing.T, db *gorm.DB) (*gorm.DB, *[]string) {
	t.Helper()

	var rendered []string
	err := db.Callback().Query().After("gorm:query").Register("test:explain", func(tx *gorm.DB) {
		rendered = append(rendered, tx.Dialector.Explain(tx.Statement.SQL.String(), tx.Statement.Vars...))
	})
	require.NoError(t, err)

	return db.Session(&gorm.Session{DryRun: true}), &rendered
}

var (
	filmeColumns  = []string{"id", "created_at", "updated_at", "titulo", "genero", "duracao"}
	cinemaColumns = []string{"id", "created_at", "updated_at", "nome", "endereco_logradouro", "endereco_numero"}
	sessaoColumns = []string{"filme_id", "cinema_id", "created_at"}
)

// ==================== FILME ====================

func TestFilmeRepository_CreateReturnsID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFilmeRepository(db, zap.NewNop())

	mock.ExpectQuery(query(`INSERT INTO "filmes"`, `"titulo"`, `"genero"`, `"duracao"`, `RETURNING "id"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	filme := &entity.Filme{Titulo: "Matrix", Genero: "Ficção", Duracao: 136}
	require.NoError(t, repo.Create(context.Background(), filme))
	assert.Equal(t, uint(7), filme.ID)
}

func TestFilmeRepository_FindByIDPreloadsSessoes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFilmeRepository(db, zap.NewNop())
	now := time.Now()

	mock.ExpectQuery(query(`SELECT * FROM "filmes"`, `"filmes"."id" = $1`)).
		WillReturnRows(sqlmock.NewRows(filmeColumns).AddRow(7, now, now, "Matrix", "Ficção", 136))
	mock.ExpectQuery(query(`SELECT * FROM "sessoes"`, `"sessoes"."filme_id" = $1`, `ORDER BY filme_id, cinema_id`)).
		WillReturnRows(sqlmock.NewRows(sessaoColumns).AddRow(7, 1, now).AddRow(7, 3, now))

	filme, err := repo.FindByID(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, filme)
	assert.Equal(t, "Matrix", filme.Titulo)
	require.Len(t, filme.Sessoes, 2)
	assert.Equal(t, uint(3), filme.Sessoes[1].CinemaID)
}

func TestFilmeRepository_FindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFilmeRepository(db, zap.NewNop())

	mock.ExpectQuery(query(`SELECT * FROM "filmes"`)).
		WillReturnRows(sqlmock.NewRows(filmeColumns))

	filme, err := repo.FindByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, filme)
}

func TestFilmeRepository_FindByIDStoreError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFilmeRepository(db, zap.NewNop())
	reset := errors.New("connection reset by peer")

	mock.ExpectQuery(query(`SELECT * FROM "filmes"`)).WillReturnError(reset)

	_, err := repo.FindByID(context.Background(), 1)
	assert.ErrorIs(t, err, reset)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFilmeRepository_FindAllFiltersBeforePaging(t *testing.T) {
	db, _ := newMockDB(t)
	dry, rendered := explainQueries(t, db)
	repo := NewFilmeRepository(dry, zap.NewNop())

	nome := "Cine"
	_, err := repo.FindAll(context.Background(), 1, 2, &nome)
	require.NoError(t, err)

	require.NotEmpty(t, *rendered)
	assert.Equal(t,
		`SELECT * FROM "filmes" WHERE EXISTS (SELECT 1 FROM "sessoes" JOIN cinemas ON cinemas.id = sessoes.cinema_id `+
			`WHERE sessoes.filme_id = filmes.id AND cinemas.nome = 'Cine') ORDER BY filmes.id LIMIT 2 OFFSET 1`,
		(*rendered)[0],
	)
}

func TestFilmeRepository_FindAllWithoutFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFilmeRepository(db, zap.NewNop())
	now := time.Now()

	mock.ExpectQuery(query(`SELECT * FROM "filmes"`, `ORDER BY filmes.id`, `!EXISTS`)).
		WillReturnRows(sqlmock.NewRows(filmeColumns).
			AddRow(1, now, now, "A", "Drama", 90).
			AddRow(2, now, now, "B", "Drama", 95))
	mock.ExpectQuery(query(`SELECT * FROM "sessoes"`, `"sessoes"."filme_id" IN ($1,$2)`)).
		WillReturnRows(sqlmock.NewRows(sessaoColumns))

	filmes, err := repo.FindAll(context.Background(), 0, 50, nil)
	require.NoError(t, err)
	require.Len(t, filmes, 2)
	assert.Equal(t, uint(1), filmes[0].ID)
}

func TestFilmeRepository_FindAllEmptyPageSkipsStore(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewFilmeRepository(db, zap.NewNop())

	filmes, err := repo.FindAll(context.Background(), 0, 0, nil)
	require.NoError(t, err)
	assert.NotNil(t, filmes)
	assert.Empty(t, filmes)
}

func TestFilmeRepository_UpdateWritesMutableColumnsOnly(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFilmeRepository(db, zap.NewNop())

	mock.ExpectExec(query(`UPDATE "filmes" SET`, `"titulo"=`, `"genero"=`, `"duracao"=`, `"updated_at"=`, `!"created_at"`, `"id" = `)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	filme := &entity.Filme{Base: entity.Base{ID: 7}, Titulo: "Matrix", Genero: "Ação", Duracao: 136}
	require.NoError(t, repo.Update(context.Background(), filme))
}

func TestFilmeRepository_UpdateMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFilmeRepository(db, zap.NewNop())

	mock.ExpectExec(query(`UPDATE "filmes" SET`)).WillReturnResult(sqlmock.NewResult(0, 0))

	filme := &entity.Filme{Base: entity.Base{ID: 7}, Titulo: "Matrix", Genero: "Ação", Duracao: 136}
	assert.ErrorIs(t, repo.Update(context.Background(), filme), ErrNotFound)
}

func TestFilmeRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFilmeRepository(db, zap.NewNop())

	mock.ExpectExec(query(`DELETE FROM "filmes"`, `"filmes"."id" = $1`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(query(`DELETE FROM "filmes"`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 7))
	assert.ErrorIs(t, repo.Delete(context.Background(), 7), ErrNotFound)
}

// ==================== CINEMA ====================

func TestCinemaRepository_CreateStoresEmbeddedEndereco(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCinemaRepository(db, zap.NewNop())

	mock.ExpectQuery(query(`INSERT INTO "cinemas"`, `"nome"`, `"endereco_logradouro"`, `"endereco_numero"`, `RETURNING "id"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	cinema := &entity.Cinema{Nome: "Cine Odeon", Endereco: entity.Endereco{Logradouro: "Cinelândia", Numero: 7}}
	require.NoError(t, repo.Create(context.Background(), cinema))
	assert.Equal(t, uint(3), cinema.ID)
}

func TestCinemaRepository_FindAllOrdersByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCinemaRepository(db, zap.NewNop())
	now := time.Now()

	mock.ExpectQuery(query(`SELECT * FROM "cinemas"`, `ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows(cinemaColumns).AddRow(3, now, now, "Cine Odeon", "Cinelândia", 7))
	mock.ExpectQuery(query(`SELECT * FROM "sessoes"`, `"sessoes"."cinema_id" = $1`)).
		WillReturnRows(sqlmock.NewRows(sessaoColumns).AddRow(5, 3, now))

	cinemas, err := repo.FindAll(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, cinemas, 1)
	assert.Equal(t, entity.Endereco{Logradouro: "Cinelândia", Numero: 7}, cinemas[0].Endereco)
	require.Len(t, cinemas[0].Sessoes, 1)
	assert.Equal(t, uint(5), cinemas[0].Sessoes[0].FilmeID)
}

func TestCinemaRepository_UpdateWritesMutableColumnsOnly(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCinemaRepository(db, zap.NewNop())

	mock.ExpectExec(query(`UPDATE "cinemas" SET`, `"nome"=`, `"endereco_logradouro"=`, `"endereco_numero"=`, `"updated_at"=`, `!"created_at"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(query(`UPDATE "cinemas" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	cinema := &entity.Cinema{Base: entity.Base{ID: 3}, Nome: "Cine Odeon"}
	require.NoError(t, repo.Update(context.Background(), cinema))
	assert.ErrorIs(t, repo.Update(context.Background(), cinema), ErrNotFound)
}

func TestCinemaRepository_DeleteMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCinemaRepository(db, zap.NewNop())

	mock.ExpectExec(query(`DELETE FROM "cinemas"`)).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 3), ErrNotFound)
}

// ==================== SESSAO ====================

func TestSessaoRepository_CreateTranslatesConstraintErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
		want error
	}{
		{"foreign key violation", "23503", ErrForeignKey},
		{"unique violation", "23505", ErrDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewSessaoRepository(db, zap.NewNop())

			mock.ExpectExec(query(`INSERT INTO "sessoes"`, `"filme_id"`, `"cinema_id"`)).
				WillReturnError(&pgconn.PgError{Code: tt.code})

			err := repo.Create(context.Background(), &entity.Sessao{FilmeID: 1, CinemaID: 2})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSessaoRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessaoRepository(db, zap.NewNop())

	mock.ExpectExec(query(`INSERT INTO "sessoes"`)).WillReturnResult(sqlmock.NewResult(0, 1))

	sessao := &entity.Sessao{FilmeID: 1, CinemaID: 2}
	require.NoError(t, repo.Create(context.Background(), sessao))
	assert.False(t, sessao.CreatedAt.IsZero())
}

func TestSessaoRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessaoRepository(db, zap.NewNop())

	mock.ExpectQuery(query(`SELECT * FROM "sessoes"`, `filme_id = $1 AND cinema_id = $2`)).
		WillReturnRows(sqlmock.NewRows(sessaoColumns))

	sessao, err := repo.FindByID(context.Background(), 1, 2)
	assert.NoError(t, err)
	assert.Nil(t, sessao)
}

func TestSessaoRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessaoRepository(db, zap.NewNop())

	mock.ExpectExec(query(`DELETE FROM "sessoes"`, `filme_id = $1 AND cinema_id = $2`)).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), 1, 2), ErrNotFound)
}

// ==================== SCHEMA ====================

func TestSessoesCascadeWithParents(t *testing.T) {
	cache := &sync.Map{}

	for _, model := range []any{&entity.Filme{}, &entity.Cinema{}} {
		s, err := schema.Parse(model, cache, schema.NamingStrategy{})
		require.NoError(t, err)

		rel, ok := s.Relationships.Relations["Sessoes"]
		require.True(t, ok, s.Name)
		constraint := rel.ParseConstraint()
		require.NotNil(t, constraint, s.Name)
		assert.Equal(t, "CASCADE", constraint.OnDelete, s.Name)
		assert.Equal(t, "sessoes", constraint.Schema.Table, s.Name)
	}
}
