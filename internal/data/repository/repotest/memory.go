// Package repotest provides an in-memory Repository for tests that should not
// need a running database. It emulates the store-side behaviour the services
// depend on: id assignment, foreign keys, duplicate keys and cascading deletes.
package repotest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"filmes-api/internal/data/entity"
	"filmes-api/internal/data/repository"
)

type sessaoKey struct {
	filmeID  uint
	cinemaID uint
}

type Store struct {
	mu         sync.Mutex
	filmes     map[uint]entity.Filme
	cinemas    map[uint]entity.Cinema
	sessoes    map[sessaoKey]entity.Sessao
	nextFilme  uint
	nextCinema uint
	failure    error
}

// NewRepository returns a Repository backed by a fresh Store.
func NewRepository() (*repository.Repository, *Store) {
	s := &Store{
		filmes:  map[uint]entity.Filme{},
		cinemas: map[uint]entity.Cinema{},
		sessoes: map[sessaoKey]entity.Sessao{},
	}
	return &repository.Repository{
		Filme:  &filmeRepo{s},
		Cinema: &cinemaRepo{s},
		Sessao: &sessaoRepo{s},
	}, s
}

// FailWith makes every following call return err. Pass nil to recover.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = err
}

// FilmeCount reports how many filmes are stored.
func (s *Store) FilmeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.filmes)
}

func (s *Store) sessoesWhere(match func(entity.Sessao) bool) []entity.Sessao {
	out := []entity.Sessao{}
	for _, sessao := range s.sessoes {
		if match(sessao) {
			out = append(out, sessao)
		}
	}
	sortSessoes(out)
	return out
}

func sortSessoes(sessoes []entity.Sessao) {
	sort.Slice(sessoes, func(i, j int) bool {
		if sessoes[i].FilmeID != sessoes[j].FilmeID {
			return sessoes[i].FilmeID < sessoes[j].FilmeID
		}
		return sessoes[i].CinemaID < sessoes[j].CinemaID
	})
}

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) || limit <= 0 {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// ==================== FILME ====================

type filmeRepo struct{ s *Store }

func (r *filmeRepo) Create(_ context.Context, filme *entity.Filme) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failure != nil {
		return r.s.failure
	}

	r.s.nextFilme++
	now := time.Now()
	filme.ID = r.s.nextFilme
	filme.CreatedAt, filme.UpdatedAt = now, now

	stored := *filme
	stored.Sessoes = nil
	r.s.filmes[filme.ID] = stored
	return nil
}

func (r *filmeRepo) FindByID(_ context.Context, id uint) (*entity.Filme, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failure != nil {
		return nil, r.s.failure
	}

	filme, ok := r.s.filmes[id]
	if !ok {
		return nil, nil
	}
	filme.Sessoes = r.s.sessoesWhere(func(s entity.Sessao) bool { return s.FilmeID == id })
	return &filme, nil
}

func (r *filmeRepo) FindAll(_ context.Context, offset, limit int, nomeCinema *string) ([]*entity.Filme, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failure != nil {
		return nil, r.s.failure
	}

	ids := make([]uint, 0, len(r.s.filmes))
	for id := range r.s.filmes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	matched := []*entity.Filme{}
	for _, id := range ids {
		filme := r.s.filmes[id]
		filme.Sessoes = r.s.sessoesWhere(func(s entity.Sessao) bool { return s.FilmeID == id })
		if nomeCinema != nil && !r.exibidoEm(filme.Sessoes, *nomeCinema) {
			continue
		}
		matched = append(matched, &filme)
	}
	return page(matched, offset, limit), nil
}

func (r *filmeRepo) exibidoEm(sessoes []entity.Sessao, nome string) bool {
	for _, sessao := range sessoes {
		if cinema, ok := r.s.cinemas[sessao.CinemaID]; ok && cinema.Nome == nome {
			return true
		}
	}
	return false
}

func (r *filmeRepo) Update(_ context.Context, filme *entity.Filme) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failure != nil {
		return r.s.failure
	}

	stored, ok := r.s.filmes[filme.ID]
	if !ok {
		return fmt.Errorf("update filme %d: %w", filme.ID, repository.ErrNotFound)
	}
	stored.Titulo = filme.Titulo
	stored.Genero = filme.Genero
	stored.Duracao = filme.Duracao
	stored.UpdatedAt = time.Now()
	r.s.filmes[filme.ID] = stored
	return nil
}

func (r *filmeRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failure != nil {
		return r.s.failure
	}

	if _, ok := r.s.filmes[id]; !ok {
		return fmt.Errorf("delete filme %d: %w", id, repository.ErrNotFound)
	}
	delete(r.s.filmes, id)
	for key := range r.s.sessoes {
		if key.filmeID == id {
			delete(r.s.sessoes, key)
		}
	}
	return nil
}

// ==================== CINEMA ====================

type cinemaRepo struct{ s *Store }

func (r *cinemaRepo) Create(_ context.Context, cinema *entity.Cinema) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failure != nil {
		return r.s.failure
	}

	r.s.nextCinema++
	now := time.Now()
	cinema.ID = r.s.nextCinema
	cinema.CreatedAt, cinema.UpdatedAt = now, now

	stored := *cinema
	stored.Sessoes = nil
	r.s.cinemas[cinema.ID] = stored
	return nil
}

func (r *cinemaRepo) FindByID(_ context.Context, id uint) (*entity.Cinema, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failure != nil {
		return nil, r.s.failure
	}

	cinema, ok := r.s.cinemas[id]
	if !ok {
		return nil, nil
	}
	cinema.Sessoes = r.s.sessoesWhere(func(s entity.Sessao) bool { return s.CinemaID == id })
	return &cinema, nil
}

func (r *cinemaRepo) FindAll(_ context.Context, offset, limit int) ([]*entity.Cinema, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failure != nil {
		return nil, r.s.failure
	}

	ids := make([]uint, 0, len(r.s.cinemas))
	for id := range r.s.cinemas {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	all := make([]*entity.Cinema, 0, len(ids))
	for _, id := range ids {
		cinema := r.s.cinemas[id]
		cinema.Sessoes = r.s.sessoesWhere(func(s entity.Sessao) bool { return s.CinemaID == id })
		all = append(all, &cinema)
	}
	return page(all, offset, limit), nil
}

func (r *cinemaRepo) Update(_ context.Context, cinema *entity.Cinema) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failure != nil {
		return r.s.failure
	}

	stored, ok := r.s.cinemas[cinema.ID]
	if !ok {
		return fmt.Errorf("update cinema %d: %w", cinema.ID, repository.ErrNotFound)
	}
	stored.Nome = cinema.Nome
	stored.Endereco = cinema.Endereco
	stored.UpdatedAt = time.Now()
	r.s.cinemas[cinema.ID] = stored
	return nil
}

func (r *cinemaRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failure != nil {
		return r.s.failure
	}

	if _, ok := r.s.cinemas[id]; !ok {
		return fmt.Errorf("delete cinema %d: %w", id, repository.ErrNotFound)
	}
	delete(r.s.cinemas, id)
	for key := range r.s.sessoes {
		if key.cinemaID == id {
			delete(r.s.sessoes, key)
		}
	}
	return nil
}

// ==================== SESSAO ====================

type sessaoRepo struct{ s *Store }

func (r *sessaoRepo) Create(_ context.Context, sessao *entity.Sessao) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failure != nil {
		return r.s.failure
	}

	_, filmeOK := r.s.filmes[sessao.FilmeID]
	_, cinemaOK := r.s.cinemas[sessao.CinemaID]
	if !filmeOK || !cinemaOK {
		return fmt.Errorf("create sessao: %w", repository.ErrForeignKey)
	}

	key := sessaoKey{sessao.FilmeID, sessao.CinemaID}
	if _, exists := r.s.sessoes[key]; exists {
		return fmt.Errorf("create sessao: %w", repository.ErrDuplicate)
	}

	sessao.CreatedAt = time.Now()
	r.s.sessoes[key] = *sessao
	return nil
}

func (r *sessaoRepo) FindByID(_ context.Context, filmeID, cinemaID uint) (*entity.Sessao, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failure != nil {
		return nil, r.s.failure
	}

	sessao, ok := r.s.sessoes[sessaoKey{filmeID, cinemaID}]
	if !ok {
		return nil, nil
	}
	return &sessao, nil
}

func (r *sessaoRepo) FindAll(_ context.Context, offset, limit int) ([]*entity.Sessao, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failure != nil {
		return nil, r.s.failure
	}

	sessoes := r.s.sessoesWhere(func(entity.Sessao) bool { return true })
	all := make([]*entity.Sessao, len(sessoes))
	for i := range sessoes {
		all[i] = &sessoes[i]
	}
	return page(all, offset, limit), nil
}

func (r *sessaoRepo) Delete(_ context.Context, filmeID, cinemaID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failure != nil {
		return r.s.failure
	}

	key := sessaoKey{filmeID, cinemaID}
	if _, ok := r.s.sessoes[key]; !ok {
		return fmt.Errorf("delete sessao %d/%d: %w", filmeID, cinemaID, repository.ErrNotFound)
	}
	delete(r.s.sessoes, key)
	return nil
}
