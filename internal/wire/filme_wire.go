package wire

import (
	"filmes-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFilme(r chi.Router, filmeHandler *adaptor.FilmeHandler) {
	mountResource(r, "filme", func(r chi.Router) {
		r.Post("/", filmeHandler.CreateFilme)       // POST /filme
		r.Get("/", filmeHandler.GetFilmes)          // GET /filme?skip=&take=&nomeCinema=
		r.Get("/{id}", filmeHandler.GetFilmeByID)   // GET /filme/{id}
		r.Put("/{id}", filmeHandler.UpdateFilme)    // PUT /filme/{id}
		r.Patch("/{id}", filmeHandler.PatchFilme)   // PATCH /filme/{id}
		r.Delete("/{id}", filmeHandler.DeleteFilme) // DELETE /filme/{id}
	})
}
