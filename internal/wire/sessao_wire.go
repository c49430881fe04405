package wire

import (
	"filmes-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSessao(r chi.Router, sessaoHandler *adaptor.SessaoHandler) {
	mountResource(r, "sessao", func(r chi.Router) {
		r.Post("/", sessaoHandler.CreateSessao)
		r.Get("/", sessaoHandler.GetSessoes)

		// A sessao is addressed by the filme/cinema pair it joins.
		r.Get("/{filmeId}/{cinemaId}", sessaoHandler.GetSessao)
		r.Delete("/{filmeId}/{cinemaId}", sessaoHandler.DeleteSessao)
	})
}
