package wire

import (
	"filmes-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCinema(r chi.Router, cinemaHandler *adaptor.CinemaHandler) {
	mountResource(r, "cinema", func(r chi.Router) {
		r.Post("/", cinemaHandler.CreateCinema)
		r.Get("/", cinemaHandler.GetCinemas)
		r.Get("/{id}", cinemaHandler.GetCinemaByID)
		r.Put("/{id}", cinemaHandler.UpdateCinema)
		r.Patch("/{id}", cinemaHandler.PatchCinema)
		r.Delete("/{id}", cinemaHandler.DeleteCinema)
	})
}
