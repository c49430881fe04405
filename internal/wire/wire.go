package wire

import (
	"net/http"
	"strings"

	"filmes-api/internal/adaptor"
	"filmes-api/internal/data/repository"
	"filmes-api/internal/usecase"
	"filmes-api/pkg/cache"
	"filmes-api/pkg/middleware"
	"filmes-api/pkg/queue"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP entry point.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes on top of repo.
func Wiring(repo *repository.Repository, c cache.Cache, events queue.Publisher, logger *zap.Logger) *App {
	service := usecase.NewService(repo, c, events, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, logger),
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireFilme(r, handler.Filme)
	wireCinema(r, handler.Cinema)
	wireSessao(r, handler.Sessao)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}

// mountResource serves routes under /name and /Name.
func mountResource(r chi.Router, name string, routes func(chi.Router)) {
	r.Route("/"+name, routes)
	r.Route("/"+strings.ToUpper(name[:1])+name[1:], routes)
}
