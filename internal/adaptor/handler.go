package adaptor

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"filmes-api/internal/dto/request"
	"filmes-api/internal/usecase"
	"filmes-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Filme  *FilmeHandler
	Cinema *CinemaHandler
	Sessao *SessaoHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Filme:  NewFilmeHandler(service.Filme, log),
		Cinema: NewCinemaHandler(service.Cinema, log),
		Sessao: NewSessaoHandler(service.Sessao, log),
	}
}

// handleServiceError maps use case errors onto HTTP responses.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	var validation *usecase.ValidationError

	switch {
	case errors.As(err, &validation):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", validation.Fields)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, "Resource not found")

	case errors.Is(err, usecase.ErrInvalidReference):
		log.Warn("Invalid reference for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Filme or cinema does not exist", nil)

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - already exists",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, "Resource already exists")

	default:
		log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", map[string]string{"body": err.Error()})
		return false
	}
	return true
}

// pathID reads a positive integer URL parameter, answering 400 when it is not one.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	id, err := utils.ParseID(chi.URLParam(r, name))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid id", map[string]string{name: err.Error()})
		return 0, false
	}
	return id, true
}

func listRequest(w http.ResponseWriter, r *http.Request) (*request.ListRequest, bool) {
	query := r.URL.Query()

	skip, err := utils.ParseQueryInt(query.Get("skip"), 0)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid query parameter", map[string]string{"skip": err.Error()})
		return nil, false
	}
	take, err := utils.ParseQueryInt(query.Get("take"), request.DefaultTake)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid query parameter", map[string]string{"take": err.Error()})
		return nil, false
	}

	return request.NewListRequest(skip, take), true
}

// acceptsPatch reports whether the request carries a patch document media type.
func acceptsPatch(w http.ResponseWriter, r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err == nil && (mediaType == "application/json-patch+json" || mediaType == "application/json") {
		return true
	}
	utils.ResponseUnsupportedMediaType(w, "Content-Type must be application/json-patch+json")
	return false
}
