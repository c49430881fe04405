package adaptor

import (
	"fmt"
	"net/http"

	"filmes-api/internal/dto/request"
	"filmes-api/internal/patch"
	"filmes-api/internal/usecase"
	"filmes-api/pkg/utils"

	"go.uber.org/zap"
)

type CinemaHandler struct {
	service usecase.CinemaService
	log     *zap.Logger
}

func NewCinemaHandler(service usecase.CinemaService, log *zap.Logger) *CinemaHandler {
	return &CinemaHandler{
		service: service,
		log:     log.With(zap.String("handler", "cinema")),
	}
}

// CreateCinema handles POST /cinema
func (h *CinemaHandler) CreateCinema(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCinemaDto
	if !decodeJSON(w, r, &req) {
		return
	}

	cinema, err := h.service.CreateCinema(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create cinema")
		return
	}

	utils.ResponseCreated(w, fmt.Sprintf("/cinema/%d", cinema.ID), "Cinema created successfully", cinema)
}

// GetCinemas handles GET /cinema?skip=&take=
func (h *CinemaHandler) GetCinemas(w http.ResponseWriter, r *http.Request) {
	req, ok := listRequest(w, r)
	if !ok {
		return
	}

	cinemas, err := h.service.GetCinemas(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get cinemas")
		return
	}

	utils.ResponseSuccess(w, "Cinemas retrieved successfully", cinemas)
}

// GetCinemaByID handles GET /cinema/{id}
func (h *CinemaHandler) GetCinemaByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	cinema, err := h.service.GetCinemaByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get cinema by ID")
		return
	}

	utils.ResponseSuccess(w, "Cinema retrieved successfully", cinema)
}

// UpdateCinema handles PUT /cinema/{id}
func (h *CinemaHandler) UpdateCinema(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateCinemaDto
	if !decodeJSON(w, r, &req) {
		return
	}

	cinema, err := h.service.UpdateCinema(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update cinema")
		return
	}

	utils.ResponseSuccess(w, "Cinema updated successfully", cinema)
}

// PatchCinema handles PATCH /cinema/{id}
func (h *CinemaHandler) PatchCinema(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if !acceptsPatch(w, r) {
		return
	}

	doc, err := patch.Decode(r.Body)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid patch document", map[string]string{"patch": err.Error()})
		return
	}

	cinema, err := h.service.PatchCinema(r.Context(), id, doc)
	if err != nil {
		handleServiceError(h.log, w, err, "patch cinema")
		return
	}

	utils.ResponseSuccess(w, "Cinema updated successfully", cinema)
}

// DeleteCinema handles DELETE /cinema/{id}
func (h *CinemaHandler) DeleteCinema(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteCinema(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete cinema")
		return
	}

	utils.ResponseNoContent(w)
}
