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

type FilmeHandler struct {
	service usecase.FilmeService
	log     *zap.Logger
}

func NewFilmeHandler(service usecase.FilmeService, log *zap.Logger) *FilmeHandler {
	return &FilmeHandler{
		service: service,
		log:     log.With(zap.String("handler", "filme")),
	}
}

// CreateFilme handles POST /filme
func (h *FilmeHandler) CreateFilme(w http.ResponseWriter, r *http.Request) {
	var req request.CreateFilmeDto
	if !decodeJSON(w, r, &req) {
		return
	}

	filme, err := h.service.CreateFilme(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create filme")
		return
	}

	utils.ResponseCreated(w, fmt.Sprintf("/filme/%d", filme.ID), "Filme created successfully", filme)
}

// GetFilmes handles GET /filme?skip=&take=&nomeCinema=
func (h *FilmeHandler) GetFilmes(w http.ResponseWriter, r *http.Request) {
	req, ok := listRequest(w, r)
	if !ok {
		return
	}

	// an empty nomeCinema means no filter
	var nomeCinema *string
	if nome := r.URL.Query().Get("nomeCinema"); nome != "" {
		nomeCinema = &nome
	}

	filmes, err := h.service.GetFilmes(r.Context(), req, nomeCinema)
	if err != nil {
		handleServiceError(h.log, w, err, "get filmes")
		return
	}

	utils.ResponseSuccess(w, "Filmes retrieved successfully", filmes)
}

// GetFilmeByID handles GET /filme/{id}
func (h *FilmeHandler) GetFilmeByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	filme, err := h.service.GetFilmeByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get filme by ID")
		return
	}

	utils.ResponseSuccess(w, "Filme retrieved successfully", filme)
}

// UpdateFilme handles PUT /filme/{id}
func (h *FilmeHandler) UpdateFilme(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateFilmeDto
	if !decodeJSON(w, r, &req) {
		return
	}

	filme, err := h.service.UpdateFilme(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update filme")
		return
	}

	utils.ResponseSuccess(w, "Filme updated successfully", filme)
}

// PatchFilme handles PATCH /filme/{id}
func (h *FilmeHandler) PatchFilme(w http.ResponseWriter, r *http.Request) {
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

	filme, err := h.service.PatchFilme(r.Context(), id, doc)
	if err != nil {
		handleServiceError(h.log, w, err, "patch filme")
		return
	}

	utils.ResponseSuccess(w, "Filme updated successfully", filme)
}

// DeleteFilme handles DELETE /filme/{id}
func (h *FilmeHandler) DeleteFilme(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteFilme(r.Context(), id); err != nil {
		handleServiceError(h.log, w, err, "delete filme")
		return
	}

	utils.ResponseNoContent(w)
}
