package adaptor

import (
	"fmt"
	"net/http"

	"filmes-api/internal/dto/request"
	"filmes-api/internal/usecase"
	"filmes-api/pkg/utils"

	"go.uber.org/zap"
)

type SessaoHandler struct {
	service usecase.SessaoService
	log     *zap.Logger
}

func NewSessaoHandler(service usecase.SessaoService, log *zap.Logger) *SessaoHandler {
	return &SessaoHandler{
		service: service,
		log:     log.With(zap.String("handler", "sessao")),
	}
}

// CreateSessao handles POST /sessao
func (h *SessaoHandler) CreateSessao(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessaoDto
	if !decodeJSON(w, r, &req) {
		return
	}

	sessao, err := h.service.CreateSessao(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create sessao")
		return
	}

	location := fmt.Sprintf("/sessao/%d/%d", sessao.FilmeID, sessao.CinemaID)
	utils.ResponseCreated(w, location, "Sessao created successfully", sessao)
}

// GetSessoes handles GET /sessao?skip=&take=
func (h *SessaoHandler) GetSessoes(w http.ResponseWriter, r *http.Request) {
	req, ok := listRequest(w, r)
	if !ok {
		return
	}

	sessoes, err := h.service.GetSessoes(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get sessoes")
		return
	}

	utils.ResponseSuccess(w, "Sessoes retrieved successfully", sessoes)
}

// GetSessao handles GET /sessao/{filmeId}/{cinemaId}
func (h *SessaoHandler) GetSessao(w http.ResponseWriter, r *http.Request) {
	filmeID, ok := pathID(w, r, "filmeId")
	if !ok {
		return
	}
	cinemaID, ok := pathID(w, r, "cinemaId")
	if !ok {
		return
	}

	sessao, err := h.service.GetSessao(r.Context(), filmeID, cinemaID)
	if err != nil {
		handleServiceError(h.log, w, err, "get sessao")
		return
	}

	utils.ResponseSuccess(w, "Sessao retrieved successfully", sessao)
}

// DeleteSessao handles DELETE /sessao/{filmeId}/{cinemaId}
func (h *SessaoHandler) DeleteSessao(w http.ResponseWriter, r *http.Request) {
	filmeID, ok := pathID(w, r, "filmeId")
	if !ok {
		return
	}
	cinemaID, ok := pathID(w, r, "cinemaId")
	if !ok {
		return
	}

	if err := h.service.DeleteSessao(r.Context(), filmeID, cinemaID); err != nil {
		handleServiceError(h.log, w, err, "delete sessao")
		return
	}

	utils.ResponseNoContent(w)
}
