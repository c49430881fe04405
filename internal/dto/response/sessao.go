package response

import "filmes-api/internal/data/entity"

type ReadSessaoDto struct {
	FilmeID  uint `json:"filmeId"`
	CinemaID uint `json:"cinemaId"`
}

func SessaoToResponse(sessao *entity.Sessao) ReadSessaoDto {
	return ReadSessaoDto{
		FilmeID:  sessao.FilmeID,
		CinemaID: sessao.CinemaID,
	}
}

func SessoesToResponse(sessoes []entity.Sessao) []ReadSessaoDto {
	out := make([]ReadSessaoDto, len(sessoes))
	for i := range sessoes {
		out[i] = SessaoToResponse(&sessoes[i])
	}
	return out
}
