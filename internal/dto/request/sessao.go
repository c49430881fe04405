package request

import (
	"filmes-api/internal/data/entity"
	"filmes-api/pkg/utils"
)

type CreateSessaoDto struct {
	FilmeID  uint `json:"filmeId"`
	CinemaID uint `json:"cinemaId"`
}

func (d *CreateSessaoDto) Validate() map[string]string {
	errs := utils.FieldErrors{}
	errs.Check("filmeId", d.FilmeID, "required", "O filme é obrigatório")
	errs.Check("cinemaId", d.CinemaID, "required", "O cinema é obrigatório")
	return errs.Err()
}

func (d *CreateSessaoDto) ToEntity() *entity.Sessao {
	return &entity.Sessao{
		FilmeID:  d.FilmeID,
		CinemaID: d.CinemaID,
	}
}
