package request

import (
	"strings"

	"filmes-api/internal/data/entity"
	"filmes-api/internal/patch"
	"filmes-api/pkg/utils"
)

const msgNomeObrigatorio = "O campo de erro é obrigatório!"

type EnderecoDto struct {
	Logradouro string `json:"logradouro"`
	Numero     int    `json:"numero"`
}

type CreateCinemaDto struct {
	Nome     string      `json:"nome"`
	Endereco EnderecoDto `json:"endereco"`
}

type UpdateCinemaDto struct {
	Nome     string      `json:"nome"`
	Endereco EnderecoDto `json:"endereco"`
}

func (d *CreateCinemaDto) Validate() map[string]string {
	return validateCinema(d.Nome)
}

func (d *CreateCinemaDto) ToEntity() *entity.Cinema {
	return &entity.Cinema{
		Nome:     d.Nome,
		Endereco: d.Endereco.toEntity(),
	}
}

func (d *UpdateCinemaDto) Validate() map[string]string {
	return validateCinema(d.Nome)
}

func (d *UpdateCinemaDto) ApplyTo(cinema *entity.Cinema) {
	cinema.Nome = d.Nome
	cinema.Endereco = d.Endereco.toEntity()
}

func (d *UpdateCinemaDto) PatchFields() patch.Fields {
	return patch.Fields{
		"/nome":                patch.String(&d.Nome),
		"/endereco":            patch.Value(&d.Endereco),
		"/endereco/logradouro": patch.String(&d.Endereco.Logradouro),
		"/endereco/numero":     patch.Int(&d.Endereco.Numero),
	}
}

func CinemaToUpdateDto(cinema *entity.Cinema) UpdateCinemaDto {
	return UpdateCinemaDto{
		Nome: cinema.Nome,
		Endereco: EnderecoDto{
			Logradouro: cinema.Endereco.Logradouro,
			Numero:     cinema.Endereco.Numero,
		},
	}
}

func (d EnderecoDto) toEntity() entity.Endereco {
	return entity.Endereco{
		Logradouro: d.Logradouro,
		Numero:     d.Numero,
	}
}

func validateCinema(nome string) map[string]string {
	errs := utils.FieldErrors{}
	errs.Check("nome", strings.TrimSpace(nome), "required", msgNomeObrigatorio)
	return errs.Err()
}
