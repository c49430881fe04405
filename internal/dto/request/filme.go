package request

import (
	"strings"

	"filmes-api/internal/data/entity"
	"filmes-api/internal/patch"
	"filmes-api/pkg/utils"
)

const (
	msgTituloObrigatorio = "O título é obrigatorio"
	msgGeneroObrigatorio = "O gênero é obrigatorio"
	msgGeneroTamanho     = "O tamanho gênero não pode exceder 50 caracteres"
	msgDuracaoIntervalo  = "A duração deve ter entre 70 e 600min"
)

type CreateFilmeDto struct {
	Titulo  string `json:"titulo"`
	Genero  string `json:"genero"`
	Duracao int    `json:"duracao"`
}

type UpdateFilmeDto struct {
	Titulo  string `json:"titulo"`
	Genero  string `json:"genero"`
	Duracao int    `json:"duracao"`
}

func (d *CreateFilmeDto) Validate() map[string]string {
	return validateFilme(d.Titulo, d.Genero, d.Duracao)
}

func (d *CreateFilmeDto) ToEntity() *entity.Filme {
	return &entity.Filme{
		Titulo:  d.Titulo,
		Genero:  d.Genero,
		Duracao: d.Duracao,
	}
}

func (d *UpdateFilmeDto) Validate() map[string]string {
	return validateFilme(d.Titulo, d.Genero, d.Duracao)
}

// ApplyTo overwrites every mutable field of filme. The id is never touched.
func (d *UpdateFilmeDto) ApplyTo(filme *entity.Filme) {
	filme.Titulo = d.Titulo
	filme.Genero = d.Genero
	filme.Duracao = d.Duracao
}

func (d *UpdateFilmeDto) PatchFields() patch.Fields {
	return patch.Fields{
		"/titulo":  patch.String(&d.Titulo),
		"/genero":  patch.String(&d.Genero),
		"/duracao": patch.Int(&d.Duracao),
	}
}

// FilmeToUpdateDto snapshots the mutable fields of filme for patching.
func FilmeToUpdateDto(filme *entity.Filme) UpdateFilmeDto {
	return UpdateFilmeDto{
		Titulo:  filme.Titulo,
		Genero:  filme.Genero,
		Duracao: filme.Duracao,
	}
}

func validateFilme(titulo, genero string, duracao int) map[string]string {
	errs := utils.FieldErrors{}
	errs.Check("titulo", strings.TrimSpace(titulo), "required", msgTituloObrigatorio)
	errs.Check("genero", strings.TrimSpace(genero), "required", msgGeneroObrigatorio)
	errs.Check("genero", genero, "max=50", msgGeneroTamanho)
	errs.Check("duracao", duracao, "min=70,max=600", msgDuracaoIntervalo)
	return errs.Err()
}
