package response

import (
	"time"

	"filmes-api/internal/data/entity"
)

type ReadFilmeDto struct {
	ID             uint            `json:"id"`
	Titulo         string          `json:"titulo"`
	Genero         string          `json:"genero"`
	Duracao        int             `json:"duracao"`
	HoraDaConsulta time.Time       `json:"horaDaConsulta"`
	Sessoes        []ReadSessaoDto `json:"sessoes"`
}

// FilmeToResponse maps filme to its read shape; consultadoEm is the read time.
func FilmeToResponse(filme *entity.Filme, consultadoEm time.Time) ReadFilmeDto {
	return ReadFilmeDto{
		ID:             filme.ID,
		Titulo:         filme.Titulo,
		Genero:         filme.Genero,
		Duracao:        filme.Duracao,
		HoraDaConsulta: consultadoEm,
		Sessoes:        SessoesToResponse(filme.Sessoes),
	}
}
