package response

import "filmes-api/internal/data/entity"

type ReadEnderecoDto struct {
	Logradouro string `json:"logradouro"`
	Numero     int    `json:"numero"`
}

type ReadCinemaDto struct {
	ID       uint            `json:"id"`
	Nome     string          `json:"nome"`
	Endereco ReadEnderecoDto `json:"endereco"`
	Sessoes  []ReadSessaoDto `json:"sessoes"`
}

func CinemaToResponse(cinema *entity.Cinema) ReadCinemaDto {
	return ReadCinemaDto{
		ID:   cinema.ID,
		Nome: cinema.Nome,
		Endereco: ReadEnderecoDto{
			Logradouro: cinema.Endereco.Logradouro,
			Numero:     cinema.Endereco.Numero,
		},
		Sessoes: SessoesToResponse(cinema.Sessoes),
	}
}
