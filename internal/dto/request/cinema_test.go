package request

import (
	"testing"

	"filmes-api/internal/patch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCinemaDto_Validate(t *testing.T) {
	valid := CreateCinemaDto{Nome: "Cine Belas Artes", Endereco: EnderecoDto{"Rua da Consolação", 2423}}
	assert.Nil(t, valid.Validate())

	missing := CreateCinemaDto{Nome: " "}
	assert.Equal(t, map[string]string{"nome": "O campo de erro é obrigatório!"}, missing.Validate())

	noEndereco := CreateCinemaDto{Nome: "Cine", Endereco: EnderecoDto{Numero: -1}}
	assert.Nil(t, noEndereco.Validate())
}

func TestUpdateCinemaDto_PatchNestedEndereco(t *testing.T) {
	dto := UpdateCinemaDto{Nome: "Cine", Endereco: EnderecoDto{"Rua A", 10}}

	doc := patch.Document{
		{Op: "replace", Path: "/endereco/logradouro", Value: []byte(`"Rua B"`)},
		{Op: "remove", Path: "/endereco/numero"},
	}
	require.NoError(t, doc.Apply(&dto))

	assert.Equal(t, "Rua B", dto.Endereco.Logradouro)
	assert.Equal(t, 0, dto.Endereco.Numero)
	assert.Nil(t, dto.Validate())
}

func TestUpdateCinemaDto_PatchWholeEndereco(t *testing.T) {
	dto := UpdateCinemaDto{Nome: "Cine", Endereco: EnderecoDto{"Rua A", 10}}

	doc := patch.Document{
		{Op: "test", Path: "/endereco", Value: []byte(`{"logradouro":"Rua A","numero":10}`)},
		{Op: "replace", Path: "/Endereco", Value: []byte(`{"logradouro":"Rua B"}`)},
	}
	require.NoError(t, doc.Apply(&dto))
	assert.Equal(t, EnderecoDto{Logradouro: "Rua B"}, dto.Endereco)

	bad := patch.Document{{Op: "replace", Path: "/endereco", Value: []byte(`"Rua C"`)}}
	err := bad.Apply(&dto)
	assert.ErrorIs(t, err, patch.ErrInvalidValue)
	assert.Equal(t, EnderecoDto{Logradouro: "Rua B"}, dto.Endereco)

	require.NoError(t, patch.Document{{Op: "remove", Path: "/endereco"}}.Apply(&dto))
	assert.Equal(t, EnderecoDto{}, dto.Endereco)
}

func TestCreateSessaoDto_Validate(t *testing.T) {
	assert.Nil(t, (&CreateSessaoDto{FilmeID: 1, CinemaID: 2}).Validate())

	errs := (&CreateSessaoDto{}).Validate()
	assert.Contains(t, errs, "filmeId")
	assert.Contains(t, errs, "cinemaId")
}
