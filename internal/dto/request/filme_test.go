package request

import (
	"strings"
	"testing"

	"filmes-api/internal/data/entity"
	"filmes-api/internal/patch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFilmeDto_Validate(t *testing.T) {
	tests := []struct {
		name   string
		dto    CreateFilmeDto
		fields []string
	}{
		{"valid", CreateFilmeDto{"Matrix", "Ficção", 136}, nil},
		{"lower bound", CreateFilmeDto{"Curta", "Drama", 70}, nil},
		{"upper bound", CreateFilmeDto{"Longo", "Drama", 600}, nil},
		{"empty titulo", CreateFilmeDto{"", "Drama", 100}, []string{"titulo"}},
		{"blank titulo", CreateFilmeDto{"   ", "Drama", 100}, []string{"titulo"}},
		{"empty genero", CreateFilmeDto{"Matrix", "", 100}, []string{"genero"}},
		{"genero too long", CreateFilmeDto{"Matrix", strings.Repeat("g", 51), 100}, []string{"genero"}},
		{"duracao too short", CreateFilmeDto{"Matrix", "Drama", 69}, []string{"duracao"}},
		{"duracao too long", CreateFilmeDto{"Matrix", "Drama", 601}, []string{"duracao"}},
		{"everything missing", CreateFilmeDto{}, []string{"titulo", "genero", "duracao"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.dto.Validate()
			if tt.fields == nil {
				assert.Nil(t, errs)
				return
			}
			assert.Len(t, errs, len(tt.fields))
			for _, field := range tt.fields {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestCreateFilmeDto_Messages(t *testing.T) {
	errs := (&CreateFilmeDto{Genero: strings.Repeat("ç", 51), Duracao: 20}).Validate()

	assert.Equal(t, "O título é obrigatorio", errs["titulo"])
	assert.Equal(t, "O tamanho gênero não pode exceder 50 caracteres", errs["genero"])
	assert.Equal(t, "A duração deve ter entre 70 e 600min", errs["duracao"])
}

func TestGeneroLimitCountsCharacters(t *testing.T) {
	dto := CreateFilmeDto{Titulo: "Filme", Genero: strings.Repeat("é", 50), Duracao: 90}
	assert.Nil(t, dto.Validate())
}

func TestUpdateFilmeDto_PatchRoundTrip(t *testing.T) {
	filme := &entity.Filme{Base: entity.Base{ID: 7}, Titulo: "Matrix", Genero: "Ação", Duracao: 136}
	snapshot := FilmeToUpdateDto(filme)

	doc := patch.Document{
		{Op: "replace", Path: "/Titulo", Value: []byte(`"Matrix Reloaded"`)},
		{Op: "replace", Path: "/duracao", Value: []byte(`138`)},
	}
	require.NoError(t, doc.Apply(&snapshot))
	require.Nil(t, snapshot.Validate())

	snapshot.ApplyTo(filme)
	assert.Equal(t, uint(7), filme.ID)
	assert.Equal(t, "Matrix Reloaded", filme.Titulo)
	assert.Equal(t, "Ação", filme.Genero)
	assert.Equal(t, 138, filme.Duracao)
}
