package entity

type Filme struct {
	Base
	Titulo  string   `gorm:"not null"`
	Genero  string   `gorm:"size:50;not null"`
	Duracao int      `gorm:"not null"`
	Sessoes []Sessao `gorm:"foreignKey:FilmeID;constraint:OnDelete:CASCADE"`
}
