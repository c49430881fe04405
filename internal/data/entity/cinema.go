package entity

// Endereco is stored inline in the cinemas table.
type Endereco struct {
	Logradouro string
	Numero     int
}

type Cinema struct {
	Base
	Nome     string   `gorm:"not null"`
	Endereco Endereco `gorm:"embedded;embeddedPrefix:endereco_"`
	Sessoes  []Sessao `gorm:"foreignKey:CinemaID;constraint:OnDelete:CASCADE"`
}
