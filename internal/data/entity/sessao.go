package entity

import "time"

// Sessao links a Filme to a Cinema. The pair is the primary key.
type Sessao struct {
	FilmeID   uint      `gorm:"primaryKey;autoIncrement:false"`
	CinemaID  uint      `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `gorm:"not null"`
}

func (Sessao) TableName() string {
	return "sessoes"
}
