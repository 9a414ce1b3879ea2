package models

type Setor struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Nome    string `json:"nome" gorm:"not null;size:30"`
	Fileira int    `json:"fileira" gorm:"not null"`
	Vaga    int    `json:"vaga" gorm:"not null"`
	PatioID uint   `json:"patio_id" gorm:"not null"`

	Patio Patio `json:"patio" gorm:"foreignKey:PatioID"`
}
