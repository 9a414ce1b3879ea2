package models

type Patio struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Nome        string `json:"nome" gorm:"not null;size:30"`
	Localizacao string `json:"localizacao" gorm:"not null;size:100"`
}
