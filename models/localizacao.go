package models

import (
	"time"
)

// LocalizacaoMoto records the latest placement of a moto inside a setor.
// DataAtualizada is stamped by the server on every write.
type LocalizacaoMoto struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	DataAtualizada time.Time `json:"dataAtualizada"`
	MotoID         uint      `json:"moto_id" gorm:"not null"`
	SetorID        uint      `json:"setor_id" gorm:"not null"`

	Moto  Moto  `json:"moto" gorm:"foreignKey:MotoID"`
	Setor Setor `json:"setor" gorm:"foreignKey:SetorID"`
}
