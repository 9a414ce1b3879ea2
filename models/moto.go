package models

// Valid values for Moto.Status.
const (
	StatusDisponivel = "Disponível"
	StatusEmUso      = "Em uso"
	StatusReparo     = "Reparo"
)

// IsValidStatus reports whether status is one of the accepted values.
func IsValidStatus(status string) bool {
	switch status {
	case StatusDisponivel, StatusEmUso, StatusReparo:
		return true
	}
	return false
}

type Moto struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	Nome       string  `json:"nome" gorm:"not null;size:50"`
	Fabricante string  `json:"fabricante" gorm:"not null;size:30"`
	Cilindrada int     `json:"cilindrada" gorm:"not null"`
	Placa      string  `json:"placa" gorm:"uniqueIndex;not null;size:7"`
	Status     string  `json:"status" gorm:"not null;size:20"`
	QRCode     *string `json:"qrCode" gorm:"column:qr_code;uniqueIndex;size:100"`
}
