package models

type Usuario struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Nome   string `json:"nome" gorm:"not null;size:100"`
	Email  string `json:"email" gorm:"uniqueIndex;not null;size:255"`
	CPF    string `json:"cpf" gorm:"column:cpf;uniqueIndex;not null;size:11"`
	MotoID *uint  `json:"moto_id"`

	// One moto per usuário by convention; the column is not unique, so the
	// latest write wins when two usuários claim the same moto.
	Moto *Moto `json:"moto" gorm:"foreignKey:MotoID"`
}
