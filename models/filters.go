package models

import (
	"time"
)

// Filter types mirror the optional query parameters accepted by each list
// endpoint. A nil field means "do not filter on this attribute".

type MotoFilter struct {
	Nome       *string
	Fabricante *string
	Placa      *string
	Status     *string
}

type PatioFilter struct {
	Nome        *string
	Localizacao *string
}

type SetorFilter struct {
	Nome    *string
	Fileira *int
	Vaga    *int
}

// MotoRefFilter narrows a query by attributes of the referenced moto.
type MotoRefFilter struct {
	ID    *uint
	Nome  *string
	Placa *string
}

type UsuarioFilter struct {
	Nome  *string
	Email *string
	CPF   *string
	Moto  *MotoRefFilter
}

type LocalizacaoMotoFilter struct {
	DataInicio *time.Time
	DataFim    *time.Time
	MotoID     *uint
	SetorID    *uint
}
