package specifications

import (
	"smartparker-api/models"
)

// MotoWithFilters builds the predicate for the moto list endpoint.
// Every text filter is a case-insensitive substring match.
func MotoWithFilters(filter models.MotoFilter) Specification {
	var spec Specification

	if filter.Nome != nil {
		spec = contains(spec, "nome", *filter.Nome)
	}
	if filter.Fabricante != nil {
		spec = contains(spec, "fabricante", *filter.Fabricante)
	}
	if filter.Placa != nil {
		spec = contains(spec, "placa", *filter.Placa)
	}
	if filter.Status != nil {
		spec = contains(spec, "status", *filter.Status)
	}

	return spec
}
