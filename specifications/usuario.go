package specifications

import (
	"strings"

	"smartparker-api/models"
)

// UsuarioWithFilters builds the predicate for the usuário list endpoint.
// Nested moto filters scope by the referenced moto's id, nome or placa.
func UsuarioWithFilters(filter models.UsuarioFilter) Specification {
	var spec Specification

	if filter.Nome != nil {
		spec = contains(spec, "nome", *filter.Nome)
	}
	if filter.Email != nil {
		spec = contains(spec, "email", *filter.Email)
	}
	if filter.CPF != nil {
		spec = contains(spec, "cpf", *filter.CPF)
	}

	if filter.Moto != nil {
		if filter.Moto.ID != nil {
			spec = equals(spec, "moto_id", *filter.Moto.ID)
		}
		if filter.Moto.Nome != nil {
			spec = motoSubquery(spec, "nome", *filter.Moto.Nome)
		}
		if filter.Moto.Placa != nil {
			spec = motoSubquery(spec, "placa", *filter.Moto.Placa)
		}
	}

	return spec
}

func motoSubquery(s Specification, column, value string) Specification {
	return append(s, Clause{
		Expr: "moto_id IN (SELECT id FROM motos WHERE LOWER(" + column + ") LIKE ?)",
		Args: []any{"%" + strings.ToLower(value) + "%"},
	})
}
