package specifications

import (
	"smartparker-api/models"
)

// LocalizacaoWithFilters builds the predicate for the localização list
// endpoint. The date range is inclusive on both ends; a single bound turns
// into a one-sided inequality.
func LocalizacaoWithFilters(filter models.LocalizacaoMotoFilter) Specification {
	var spec Specification

	switch {
	case filter.DataInicio != nil && filter.DataFim != nil:
		spec = append(spec, Clause{
			Expr: "data_atualizada BETWEEN ? AND ?",
			Args: []any{*filter.DataInicio, *filter.DataFim},
		})
	case filter.DataInicio != nil:
		spec = append(spec, Clause{
			Expr: "data_atualizada >= ?",
			Args: []any{*filter.DataInicio},
		})
	case filter.DataFim != nil:
		spec = append(spec, Clause{
			Expr: "data_atualizada <= ?",
			Args: []any{*filter.DataFim},
		})
	}

	if filter.MotoID != nil {
		spec = equals(spec, "moto_id", *filter.MotoID)
	}
	if filter.SetorID != nil {
		spec = equals(spec, "setor_id", *filter.SetorID)
	}

	return spec
}
