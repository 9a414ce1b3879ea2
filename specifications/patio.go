package specifications

import (
	"smartparker-api/models"
)

func PatioWithFilters(filter models.PatioFilter) Specification {
	var spec Specification

	if filter.Nome != nil {
		spec = contains(spec, "nome", *filter.Nome)
	}
	if filter.Localizacao != nil {
		spec = contains(spec, "localizacao", *filter.Localizacao)
	}

	return spec
}
