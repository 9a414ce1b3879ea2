package specifications

import (
	"smartparker-api/models"
)

func SetorWithFilters(filter models.SetorFilter) Specification {
	var spec Specification

	if filter.Nome != nil {
		spec = contains(spec, "nome", *filter.Nome)
	}
	if filter.Fileira != nil {
		spec = equals(spec, "fileira", *filter.Fileira)
	}
	if filter.Vaga != nil {
		spec = equals(spec, "vaga", *filter.Vaga)
	}

	return spec
}
