package controllers

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"smartparker-api/cache"
	"smartparker-api/models"
	"smartparker-api/repositories"
	"smartparker-api/specifications"
	"smartparker-api/utils"
)

const setoresCacheFamily = "setores"

var setorSortColumns = map[string]string{
	"id":      "id",
	"nome":    "nome",
	"fileira": "fileira",
	"vaga":    "vaga",
}

type SetorController struct {
	repo      *repositories.SetorRepository
	patioRepo *repositories.PatioRepository
	cache     cache.Store
}

func NewSetorController(db *gorm.DB, store cache.Store) *SetorController {
	return &SetorController{
		repo:      repositories.NewSetorRepository(db),
		patioRepo: repositories.NewPatioRepository(db),
		cache:     store,
	}
}

func (sc *SetorController) Index(c *gin.Context) {
	if serveCached(c, sc.cache, setoresCacheFamily, jsonContentType) {
		return
	}

	filter := models.SetorFilter{
		Nome:    queryString(c, "nome"),
		Fileira: queryInt(c, "fileira"),
		Vaga:    queryInt(c, "vaga"),
	}
	page := parsePageRequest(c, setorSortColumns)

	setores, total, err := sc.repo.FindAll(specifications.SetorWithFilters(filter), page)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Falha ao buscar setores.")
		return
	}

	dtos := make([]SetorDTO, len(setores))
	for i, setor := range setores {
		dtos[i] = setorToDTO(setor)
	}

	respondCachedJSON(c, sc.cache, setoresCacheFamily, utils.NewPaginatedResponse(dtos, page.Page, page.Limit(), total))
}

func (sc *SetorController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.SendError(c, http.StatusNotFound, "Setor não encontrado.")
		return
	}

	if serveCached(c, sc.cache, setoresCacheFamily, jsonContentType) {
		return
	}

	setor, err := sc.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Setor não encontrado.")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Falha ao buscar setor.")
		return
	}

	respondCachedJSON(c, sc.cache, setoresCacheFamily, setorToDTO(*setor))
}

func (sc *SetorController) Create(c *gin.Context) {
	var dto SetorDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if fields := validateSetor(dto); len(fields) > 0 {
		utils.SendValidationErrors(c, fields)
		return
	}

	patio, err := sc.patioRepo.FindByID(dto.Patio.ID)
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Pátio não encontrado.")
		return
	}

	setor := models.Setor{
		Nome:    dto.Nome,
		Fileira: dto.Fileira,
		Vaga:    dto.Vaga,
		PatioID: patio.ID,
		Patio:   *patio,
	}
	if err := sc.repo.Save(&setor); err != nil {
		sendSaveError(c, err, "Setor já cadastrado.")
		return
	}

	sc.cache.Invalidate(c.Request.Context(), setoresCacheFamily)
	c.JSON(http.StatusCreated, setorToDTO(setor))
}

func (sc *SetorController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.SendError(c, http.StatusNotFound, "Setor não encontrado.")
		return
	}

	var dto SetorDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if fields := validateSetor(dto); len(fields) > 0 {
		utils.SendValidationErrors(c, fields)
		return
	}

	existing, err := sc.repo.FindByID(id)
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Setor não encontrado.")
		return
	}

	patio, err := sc.patioRepo.FindByID(dto.Patio.ID)
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Pátio não encontrado.")
		return
	}

	existing.Nome = dto.Nome
	existing.Fileira = dto.Fileira
	existing.Vaga = dto.Vaga
	existing.PatioID = patio.ID
	existing.Patio = *patio

	if err := sc.repo.Save(existing); err != nil {
		sendSaveError(c, err, "Setor já cadastrado.")
		return
	}

	sc.cache.Invalidate(c.Request.Context(), setoresCacheFamily)
	c.JSON(http.StatusOK, setorToDTO(*existing))
}

func (sc *SetorController) Delete(c *gin.Context) {
	if id, ok := parseIDParam(c, "id"); ok {
		if err := sc.repo.DeleteByID(id); err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Falha ao excluir setor.")
			return
		}
		sc.cache.Invalidate(c.Request.Context(), setoresCacheFamily)
	}
	c.Status(http.StatusNoContent)
}

func validateSetor(dto SetorDTO) []utils.FieldError {
	var fields []utils.FieldError

	switch {
	case strings.TrimSpace(dto.Nome) == "":
		fields = append(fields, utils.FieldError{Field: "nome", Message: "Campo obrigatório."})
	case utf8.RuneCountInString(dto.Nome) > 30:
		fields = append(fields, utils.FieldError{Field: "nome", Message: "O nome deve ter até 30 caracteres."})
	}

	if dto.Fileira < 1 {
		fields = append(fields, utils.FieldError{Field: "fileira", Message: "A fileira deve ser maior ou igual a 1."})
	}
	if dto.Vaga < 1 {
		fields = append(fields, utils.FieldError{Field: "vaga", Message: "A vaga deve ser maior ou igual a 1."})
	}

	if dto.Patio == nil || dto.Patio.ID == 0 {
		fields = append(fields, utils.FieldError{Field: "patio", Message: "O pátio é obrigatório."})
	}

	return fields
}
