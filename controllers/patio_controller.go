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

const patiosCacheFamily = "patios"

var patioSortColumns = map[string]string{
	"id":          "id",
	"nome":        "nome",
	"localizacao": "localizacao",
}

type PatioController struct {
	repo  *repositories.PatioRepository
	cache cache.Store
}

func NewPatioController(db *gorm.DB, store cache.Store) *PatioController {
	return &PatioController{
		repo:  repositories.NewPatioRepository(db),
		cache: store,
	}
}

func (pc *PatioController) Index(c *gin.Context) {
	if serveCached(c, pc.cache, patiosCacheFamily, jsonContentType) {
		return
	}

	filter := models.PatioFilter{
		Nome:        queryString(c, "nome"),
		Localizacao: queryString(c, "localizacao"),
	}
	page := parsePageRequest(c, patioSortColumns)

	patios, total, err := pc.repo.FindAll(specifications.PatioWithFilters(filter), page)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Falha ao buscar pátios.")
		return
	}

	dtos := make([]PatioDTO, len(patios))
	for i, patio := range patios {
		dtos[i] = patioToDTO(patio)
	}

	respondCachedJSON(c, pc.cache, patiosCacheFamily, utils.NewPaginatedResponse(dtos, page.Page, page.Limit(), total))
}

func (pc *PatioController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.SendError(c, http.StatusNotFound, "Pátio não encontrado.")
		return
	}

	if serveCached(c, pc.cache, patiosCacheFamily, jsonContentType) {
		return
	}

	patio, err := pc.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Pátio não encontrado.")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Falha ao buscar pátio.")
		return
	}

	respondCachedJSON(c, pc.cache, patiosCacheFamily, patioToDTO(*patio))
}

func (pc *PatioController) Create(c *gin.Context) {
	var dto PatioDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if fields := validatePatio(dto); len(fields) > 0 {
		utils.SendValidationErrors(c, fields)
		return
	}

	patio := models.Patio{
		Nome:        dto.Nome,
		Localizacao: dto.Localizacao,
	}
	if err := pc.repo.Save(&patio); err != nil {
		sendSaveError(c, err, "Pátio já cadastrado.")
		return
	}

	pc.cache.Invalidate(c.Request.Context(), patiosCacheFamily)
	c.JSON(http.StatusCreated, patioToDTO(patio))
}

func (pc *PatioController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.SendError(c, http.StatusNotFound, "Pátio não encontrado.")
		return
	}

	var dto PatioDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if fields := validatePatio(dto); len(fields) > 0 {
		utils.SendValidationErrors(c, fields)
		return
	}

	existing, err := pc.repo.FindByID(id)
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Pátio não encontrado.")
		return
	}

	existing.Nome = dto.Nome
	existing.Localizacao = dto.Localizacao

	if err := pc.repo.Save(existing); err != nil {
		sendSaveError(c, err, "Pátio já cadastrado.")
		return
	}

	pc.cache.Invalidate(c.Request.Context(), patiosCacheFamily)
	c.JSON(http.StatusOK, patioToDTO(*existing))
}

func (pc *PatioController) Delete(c *gin.Context) {
	if id, ok := parseIDParam(c, "id"); ok {
		if err := pc.repo.DeleteByID(id); err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Falha ao excluir pátio.")
			return
		}
		pc.cache.Invalidate(c.Request.Context(), patiosCacheFamily)
	}
	c.Status(http.StatusNoContent)
}

func validatePatio(dto PatioDTO) []utils.FieldError {
	var fields []utils.FieldError

	switch {
	case strings.TrimSpace(dto.Nome) == "":
		fields = append(fields, utils.FieldError{Field: "nome", Message: "Campo obrigatório."})
	case utf8.RuneCountInString(dto.Nome) > 30:
		fields = append(fields, utils.FieldError{Field: "nome", Message: "Deve ter até 30 caracteres."})
	}

	localizacaoLen := utf8.RuneCountInString(dto.Localizacao)
	switch {
	case strings.TrimSpace(dto.Localizacao) == "":
		fields = append(fields, utils.FieldError{Field: "localizacao", Message: "Campo obrigatório."})
	case localizacaoLen < 5 || localizacaoLen > 100:
		fields = append(fields, utils.FieldError{Field: "localizacao", Message: "Deve ter entre 5 e 100 caracteres."})
	}

	return fields
}
