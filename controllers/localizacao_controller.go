package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"smartparker-api/cache"
	"smartparker-api/models"
	"smartparker-api/repositories"
	"smartparker-api/specifications"
	"smartparker-api/utils"
)

const (
	localizacoesCacheFamily = "localizacoes"

	textContentType = "text/plain; charset=utf-8"
)

var localizacaoSortColumns = map[string]string{
	"id":             "id",
	"dataAtualizada": "data_atualizada",
}

type LocalizacaoController struct {
	repo      *repositories.LocalizacaoRepository
	motoRepo  *repositories.MotoRepository
	setorRepo *repositories.SetorRepository
	cache     cache.Store
}

func NewLocalizacaoController(db *gorm.DB, store cache.Store) *LocalizacaoController {
	return &LocalizacaoController{
		repo:      repositories.NewLocalizacaoRepository(db),
		motoRepo:  repositories.NewMotoRepository(db),
		setorRepo: repositories.NewSetorRepository(db),
		cache:     store,
	}
}

func (lc *LocalizacaoController) Index(c *gin.Context) {
	if serveCached(c, lc.cache, localizacoesCacheFamily, jsonContentType) {
		return
	}

	filter := models.LocalizacaoMotoFilter{
		DataInicio: queryTime(c, "dataInicio"),
		DataFim:    queryTime(c, "dataFim"),
		MotoID:     queryUint(c, "moto.id"),
		SetorID:    queryUint(c, "setor.id"),
	}
	page := parsePageRequest(c, localizacaoSortColumns)

	localizacoes, total, err := lc.repo.FindAll(specifications.LocalizacaoWithFilters(filter), page)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Falha ao buscar localizações.")
		return
	}

	dtos := make([]LocalizacaoMotoDTO, len(localizacoes))
	for i, localizacao := range localizacoes {
		dtos[i] = localizacaoToDTO(localizacao)
	}

	respondCachedJSON(c, lc.cache, localizacoesCacheFamily, utils.NewPaginatedResponse(dtos, page.Page, page.Limit(), total))
}

func (lc *LocalizacaoController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.SendError(c, http.StatusNotFound, "Localização não encontrada.")
		return
	}

	if serveCached(c, lc.cache, localizacoesCacheFamily, jsonContentType) {
		return
	}

	localizacao, err := lc.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Localização não encontrada.")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Falha ao buscar localização.")
		return
	}

	respondCachedJSON(c, lc.cache, localizacoesCacheFamily, localizacaoToDTO(*localizacao))
}

// Detalhes renders a one-line summary of a moto's current placement.
func (lc *LocalizacaoController) Detalhes(c *gin.Context) {
	motoID, ok := parseIDParam(c, "motoId")
	if !ok {
		utils.SendError(c, http.StatusNotFound, "Localização não encontrada.")
		return
	}

	if serveCached(c, lc.cache, localizacoesCacheFamily, textContentType) {
		return
	}

	localizacao, err := lc.repo.FindByMotoID(motoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, fmt.Sprintf("Localização não encontrada para a moto com ID %d", motoID))
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Falha ao buscar localização.")
		return
	}

	detalhes := fmt.Sprintf(
		"Moto: %s (Placa: %s), Setor: %s (Fileira: %d, Vaga: %d), Atualizado em: %s",
		localizacao.Moto.Nome,
		localizacao.Moto.Placa,
		localizacao.Setor.Nome,
		localizacao.Setor.Fileira,
		localizacao.Setor.Vaga,
		localizacao.DataAtualizada.Format("2006-01-02T15:04:05"),
	)

	lc.cache.Set(c.Request.Context(), localizacoesCacheFamily, cacheKey(c), []byte(detalhes))
	c.String(http.StatusOK, detalhes)
}

func (lc *LocalizacaoController) Create(c *gin.Context) {
	var dto LocalizacaoMotoDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if fields := validateLocalizacao(dto); len(fields) > 0 {
		utils.SendValidationErrors(c, fields)
		return
	}

	moto, setor, ok := lc.resolveReferences(c, dto)
	if !ok {
		return
	}

	localizacao := models.LocalizacaoMoto{
		DataAtualizada: time.Now(),
		MotoID:         moto.ID,
		SetorID:        setor.ID,
		Moto:           *moto,
		Setor:          *setor,
	}
	if err := lc.repo.Save(&localizacao); err != nil {
		sendSaveError(c, err, "Localização já cadastrada.")
		return
	}

	lc.cache.Invalidate(c.Request.Context(), localizacoesCacheFamily)
	c.JSON(http.StatusCreated, localizacaoToDTO(localizacao))
}

func (lc *LocalizacaoController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.SendError(c, http.StatusNotFound, "Localização não encontrada.")
		return
	}

	var dto LocalizacaoMotoDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if fields := validateLocalizacao(dto); len(fields) > 0 {
		utils.SendValidationErrors(c, fields)
		return
	}

	existing, err := lc.repo.FindByID(id)
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Localização não encontrada.")
		return
	}

	moto, setor, ok := lc.resolveReferences(c, dto)
	if !ok {
		return
	}

	existing.MotoID = moto.ID
	existing.SetorID = setor.ID
	existing.Moto = *moto
	existing.Setor = *setor
	existing.DataAtualizada = time.Now()

	if err := lc.repo.Save(existing); err != nil {
		sendSaveError(c, err, "Localização já cadastrada.")
		return
	}

	lc.cache.Invalidate(c.Request.Context(), localizacoesCacheFamily)
	c.JSON(http.StatusOK, localizacaoToDTO(*existing))
}

func (lc *LocalizacaoController) Delete(c *gin.Context) {
	if id, ok := parseIDParam(c, "id"); ok {
		if err := lc.repo.DeleteByID(id); err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Falha ao excluir localização.")
			return
		}
		lc.cache.Invalidate(c.Request.Context(), localizacoesCacheFamily)
	}
	c.Status(http.StatusNoContent)
}

// resolveReferences looks up the moto and setor named by the request. Either
// miss fails the whole write before anything is persisted.
func (lc *LocalizacaoController) resolveReferences(c *gin.Context, dto LocalizacaoMotoDTO) (*models.Moto, *models.Setor, bool) {
	moto, err := lc.motoRepo.FindByID(dto.Moto.ID)
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Moto não encontrada.")
		return nil, nil, false
	}

	setor, err := lc.setorRepo.FindByID(dto.Setor.ID)
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Setor não encontrado.")
		return nil, nil, false
	}

	return moto, setor, true
}

func validateLocalizacao(dto LocalizacaoMotoDTO) []utils.FieldError {
	var fields []utils.FieldError

	if dto.Moto == nil || dto.Moto.ID == 0 {
		fields = append(fields, utils.FieldError{Field: "moto", Message: "Campo obrigatório."})
	}
	if dto.Setor == nil || dto.Setor.ID == 0 {
		fields = append(fields, utils.FieldError{Field: "setor", Message: "Campo obrigatório."})
	}

	return fields
}
