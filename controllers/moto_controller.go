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

const motosCacheFamily = "motos"

var motoSortColumns = map[string]string{
	"id":         "id",
	"nome":       "nome",
	"fabricante": "fabricante",
	"cilindrada": "cilindrada",
	"placa":      "placa",
	"status":     "status",
}

type MotoController struct {
	repo  *repositories.MotoRepository
	cache cache.Store
}

func NewMotoController(db *gorm.DB, store cache.Store) *MotoController {
	return &MotoController{
		repo:  repositories.NewMotoRepository(db),
		cache: store,
	}
}

func (mc *MotoController) Index(c *gin.Context) {
	if serveCached(c, mc.cache, motosCacheFamily, jsonContentType) {
		return
	}

	filter := models.MotoFilter{
		Nome:       queryString(c, "nome"),
		Fabricante: queryString(c, "fabricante"),
		Placa:      queryString(c, "placa"),
		Status:     queryString(c, "status"),
	}
	page := parsePageRequest(c, motoSortColumns)

	motos, total, err := mc.repo.FindAll(specifications.MotoWithFilters(filter), page)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Falha ao buscar motos.")
		return
	}

	dtos := make([]MotoDTO, len(motos))
	for i, moto := range motos {
		dtos[i] = motoToDTO(moto)
	}

	respondCachedJSON(c, mc.cache, motosCacheFamily, utils.NewPaginatedResponse(dtos, page.Page, page.Limit(), total))
}

func (mc *MotoController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.SendError(c, http.StatusNotFound, "Moto não encontrada.")
		return
	}

	if serveCached(c, mc.cache, motosCacheFamily, jsonContentType) {
		return
	}

	moto, err := mc.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Moto não encontrada.")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Falha ao buscar moto.")
		return
	}

	respondCachedJSON(c, mc.cache, motosCacheFamily, motoToDTO(*moto))
}

func (mc *MotoController) Create(c *gin.Context) {
	var dto MotoDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if fields := validateMoto(dto); len(fields) > 0 {
		utils.SendValidationErrors(c, fields)
		return
	}

	moto := motoFromDTO(dto)
	moto.ID = 0
	if err := mc.repo.Save(&moto); err != nil {
		sendSaveError(c, err, "Placa ou QR Code já cadastrado.")
		return
	}

	mc.cache.Invalidate(c.Request.Context(), motosCacheFamily)
	c.JSON(http.StatusCreated, motoToDTO(moto))
}

func (mc *MotoController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.SendError(c, http.StatusNotFound, "Moto não encontrada.")
		return
	}

	var dto MotoDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if fields := validateMoto(dto); len(fields) > 0 {
		utils.SendValidationErrors(c, fields)
		return
	}

	existing, err := mc.repo.FindByID(id)
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Moto não encontrada.")
		return
	}

	existing.Nome = dto.Nome
	existing.Fabricante = dto.Fabricante
	existing.Cilindrada = dto.Cilindrada
	existing.Placa = dto.Placa
	existing.Status = dto.Status
	existing.QRCode = nil
	if dto.QRCode != "" {
		qrCode := dto.QRCode
		existing.QRCode = &qrCode
	}

	if err := mc.repo.Save(existing); err != nil {
		sendSaveError(c, err, "Placa ou QR Code já cadastrado.")
		return
	}

	mc.cache.Invalidate(c.Request.Context(), motosCacheFamily)
	c.JSON(http.StatusOK, motoToDTO(*existing))
}

func (mc *MotoController) Delete(c *gin.Context) {
	if id, ok := parseIDParam(c, "id"); ok {
		if err := mc.repo.DeleteByID(id); err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Falha ao excluir moto.")
			return
		}
		mc.cache.Invalidate(c.Request.Context(), motosCacheFamily)
	}
	c.Status(http.StatusNoContent)
}

func motoFromDTO(dto MotoDTO) models.Moto {
	moto := models.Moto{
		ID:         dto.ID,
		Nome:       dto.Nome,
		Fabricante: dto.Fabricante,
		Cilindrada: dto.Cilindrada,
		Placa:      dto.Placa,
		Status:     dto.Status,
	}
	if dto.QRCode != "" {
		qrCode := dto.QRCode
		moto.QRCode = &qrCode
	}
	return moto
}

func validateMoto(dto MotoDTO) []utils.FieldError {
	var fields []utils.FieldError

	nomeLen := utf8.RuneCountInString(dto.Nome)
	switch {
	case strings.TrimSpace(dto.Nome) == "":
		fields = append(fields, utils.FieldError{Field: "nome", Message: "Campo obrigatório."})
	case nomeLen < 2 || nomeLen > 50:
		fields = append(fields, utils.FieldError{Field: "nome", Message: "O nome precisa ter entre 2 e 50 caracteres."})
	case !utils.IsAlnumSpace(dto.Nome):
		fields = append(fields, utils.FieldError{Field: "nome", Message: "Não são permitidos caracteres especiais no nome."})
	}

	fabricanteLen := utf8.RuneCountInString(dto.Fabricante)
	switch {
	case strings.TrimSpace(dto.Fabricante) == "":
		fields = append(fields, utils.FieldError{Field: "fabricante", Message: "Campo obrigatório."})
	case fabricanteLen < 2 || fabricanteLen > 30:
		fields = append(fields, utils.FieldError{Field: "fabricante", Message: "A fabricante deve ter entre 2 e 30 caracteres."})
	case !utils.IsAlnumSpace(dto.Fabricante):
		fields = append(fields, utils.FieldError{Field: "fabricante", Message: "Não são permitidos caracteres especiais na fabricante."})
	}

	if dto.Cilindrada < 100 || dto.Cilindrada > 1000 {
		fields = append(fields, utils.FieldError{Field: "cilindrada", Message: "A cilindrada deve ser entre 100 e 1000."})
	}

	switch {
	case dto.Placa == "":
		fields = append(fields, utils.FieldError{Field: "placa", Message: "Campo obrigatório."})
	case !utils.IsValidPlaca(dto.Placa):
		fields = append(fields, utils.FieldError{Field: "placa", Message: "Deve ser padrão de placa Mercosul."})
	}

	switch {
	case dto.Status == "":
		fields = append(fields, utils.FieldError{Field: "status", Message: "Campo obrigatório."})
	case !models.IsValidStatus(dto.Status):
		fields = append(fields, utils.FieldError{Field: "status", Message: "O status deve ser: Disponível, Em uso ou Reparo."})
	}

	if dto.QRCode != "" && !utils.IsAlnumSpace(dto.QRCode) {
		fields = append(fields, utils.FieldError{Field: "qrCode", Message: "Não podem caracteres especiais."})
	}

	return fields
}
