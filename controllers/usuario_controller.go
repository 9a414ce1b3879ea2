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

const usuariosCacheFamily = "usuarios"

var usuarioSortColumns = map[string]string{
	"id":    "id",
	"nome":  "nome",
	"email": "email",
	"cpf":   "cpf",
}

type UsuarioController struct {
	repo     *repositories.UsuarioRepository
	motoRepo *repositories.MotoRepository
	cache    cache.Store
}

func NewUsuarioController(db *gorm.DB, store cache.Store) *UsuarioController {
	return &UsuarioController{
		repo:     repositories.NewUsuarioRepository(db),
		motoRepo: repositories.NewMotoRepository(db),
		cache:    store,
	}
}

func (uc *UsuarioController) Index(c *gin.Context) {
	if serveCached(c, uc.cache, usuariosCacheFamily, jsonContentType) {
		return
	}

	filter := models.UsuarioFilter{
		Nome:  queryString(c, "nome"),
		Email: queryString(c, "email"),
		CPF:   queryString(c, "cpf"),
	}
	motoFilter := models.MotoRefFilter{
		ID:    queryUint(c, "moto.id"),
		Nome:  queryString(c, "moto.nome"),
		Placa: queryString(c, "moto.placa"),
	}
	if motoFilter.ID != nil || motoFilter.Nome != nil || motoFilter.Placa != nil {
		filter.Moto = &motoFilter
	}

	page := parsePageRequest(c, usuarioSortColumns)

	usuarios, total, err := uc.repo.FindAll(specifications.UsuarioWithFilters(filter), page)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Falha ao buscar usuários.")
		return
	}

	dtos := make([]UsuarioDTO, len(usuarios))
	for i, usuario := range usuarios {
		dtos[i] = usuarioToDTO(usuario)
	}

	respondCachedJSON(c, uc.cache, usuariosCacheFamily, utils.NewPaginatedResponse(dtos, page.Page, page.Limit(), total))
}

func (uc *UsuarioController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.SendError(c, http.StatusNotFound, "Usuário não encontrado.")
		return
	}

	if serveCached(c, uc.cache, usuariosCacheFamily, jsonContentType) {
		return
	}

	usuario, err := uc.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Usuário não encontrado.")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Falha ao buscar usuário.")
		return
	}

	respondCachedJSON(c, uc.cache, usuariosCacheFamily, usuarioToDTO(*usuario))
}

func (uc *UsuarioController) Create(c *gin.Context) {
	var dto UsuarioDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if fields := validateUsuario(dto); len(fields) > 0 {
		utils.SendValidationErrors(c, fields)
		return
	}

	usuario := models.Usuario{
		Nome:  dto.Nome,
		Email: dto.Email,
		CPF:   dto.CPF,
	}

	if dto.Moto != nil && dto.Moto.ID != 0 {
		moto, err := uc.motoRepo.FindByID(dto.Moto.ID)
		if err != nil {
			utils.SendError(c, http.StatusNotFound, "Moto não encontrada.")
			return
		}
		usuario.MotoID = &moto.ID
		usuario.Moto = moto
	}

	if err := uc.repo.Save(&usuario); err != nil {
		sendSaveError(c, err, "Email ou CPF já cadastrado.")
		return
	}

	uc.cache.Invalidate(c.Request.Context(), usuariosCacheFamily)
	c.JSON(http.StatusCreated, usuarioToDTO(usuario))
}

func (uc *UsuarioController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.SendError(c, http.StatusNotFound, "Usuário não encontrado.")
		return
	}

	var dto UsuarioDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		utils.SendError(c, http.StatusBadRequest, err.Error())
		return
	}

	if fields := validateUsuario(dto); len(fields) > 0 {
		utils.SendValidationErrors(c, fields)
		return
	}

	existing, err := uc.repo.FindByID(id)
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Usuário não encontrado.")
		return
	}

	existing.Nome = dto.Nome
	existing.Email = dto.Email
	existing.CPF = dto.CPF

	if dto.Moto != nil && dto.Moto.ID != 0 {
		moto, err := uc.motoRepo.FindByID(dto.Moto.ID)
		if err != nil {
			utils.SendError(c, http.StatusNotFound, "Moto não encontrada.")
			return
		}
		existing.MotoID = &moto.ID
		existing.Moto = moto
	} else {
		existing.MotoID = nil
		existing.Moto = nil
	}

	if err := uc.repo.Save(existing); err != nil {
		sendSaveError(c, err, "Email ou CPF já cadastrado.")
		return
	}

	uc.cache.Invalidate(c.Request.Context(), usuariosCacheFamily)
	c.JSON(http.StatusOK, usuarioToDTO(*existing))
}

func (uc *UsuarioController) Delete(c *gin.Context) {
	if id, ok := parseIDParam(c, "id"); ok {
		if err := uc.repo.DeleteByID(id); err != nil {
			utils.SendError(c, http.StatusInternalServerError, "Falha ao excluir usuário.")
			return
		}
		uc.cache.Invalidate(c.Request.Context(), usuariosCacheFamily)
	}
	c.Status(http.StatusNoContent)
}

func validateUsuario(dto UsuarioDTO) []utils.FieldError {
	var fields []utils.FieldError

	nomeLen := utf8.RuneCountInString(dto.Nome)
	switch {
	case strings.TrimSpace(dto.Nome) == "":
		fields = append(fields, utils.FieldError{Field: "nome", Message: "O nome não pode estar em branco."})
	case nomeLen < 3 || nomeLen > 100:
		fields = append(fields, utils.FieldError{Field: "nome", Message: "O nome deve ter entre 3 e 100 caracteres."})
	}

	switch {
	case strings.TrimSpace(dto.Email) == "":
		fields = append(fields, utils.FieldError{Field: "email", Message: "O email não pode estar em branco."})
	case !utils.IsValidEmail(dto.Email):
		fields = append(fields, utils.FieldError{Field: "email", Message: "Formato de email inválido."})
	}

	switch {
	case strings.TrimSpace(dto.CPF) == "":
		fields = append(fields, utils.FieldError{Field: "cpf", Message: "O CPF não pode estar em branco."})
	case !utils.IsValidCPF(dto.CPF):
		fields = append(fields, utils.FieldError{Field: "cpf", Message: "O CPF precisa ter exatamente 11 números (sem caracteres especiais)."})
	}

	return fields
}
