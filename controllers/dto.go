package controllers

import (
	"time"

	"smartparker-api/models"
)

// Transfer objects embed related objects by value on read. On write only the
// nested id is honored; every other nested field is ignored.

type MotoDTO struct {
	ID         uint   `json:"id"`
	Nome       string `json:"nome"`
	Fabricante string `json:"fabricante"`
	Cilindrada int    `json:"cilindrada"`
	Placa      string `json:"placa"`
	Status     string `json:"status"`
	QRCode     string `json:"qrCode,omitempty"`
}

type PatioDTO struct {
	ID          uint   `json:"id"`
	Nome        string `json:"nome"`
	Localizacao string `json:"localizacao"`
}

type SetorDTO struct {
	ID      uint      `json:"id"`
	Nome    string    `json:"nome"`
	Fileira int       `json:"fileira"`
	Vaga    int       `json:"vaga"`
	Patio   *PatioDTO `json:"patio,omitempty"`
}

type UsuarioDTO struct {
	ID    uint     `json:"id"`
	Nome  string   `json:"nome"`
	Email string   `json:"email"`
	CPF   string   `json:"cpf"`
	Moto  *MotoDTO `json:"moto,omitempty"`
}

type LocalizacaoMotoDTO struct {
	ID             uint       `json:"id"`
	DataAtualizada *time.Time `json:"dataAtualizada,omitempty"`
	Moto           *MotoDTO   `json:"moto,omitempty"`
	Setor          *SetorDTO  `json:"setor,omitempty"`
}

func motoToDTO(moto models.Moto) MotoDTO {
	dto := MotoDTO{
		ID:         moto.ID,
		Nome:       moto.Nome,
		Fabricante: moto.Fabricante,
		Cilindrada: moto.Cilindrada,
		Placa:      moto.Placa,
		Status:     moto.Status,
	}
	if moto.QRCode != nil {
		dto.QRCode = *moto.QRCode
	}
	return dto
}

func patioToDTO(patio models.Patio) PatioDTO {
	return PatioDTO{
		ID:          patio.ID,
		Nome:        patio.Nome,
		Localizacao: patio.Localizacao,
	}
}

func setorToDTO(setor models.Setor) SetorDTO {
	dto := SetorDTO{
		ID:      setor.ID,
		Nome:    setor.Nome,
		Fileira: setor.Fileira,
		Vaga:    setor.Vaga,
	}
	if setor.Patio.ID != 0 {
		patio := patioToDTO(setor.Patio)
		dto.Patio = &patio
	}
	return dto
}

func usuarioToDTO(usuario models.Usuario) UsuarioDTO {
	dto := UsuarioDTO{
		ID:    usuario.ID,
		Nome:  usuario.Nome,
		Email: usuario.Email,
		CPF:   usuario.CPF,
	}
	if usuario.Moto != nil {
		moto := motoToDTO(*usuario.Moto)
		dto.Moto = &moto
	}
	return dto
}

func localizacaoToDTO(localizacao models.LocalizacaoMoto) LocalizacaoMotoDTO {
	dataAtualizada := localizacao.DataAtualizada
	moto := motoToDTO(localizacao.Moto)
	setor := setorToDTO(localizacao.Setor)

	return LocalizacaoMotoDTO{
		ID:             localizacao.ID,
		DataAtualizada: &dataAtualizada,
		Moto:           &moto,
		Setor:          &setor,
	}
}
