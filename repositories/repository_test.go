package repositories

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"smartparker-api/models"
	"smartparker-api/specifications"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Patio{},
		&models.Setor{},
		&models.Moto{},
		&models.Usuario{},
		&models.LocalizacaoMoto{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("failed to create %T: %v", value, err)
	}
}

func strPtr(s string) *string { return &s }

func TestMotoFindAllDefaultPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewMotoRepository(db)

	names := []string{"Golf", "Alpha", "Echo", "Bravo", "Foxtrot", "Delta", "Charlie"}
	for i, nome := range names {
		mustCreate(t, db, &models.Moto{
			Nome:       nome,
			Fabricante: "Honda",
			Cilindrada: 125,
			Placa:      fmt.Sprintf("ABC1D2%d", i),
			Status:     models.StatusDisponivel,
		})
	}

	motos, total, err := repo.FindAll(nil, PageRequest{})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}

	if total != 7 {
		t.Errorf("total = %d, want 7", total)
	}
	if len(motos) != DefaultPageSize {
		t.Fatalf("page size = %d, want %d", len(motos), DefaultPageSize)
	}
	// Default sort is by nome ascending.
	want := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"}
	for i, nome := range want {
		if motos[i].Nome != nome {
			t.Errorf("motos[%d].Nome = %q, want %q", i, motos[i].Nome, nome)
		}
	}
}

func TestMotoFindAllSecondPage(t *testing.T) {
	db := newTestDB(t)
	repo := NewMotoRepository(db)

	for i := 0; i < 7; i++ {
		mustCreate(t, db, &models.Moto{
			Nome:       fmt.Sprintf("Moto %d", i),
			Fabricante: "Honda",
			Cilindrada: 125,
			Placa:      fmt.Sprintf("ABC1D2%d", i),
			Status:     models.StatusDisponivel,
		})
	}

	motos, total, err := repo.FindAll(nil, PageRequest{Page: 2})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if total != 7 {
		t.Errorf("total = %d, want 7", total)
	}
	if len(motos) != 2 {
		t.Errorf("second page length = %d, want 2", len(motos))
	}
}

func TestMotoFilterCaseInsensitiveSubstring(t *testing.T) {
	db := newTestDB(t)
	repo := NewMotoRepository(db)

	mustCreate(t, db, &models.Moto{Nome: "MotoX", Fabricante: "Honda", Cilindrada: 150, Placa: "AAA1A11", Status: models.StatusDisponivel})
	mustCreate(t, db, &models.Moto{Nome: "Biz", Fabricante: "Honda", Cilindrada: 125, Placa: "BBB2B22", Status: models.StatusDisponivel})

	spec := specifications.MotoWithFilters(models.MotoFilter{Nome: strPtr("moto")})
	motos, total, err := repo.FindAll(spec, PageRequest{})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}

	if total != 1 || len(motos) != 1 {
		t.Fatalf("got %d motos (total %d), want 1", len(motos), total)
	}
	if motos[0].Nome != "MotoX" {
		t.Errorf("matched %q, want MotoX", motos[0].Nome)
	}
}

func TestMotoEmptyFilterMatchesEverything(t *testing.T) {
	db := newTestDB(t)
	repo := NewMotoRepository(db)

	for i := 0; i < 3; i++ {
		mustCreate(t, db, &models.Moto{
			Nome:       fmt.Sprintf("Moto %d", i),
			Fabricante: "Yamaha",
			Cilindrada: 250,
			Placa:      fmt.Sprintf("CCC3C3%d", i),
			Status:     models.StatusEmUso,
		})
	}

	spec := specifications.MotoWithFilters(models.MotoFilter{})
	_, filtered, err := repo.FindAll(spec, PageRequest{})
	if err != nil {
		t.Fatalf("FindAll with empty filter: %v", err)
	}
	_, unfiltered, err := repo.FindAll(nil, PageRequest{})
	if err != nil {
		t.Fatalf("FindAll unfiltered: %v", err)
	}

	if filtered != unfiltered {
		t.Errorf("empty filter total = %d, unfiltered total = %d", filtered, unfiltered)
	}
}

func TestMotoSaveUpsertByIdentity(t *testing.T) {
	db := newTestDB(t)
	repo := NewMotoRepository(db)

	moto := models.Moto{Nome: "Biz", Fabricante: "Honda", Cilindrada: 125, Placa: "ABC1D23", Status: models.StatusDisponivel}
	if err := repo.Save(&moto); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if moto.ID == 0 {
		t.Fatal("insert should assign an id")
	}

	moto.Status = models.StatusReparo
	if err := repo.Save(&moto); err != nil {
		t.Fatalf("update: %v", err)
	}

	loaded, err := repo.FindByID(moto.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if loaded.Status != models.StatusReparo {
		t.Errorf("status = %q, want %q", loaded.Status, models.StatusReparo)
	}

	var count int64
	db.Model(&models.Moto{}).Count(&count)
	if count != 1 {
		t.Errorf("row count = %d, want 1 (update in place)", count)
	}
}

func TestMotoFindByIDMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewMotoRepository(db)

	_, err := repo.FindByID(42)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestDeleteByIDIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewMotoRepository(db)

	moto := models.Moto{Nome: "Biz", Fabricante: "Honda", Cilindrada: 125, Placa: "ABC1D23", Status: models.StatusDisponivel}
	mustCreate(t, db, &moto)

	if err := repo.DeleteByID(moto.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.DeleteByID(moto.ID); err != nil {
		t.Fatalf("second delete should be a no-op success: %v", err)
	}
}

func TestMotoDuplicatePlacaTranslated(t *testing.T) {
	db := newTestDB(t)
	repo := NewMotoRepository(db)

	first := models.Moto{Nome: "Biz", Fabricante: "Honda", Cilindrada: 125, Placa: "ABC1D23", Status: models.StatusDisponivel}
	mustCreate(t, db, &first)

	dup := models.Moto{Nome: "Pop", Fabricante: "Honda", Cilindrada: 110, Placa: "ABC1D23", Status: models.StatusDisponivel}
	err := repo.Save(&dup)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("err = %v, want gorm.ErrDuplicatedKey", err)
	}
}

func TestSetorFindPreloadsPatio(t *testing.T) {
	db := newTestDB(t)
	repo := NewSetorRepository(db)

	patio := models.Patio{Nome: "Pátio A", Localizacao: "Rua X, 123"}
	mustCreate(t, db, &patio)
	setor := models.Setor{Nome: "A1", Fileira: 1, Vaga: 1, PatioID: patio.ID}
	mustCreate(t, db, &setor)

	loaded, err := repo.FindByID(setor.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if loaded.Patio.Nome != "Pátio A" {
		t.Errorf("preloaded patio nome = %q, want Pátio A", loaded.Patio.Nome)
	}
}

func TestUsuarioNestedMotoFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewUsuarioRepository(db)

	moto := models.Moto{Nome: "Biz", Fabricante: "Honda", Cilindrada: 125, Placa: "ABC1D23", Status: models.StatusDisponivel}
	mustCreate(t, db, &moto)
	mustCreate(t, db, &models.Usuario{Nome: "João Silva", Email: "joao@example.com", CPF: "11111111111", MotoID: &moto.ID})
	mustCreate(t, db, &models.Usuario{Nome: "Maria Souza", Email: "maria@example.com", CPF: "22222222222"})

	spec := specifications.UsuarioWithFilters(models.UsuarioFilter{
		Moto: &models.MotoRefFilter{Placa: strPtr("abc1")},
	})
	usuarios, total, err := repo.FindAll(spec, PageRequest{})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}

	if total != 1 || len(usuarios) != 1 {
		t.Fatalf("got %d usuários (total %d), want 1", len(usuarios), total)
	}
	if usuarios[0].Nome != "João Silva" {
		t.Errorf("matched %q, want João Silva", usuarios[0].Nome)
	}
	if usuarios[0].Moto == nil || usuarios[0].Moto.Placa != "ABC1D23" {
		t.Error("moto should be preloaded on the matched usuário")
	}
}

func TestLocalizacaoDateRangeInclusive(t *testing.T) {
	db := newTestDB(t)
	repo := NewLocalizacaoRepository(db)

	patio := models.Patio{Nome: "Pátio A", Localizacao: "Rua X, 123"}
	mustCreate(t, db, &patio)
	setor := models.Setor{Nome: "A1", Fileira: 1, Vaga: 1, PatioID: patio.ID}
	mustCreate(t, db, &setor)

	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		moto := models.Moto{
			Nome:       fmt.Sprintf("Moto %d", i),
			Fabricante: "Honda",
			Cilindrada: 125,
			Placa:      fmt.Sprintf("DDD4D4%d", i),
			Status:     models.StatusDisponivel,
		}
		mustCreate(t, db, &moto)
		mustCreate(t, db, &models.LocalizacaoMoto{
			DataAtualizada: base.AddDate(0, 0, i),
			MotoID:         moto.ID,
			SetorID:        setor.ID,
		})
	}

	t1 := base
	t2 := base.AddDate(0, 0, 1)

	spec := specifications.LocalizacaoWithFilters(models.LocalizacaoMotoFilter{DataInicio: &t1, DataFim: &t2})
	_, total, err := repo.FindAll(spec, PageRequest{})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if total != 2 {
		t.Errorf("inclusive range matched %d, want 2 (both bounds included)", total)
	}

	spec = specifications.LocalizacaoWithFilters(models.LocalizacaoMotoFilter{DataInicio: &t2})
	_, total, err = repo.FindAll(spec, PageRequest{})
	if err != nil {
		t.Fatalf("FindAll lower bound: %v", err)
	}
	if total != 2 {
		t.Errorf("lower bound matched %d, want 2", total)
	}

	spec = specifications.LocalizacaoWithFilters(models.LocalizacaoMotoFilter{DataFim: &t1})
	_, total, err = repo.FindAll(spec, PageRequest{})
	if err != nil {
		t.Fatalf("FindAll upper bound: %v", err)
	}
	if total != 1 {
		t.Errorf("upper bound matched %d, want 1", total)
	}
}

func TestLocalizacaoDefaultSortOldestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewLocalizacaoRepository(db)

	patio := models.Patio{Nome: "Pátio A", Localizacao: "Rua X, 123"}
	mustCreate(t, db, &patio)
	setor := models.Setor{Nome: "A1", Fileira: 1, Vaga: 1, PatioID: patio.ID}
	mustCreate(t, db, &setor)

	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	// Inserted newest first so insertion order disagrees with the sort.
	for i := 2; i >= 0; i-- {
		moto := models.Moto{
			Nome:       fmt.Sprintf("Moto %d", i),
			Fabricante: "Honda",
			Cilindrada: 125,
			Placa:      fmt.Sprintf("EEE5E5%d", i),
			Status:     models.StatusDisponivel,
		}
		mustCreate(t, db, &moto)
		mustCreate(t, db, &models.LocalizacaoMoto{
			DataAtualizada: base.AddDate(0, 0, i),
			MotoID:         moto.ID,
			SetorID:        setor.ID,
		})
	}

	localizacoes, _, err := repo.FindAll(nil, PageRequest{})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(localizacoes) != 3 {
		t.Fatalf("got %d localizações, want 3", len(localizacoes))
	}
	for i := 1; i < len(localizacoes); i++ {
		if localizacoes[i].DataAtualizada.Before(localizacoes[i-1].DataAtualizada) {
			t.Errorf("default sort should be dataAtualizada ascending, got %v before %v",
				localizacoes[i-1].DataAtualizada, localizacoes[i].DataAtualizada)
		}
	}
}

func TestLocalizacaoFindByMotoID(t *testing.T) {
	db := newTestDB(t)
	repo := NewLocalizacaoRepository(db)

	patio := models.Patio{Nome: "Pátio A", Localizacao: "Rua X, 123"}
	mustCreate(t, db, &patio)
	setor := models.Setor{Nome: "A1", Fileira: 1, Vaga: 1, PatioID: patio.ID}
	mustCreate(t, db, &setor)
	moto := models.Moto{Nome: "Biz", Fabricante: "Honda", Cilindrada: 125, Placa: "ABC1D23", Status: models.StatusDisponivel}
	mustCreate(t, db, &moto)
	mustCreate(t, db, &models.LocalizacaoMoto{DataAtualizada: time.Now(), MotoID: moto.ID, SetorID: setor.ID})

	localizacao, err := repo.FindByMotoID(moto.ID)
	if err != nil {
		t.Fatalf("FindByMotoID: %v", err)
	}
	if localizacao.Moto.Nome != "Biz" || localizacao.Setor.Nome != "A1" {
		t.Errorf("preloads missing: moto=%q setor=%q", localizacao.Moto.Nome, localizacao.Setor.Nome)
	}

	_, err = repo.FindByMotoID(9999)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("missing moto err = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestPageRequestDefaults(t *testing.T) {
	var p PageRequest

	if p.Limit() != DefaultPageSize {
		t.Errorf("Limit() = %d, want %d", p.Limit(), DefaultPageSize)
	}
	if p.Offset() != 0 {
		t.Errorf("Offset() = %d, want 0", p.Offset())
	}
	if p.Order("nome") != "nome" {
		t.Errorf("Order() = %q, want nome", p.Order("nome"))
	}

	p = PageRequest{Page: 3, Size: 10, Sort: "placa", Desc: true}
	if p.Offset() != 20 {
		t.Errorf("Offset() = %d, want 20", p.Offset())
	}
	if p.Order("nome") != "placa DESC" {
		t.Errorf("Order() = %q, want placa DESC", p.Order("nome"))
	}
}
