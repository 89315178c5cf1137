package kvstore_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/infrastructure/kvstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newItem(code string) *entity.Item {
	return &entity.Item{
		ID: uuid.New().String(), Code: code, Name: "Ítem " + code,
		Category: "Plástico", Type: entity.ItemTypeRawMaterial,
		Stock: 100, Min: 10, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
}

func TestMemoryDriver_CargaDeDatosCorruptosDejaElDefault(t *testing.T) {
	drv := kvstore.NewMemoryDriver()
	drv.SaveRaw(kvstore.KeyItems, []byte(`{esto no es json`))

	// el contrato de Load: nunca falla, ante corrupción el caller conserva
	// su valor por defecto
	items := []*entity.Item{newItem("DEFAULT")}
	drv.Load(kvstore.KeyItems, &items)

	require.Len(t, items, 1)
	assert.Equal(t, "DEFAULT", items[0].Code)
}

func TestMemoryDriver_ClaveAusente(t *testing.T) {
	drv := kvstore.NewMemoryDriver()

	var items []*entity.Item
	drv.Load(kvstore.KeyItems, &items)
	assert.Nil(t, items)
}

func TestItemRepo_OrdenDeInsercionYUpsert(t *testing.T) {
	store := kvstore.NewStore(kvstore.NewMemoryDriver())
	repo := kvstore.NewItemRepository(store)

	a, b, c := newItem("A"), newItem("B"), newItem("C")
	for _, it := range []*entity.Item{a, b, c} {
		require.NoError(t, repo.Upsert(it))
	}

	// reemplazar B no cambia su posición
	b2 := *b
	b2.Stock = 999
	require.NoError(t, repo.Upsert(&b2))

	got, err := repo.List()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{got[0].Code, got[1].Code, got[2].Code})
	assert.Equal(t, 999, got[1].Stock)
}

func TestItemRepo_GetAusenteDevuelveNilNil(t *testing.T) {
	store := kvstore.NewStore(kvstore.NewMemoryDriver())
	repo := kvstore.NewItemRepository(store)

	got, err := repo.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, repo.Delete("no-existe"), domain.ErrNotFound)
}

func TestTransactionRepo_AppendYUpdate(t *testing.T) {
	store := kvstore.NewStore(kvstore.NewMemoryDriver())
	repo := kvstore.NewTransactionRepository(store)

	tx := &entity.Transaction{
		ID: uuid.New().String(), Kind: entity.MovementIN, ItemID: "i1", Qty: 5,
		Status: entity.StatusPending, Date: time.Now(), CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Append(tx))

	tx.Status = entity.StatusApproved
	require.NoError(t, repo.Update(tx))

	got, err := repo.GetByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, got.Status)

	exists, err := repo.ExistsByItem("i1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByItem("i2")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSQLiteDriver_PersisteEntreAperturas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "almacen.db")

	drv, err := kvstore.NewSQLiteDriver(path)
	require.NoError(t, err)

	repo := kvstore.NewItemRepository(kvstore.NewStore(drv))
	item := newItem("MP-PLS-01")
	require.NoError(t, repo.Upsert(item))
	require.NoError(t, drv.Close())

	// reabrir el archivo recupera la colección completa
	drv2, err := kvstore.NewSQLiteDriver(path)
	require.NoError(t, err)
	defer drv2.Close()

	repo2 := kvstore.NewItemRepository(kvstore.NewStore(drv2))
	got, err := repo2.GetByCode("MP-PLS-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, 100, got.Stock)
}

func TestSQLiteDriver_SobrescribeLaMismaClave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "almacen.db")
	drv, err := kvstore.NewSQLiteDriver(path)
	require.NoError(t, err)
	defer drv.Close()

	require.NoError(t, drv.Save(kvstore.KeyCategories, []string{"a"}))
	require.NoError(t, drv.Save(kvstore.KeyCategories, []string{"a", "b"}))

	var got []string
	drv.Load(kvstore.KeyCategories, &got)
	assert.Equal(t, []string{"a", "b"}, got)
}
