package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/infrastructure/kvstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var ctx = context.Background()

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

type masterStack struct {
	items      *kvstore.ItemRepo
	categories *kvstore.CategoryRepo
	txs        *kvstore.TransactionRepo
	itemUC     *usecase.ItemUseCase
	categoryUC *usecase.CategoryUseCase
}

func newMasterStack(t *testing.T) *masterStack {
	t.Helper()
	store := kvstore.NewStore(kvstore.NewMemoryDriver())
	items := kvstore.NewItemRepository(store)
	categories := kvstore.NewCategoryRepository(store)
	txs := kvstore.NewTransactionRepository(store)
	runner := kvstore.NewMasterTxRunner(store)
	return &masterStack{
		items:      items,
		categories: categories,
		txs:        txs,
		itemUC:     usecase.NewItemUseCase(items, runner),
		categoryUC: usecase.NewCategoryUseCase(categories, runner),
	}
}

func (s *masterStack) seedCategory(t *testing.T, name string) *entity.Category {
	t.Helper()
	c := &entity.Category{ID: uuid.New().String(), Name: name, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, s.categories.Upsert(c))
	return c
}

func (s *masterStack) createItem(t *testing.T, code string) *dto.ItemResponse {
	t.Helper()
	out, err := s.itemUC.Upsert(ctx, dto.ItemPatch{
		Code:     strPtr(code),
		Name:     strPtr("Ítem " + code),
		Category: strPtr("Plástico"),
		Type:     strPtr(entity.ItemTypeRawMaterial),
		Min:      intPtr(10),
	})
	require.NoError(t, err)
	return out
}

func TestItemUpsert_CrearYEditar(t *testing.T) {
	s := newMasterStack(t)
	s.seedCategory(t, "Plástico")

	created := s.createItem(t, "MP-PLS-01")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 0, created.Stock, "un ítem nuevo nace con stock cero")
	assert.True(t, created.LowStock, "0 ≤ mínimo 10")

	// edición parcial: solo cambia el nombre, el resto queda intacto
	edited, err := s.itemUC.Upsert(ctx, dto.ItemPatch{ID: created.ID, Name: strPtr("Granulado Plástico")})
	require.NoError(t, err)
	assert.Equal(t, "Granulado Plástico", edited.Name)
	assert.Equal(t, created.Code, edited.Code)
	assert.Equal(t, created.Min, edited.Min)
}

func TestItemUpsert_EditarConservaElStock(t *testing.T) {
	s := newMasterStack(t)
	s.seedCategory(t, "Plástico")
	created := s.createItem(t, "MP-PLS-01")

	// el motor de aprobación dejó stock; una edición del formulario no lo toca
	stored, err := s.items.GetByID(created.ID)
	require.NoError(t, err)
	stored.Stock = 340
	require.NoError(t, s.items.Upsert(stored))

	edited, err := s.itemUC.Upsert(ctx, dto.ItemPatch{ID: created.ID, Min: intPtr(50)})
	require.NoError(t, err)
	assert.Equal(t, 340, edited.Stock, "editar el ítem jamás muta el stock")
}

func TestItemUpsert_Validaciones(t *testing.T) {
	s := newMasterStack(t)
	s.seedCategory(t, "Plástico")
	existing := s.createItem(t, "MP-PLS-01")
	other := s.createItem(t, "MP-PLS-02")

	cases := []struct {
		name string
		in   dto.ItemPatch
		want error
	}{
		{"crear sin campos obligatorios", dto.ItemPatch{Code: strPtr("X")}, domain.ErrInvalidInput},
		{"código duplicado al crear", dto.ItemPatch{
			Code: strPtr("MP-PLS-01"), Name: strPtr("Otro"), Category: strPtr("Plástico"), Type: strPtr(entity.ItemTypeRawMaterial),
		}, domain.ErrDuplicate},
		{"código duplicado al editar", dto.ItemPatch{ID: other.ID, Code: strPtr("MP-PLS-01")}, domain.ErrDuplicate},
		{"tipo desconocido", dto.ItemPatch{ID: existing.ID, Type: strPtr("SERVICIO")}, domain.ErrInvalidInput},
		{"mínimo negativo", dto.ItemPatch{ID: existing.ID, Min: intPtr(-1)}, domain.ErrInvalidInput},
		{"categoría inexistente", dto.ItemPatch{ID: existing.ID, Category: strPtr("Vidrio")}, domain.ErrInvalidInput},
		{"editar ítem inexistente", dto.ItemPatch{ID: "no-existe", Name: strPtr("X")}, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.itemUC.Upsert(ctx, tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// el patch inválido no dejó cambios parciales
	got, err := s.items.GetByID(existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "MP-PLS-01", got.Code)
}

func TestItemUpsert_MismoCodigoMismoID(t *testing.T) {
	s := newMasterStack(t)
	s.seedCategory(t, "Plástico")
	created := s.createItem(t, "MP-PLS-01")

	// reenviar el propio código no es colisión
	_, err := s.itemUC.Upsert(ctx, dto.ItemPatch{ID: created.ID, Code: strPtr("MP-PLS-01")})
	assert.NoError(t, err)
}

func TestItemUpsert_CodigoUnicoBajoConcurrencia(t *testing.T) {
	s := newMasterStack(t)
	s.seedCategory(t, "Plástico")

	// N creaciones concurrentes del mismo código: el chequeo de unicidad y la
	// escritura corren en una sola sección crítica, así que exactamente una
	// gana y el resto colisiona
	const writers = 16
	patch := dto.ItemPatch{
		Code:     strPtr("DUP-01"),
		Name:     strPtr("Duplicado"),
		Category: strPtr("Plástico"),
		Type:     strPtr(entity.ItemTypeRawMaterial),
	}

	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.itemUC.Upsert(ctx, patch)
		}(i)
	}
	wg.Wait()

	var created, duplicated int
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case assert.ErrorIs(t, err, domain.ErrDuplicate):
			duplicated++
		}
	}
	assert.Equal(t, 1, created, "exactamente una creación debe ganar")
	assert.Equal(t, writers-1, duplicated)

	all, err := s.items.List()
	require.NoError(t, err)
	assert.Len(t, all, 1, "jamás persisten dos ítems con el mismo código")
}

func TestItemDelete_BloqueadoPorTransacciones(t *testing.T) {
	s := newMasterStack(t)
	s.seedCategory(t, "Plástico")
	created := s.createItem(t, "MP-PLS-01")

	// cualquier transacción del libro bloquea el borrado, incluso rechazada
	require.NoError(t, s.txs.Append(&entity.Transaction{
		ID:     uuid.New().String(),
		Kind:   entity.MovementIN,
		ItemID: created.ID,
		Qty:    5,
		Status: entity.StatusRejected,
		Date:   time.Now(),
	}))

	err := s.itemUC.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := s.items.GetByID(created.ID)
	require.NoError(t, err)
	assert.NotNil(t, got, "el ítem bloqueado sigue existiendo")
}

func TestItemDelete_SinReferencias(t *testing.T) {
	s := newMasterStack(t)
	s.seedCategory(t, "Plástico")
	created := s.createItem(t, "MP-PLS-01")

	require.NoError(t, s.itemUC.Delete(ctx, created.ID))

	got, err := s.items.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, s.itemUC.Delete(ctx, "no-existe"), domain.ErrNotFound)
}

func TestItemList_BusquedaPorNombreYCodigo(t *testing.T) {
	s := newMasterStack(t)
	s.seedCategory(t, "Plástico")
	s.createItem(t, "MP-PLS-01")
	s.createItem(t, "PT-BOL-07")

	all, err := s.itemUC.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byCode, err := s.itemUC.List("pt-bol")
	require.NoError(t, err)
	require.Len(t, byCode, 1)
	assert.Equal(t, "PT-BOL-07", byCode[0].Code)
}
