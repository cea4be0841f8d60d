package stock_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

const testUser = "00000000-0000-0000-0000-0000000000aa"

func newUseCase() (*stock.RegisterMovementUseCase, *memStore) {
	store := newMemStore()
	return stock.NewRegisterMovementUseCase(&stubTxRunner{store: store}), store
}

// ──────────────────────────────────────────────────────────────────────────────
// Entry
// ──────────────────────────────────────────────────────────────────────────────

func TestEntry_SumaCantidadYCreaMovimientoIN(t *testing.T) {
	uc, store := newUseCase()
	p := seedNamedProduct(store, 1, 10)

	product, movement, err := uc.Entry(context.Background(), testUser, dto.EntryRequest{
		ProductID: p.ID, Quantity: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, 15, product.Quantity, "la cantidad debe sumarse")
	assert.Equal(t, entity.MovementTypeIN, movement.Type)
	assert.Equal(t, 5, movement.Quantity)
	assert.Equal(t, p.ID, movement.ProductID)
	assert.Equal(t, testUser, movement.UserID)

	stored, ok := store.productByID(p.ID)
	require.True(t, ok)
	assert.Equal(t, 15, stored.Quantity, "el producto persistido debe reflejar la suma")
	assert.Equal(t, 1, store.movementCount())
}

func TestEntry_ProductoInexistente(t *testing.T) {
	uc, store := newUseCase()

	_, _, err := uc.Entry(context.Background(), testUser, dto.EntryRequest{
		ProductID: "no-existe", Quantity: 3,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Equal(t, 0, store.movementCount(), "no debe quedar movimiento")
}

func TestEntry_CantidadInvalida(t *testing.T) {
	uc, store := newUseCase()
	p := seedNamedProduct(store, 1, 10)

	for _, qty := range []int{0, -1} {
		_, _, err := uc.Entry(context.Background(), testUser, dto.EntryRequest{
			ProductID: p.ID, Quantity: qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	stored, _ := store.productByID(p.ID)
	assert.Equal(t, 10, stored.Quantity, "la cantidad no debe cambiar")
	assert.Equal(t, 0, store.movementCount())
}

func TestEntry_ContextoCanceladoNoMutaEstado(t *testing.T) {
	uc, store := newUseCase()
	p := seedNamedProduct(store, 1, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := uc.Entry(ctx, testUser, dto.EntryRequest{ProductID: p.ID, Quantity: 5})
	assert.ErrorIs(t, err, context.Canceled,
		"la cancelación debe llegar hasta las consultas dentro de la transacción")

	stored, _ := store.productByID(p.ID)
	assert.Equal(t, 10, stored.Quantity, "el rollback no deja cambios")
	assert.Equal(t, 0, store.movementCount())
}

// ──────────────────────────────────────────────────────────────────────────────
// EntryNewItem
// ──────────────────────────────────────────────────────────────────────────────

func TestEntryNewItem_CreaProductoConCodigoYMovimiento(t *testing.T) {
	uc, _ := newUseCase()

	product, movement, err := uc.EntryNewItem(context.Background(), testUser, dto.EntryNewItemRequest{
		Name:     "Monitor LED",
		Quantity: 7,
		NFE:      strptr("NF-001"),
		DtNFE:    strptr("2026-08-01"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, product.Code, "el primer producto recibe el código 1")
	assert.Equal(t, 7, product.Quantity)
	assert.NotEmpty(t, product.ID, "el servidor asigna el id")
	require.NotNil(t, product.DtInclu, "la fecha de inclusión la pone el servidor")
	require.NotNil(t, product.HoraInclu)
	require.NotNil(t, product.DtNFE)
	assert.Equal(t, "2026-08-01", product.DtNFE.Format("2006-01-02"))

	assert.Equal(t, entity.MovementTypeIN, movement.Type)
	assert.Equal(t, 7, movement.Quantity)
	assert.Equal(t, product.ID, movement.ProductID)

	// Segundo producto: código secuencial.
	p2, _, err := uc.EntryNewItem(context.Background(), testUser, dto.EntryNewItemRequest{
		Name: "Teclado", Quantity: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, p2.Code)
}

func TestEntryNewItem_Invalido(t *testing.T) {
	uc, store := newUseCase()

	_, _, err := uc.EntryNewItem(context.Background(), testUser, dto.EntryNewItemRequest{Name: "", Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre obligatorio")

	_, _, err = uc.EntryNewItem(context.Background(), testUser, dto.EntryNewItemRequest{Name: "X", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad mínima 1")

	_, _, err = uc.EntryNewItem(context.Background(), testUser, dto.EntryNewItemRequest{
		Name: "X", Quantity: 1, DtNFE: strptr("31/08/2026"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha con formato no soportado")

	assert.Equal(t, 0, store.movementCount())
}

// ──────────────────────────────────────────────────────────────────────────────
// Exit
// ──────────────────────────────────────────────────────────────────────────────

// exitFixture producto + unidad con sector listos para salidas.
type exitFixture struct {
	product entity.Product
	unit    entity.Unit
	sector  entity.Sector
}

func seedExitFixture(store *memStore, qty int) exitFixture {
	p := seedNamedProduct(store, 1, qty)
	u := store.seedUnit("Hospital Central")
	s := store.seedSector(u.ID, "Radiología")
	return exitFixture{product: p, unit: u, sector: s}
}

func (f exitFixture) request(qty int) dto.ExitRequest {
	return dto.ExitRequest{
		ProductID: f.product.ID,
		Quantity:  qty,
		UnitID:    f.unit.ID,
		SectorID:  f.sector.ID,
	}
}

func TestExit_DescuentaYCopiaDestino(t *testing.T) {
	uc, store := newUseCase()
	f := seedExitFixture(store, 10)
	supplier := strptr("00000000-0000-0000-0000-0000000000bb")

	req := f.request(3)
	req.SupplierID = supplier
	product, movement, err := uc.Exit(context.Background(), testUser, req)
	require.NoError(t, err)

	assert.Equal(t, 7, product.Quantity)
	require.NotNil(t, product.Unit)
	require.NotNil(t, product.Sector)
	assert.Equal(t, "Hospital Central", *product.Unit, "se copia el nombre resuelto, no el id")
	assert.Equal(t, "Radiología", *product.Sector)

	assert.Equal(t, entity.MovementTypeOUT, movement.Type)
	assert.Equal(t, 3, movement.Quantity)
	require.NotNil(t, movement.SupplierID)
	assert.Equal(t, *supplier, *movement.SupplierID)
}

func TestExit_TopePorSalida(t *testing.T) {
	uc, store := newUseCase()
	f := seedExitFixture(store, 100)

	// Exactamente el tope: permitido.
	product, _, err := uc.Exit(context.Background(), testUser, f.request(stock.MaxExitQuantity))
	require.NoError(t, err)
	assert.Equal(t, 95, product.Quantity)

	// Uno por encima: rechazado sin tocar nada.
	_, _, err = uc.Exit(context.Background(), testUser, f.request(stock.MaxExitQuantity+1))
	assert.ErrorIs(t, err, domain.ErrMaxExitQuantity)
	stored, _ := store.productByID(f.product.ID)
	assert.Equal(t, 95, stored.Quantity)
	assert.Equal(t, 1, store.movementCount())
}

func TestExit_StockJustoYStockInsuficiente(t *testing.T) {
	uc, store := newUseCase()
	f := seedExitFixture(store, 3)

	// Sacar exactamente lo que hay deja el producto en cero.
	product, _, err := uc.Exit(context.Background(), testUser, f.request(3))
	require.NoError(t, err)
	assert.Equal(t, 0, product.Quantity)

	// Reponer a 3 y pedir 4: insuficiente, el estado no cambia.
	_, _, err = uc.Entry(context.Background(), testUser, dto.EntryRequest{ProductID: f.product.ID, Quantity: 3})
	require.NoError(t, err)

	_, _, err = uc.Exit(context.Background(), testUser, f.request(4))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	stored, _ := store.productByID(f.product.ID)
	assert.Equal(t, 3, stored.Quantity, "el rechazo no debe descontar")
	assert.Equal(t, 2, store.movementCount(), "solo la salida válida y la entrada")
}

func TestExit_ValidacionesDeDestino(t *testing.T) {
	uc, store := newUseCase()
	f := seedExitFixture(store, 10)
	otherUnit := store.seedUnit("Campus Norte")

	// Sin unidad/sector.
	req := f.request(1)
	req.UnitID = ""
	_, _, err := uc.Exit(context.Background(), testUser, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Unidad inexistente.
	req = f.request(1)
	req.UnitID = "no-existe"
	_, _, err = uc.Exit(context.Background(), testUser, req)
	assert.ErrorIs(t, err, domain.ErrUnitNotFound)

	// Sector de otra unidad: no aplica.
	req = f.request(1)
	req.UnitID = otherUnit.ID
	_, _, err = uc.Exit(context.Background(), testUser, req)
	assert.ErrorIs(t, err, domain.ErrSectorNotFound)

	// Producto inexistente gana a cualquier otra validación.
	req = f.request(99)
	req.ProductID = "no-existe"
	_, _, err = uc.Exit(context.Background(), testUser, req)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	stored, _ := store.productByID(f.product.ID)
	assert.Equal(t, 10, stored.Quantity)
	assert.Equal(t, 0, store.movementCount())
}

func TestExit_OverrideNchagpc(t *testing.T) {
	uc, store := newUseCase()
	p := store.seedProduct(entity.Product{Name: "Scanner", Quantity: 10, Nchagpc: strptr("GPC-1")})
	u := store.seedUnit("Sede")
	s := store.seedSector(u.ID, "Archivo")

	base := dto.ExitRequest{ProductID: p.ID, Quantity: 1, UnitID: u.ID, SectorID: s.ID}

	// Sin override: conserva el valor.
	product, _, err := uc.Exit(context.Background(), testUser, base)
	require.NoError(t, err)
	require.NotNil(t, product.Nchagpc)
	assert.Equal(t, "GPC-1", *product.Nchagpc)

	// Override vacío: también conserva.
	req := base
	req.Nchagpc = strptr("")
	product, _, err = uc.Exit(context.Background(), testUser, req)
	require.NoError(t, err)
	assert.Equal(t, "GPC-1", *product.Nchagpc)

	// Override con valor: reemplaza.
	req = base
	req.Nchagpc = strptr("GPC-2")
	product, _, err = uc.Exit(context.Background(), testUser, req)
	require.NoError(t, err)
	assert.Equal(t, "GPC-2", *product.Nchagpc)
}

// Dos salidas concurrentes de 5 sobre un producto con 5: exactamente una gana
// y la cantidad final es 0, nunca negativa.
func TestExit_ConcurrenciaNoDejaStockNegativo(t *testing.T) {
	uc, store := newUseCase()
	f := seedExitFixture(store, 5)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = uc.Exit(context.Background(), testUser, f.request(5))
		}(i)
	}
	wg.Wait()

	var oks, insufficient int
	for _, err := range errs {
		switch {
		case err == nil:
			oks++
		case errors.Is(err, domain.ErrInsufficientStock):
			insufficient++
		default:
			t.Fatalf("error inesperado: %v", err)
		}
	}
	assert.Equal(t, 1, oks, "solo una salida debe ganar")
	assert.Equal(t, 1, insufficient, "la otra debe fallar por stock insuficiente")

	stored, _ := store.productByID(f.product.ID)
	assert.Equal(t, 0, stored.Quantity)
	assert.Equal(t, 1, store.movementCount())
}

// ──────────────────────────────────────────────────────────────────────────────
// ListMovements
// ──────────────────────────────────────────────────────────────────────────────

func TestListMovements_LimitePorDefectoYFiltroDeTipo(t *testing.T) {
	store := newMemStore()
	uc := stock.NewListMovementsUseCase(&memMovementRepo{store: store})
	p := seedNamedProduct(store, 1, 0)

	base := mustTime(t, "2026-08-01T10:00:00Z")
	for i := 0; i < 25; i++ {
		store.seedMovement(entity.Movement{
			ProductID: p.ID,
			Type:      entity.MovementTypeIN,
			Quantity:  1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	store.seedMovement(entity.Movement{
		ProductID: p.ID,
		Type:      entity.MovementTypeOUT,
		Quantity:  2,
		CreatedAt: base.Add(time.Hour),
	})

	// Sin limit: aplica el tope por defecto, más reciente primero.
	items, err := uc.List(context.Background(), dto.ListMovementsQuery{})
	require.NoError(t, err)
	assert.Len(t, items, 20)
	assert.Equal(t, entity.MovementTypeOUT, items[0].Type, "el más reciente va primero")

	// Filtro por tipo.
	items, err = uc.List(context.Background(), dto.ListMovementsQuery{Type: entity.MovementTypeOUT})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	// Tipo desconocido: rechazado.
	_, err = uc.List(context.Background(), dto.ListMovementsQuery{Type: "TRANSFER"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
