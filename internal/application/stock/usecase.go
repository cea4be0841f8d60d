package stock

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// MaxExitQuantity tope de unidades por salida. Es una regla de control física
// (ninguna retirada individual supera 5 unidades) y se aplica siempre en el
// servidor, sin importar lo que valide el cliente.
const MaxExitQuantity = 5

// RegisterMovementUseCase registra entradas y salidas de stock de forma
// transaccional, con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
//
// Cada operación relee la cantidad actual dentro de su propia transacción:
// no hay caché de cantidades entre la lectura y la escritura, así dos salidas
// concurrentes sobre el mismo producto se serializan y el chequeo de stock
// insuficiente nunca se salta.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// Entry registra una entrada sobre un producto existente: suma la cantidad y
// crea el movimiento IN en la misma transacción. Devuelve el producto
// actualizado y el movimiento creado.
func (uc *RegisterMovementUseCase) Entry(ctx context.Context, userID string, in dto.EntryRequest) (*entity.Product, *entity.Movement, error) {
	if in.ProductID == "" || in.Quantity < 1 {
		return nil, nil, domain.ErrInvalidInput
	}

	var (
		product  *entity.Product
		movement *entity.Movement
	)
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
		_ repository.UnitRepository,
	) error {
		p, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrProductNotFound
		}
		now := time.Now()
		p.Quantity += in.Quantity
		p.UpdatedAt = now
		if err := productRepo.Update(ctx, p); err != nil {
			return err
		}
		m := &entity.Movement{
			ProductID: p.ID,
			UserID:    userID,
			Type:      entity.MovementTypeIN,
			Quantity:  in.Quantity,
			CreatedAt: now,
		}
		if err := movementRepo.Create(ctx, m); err != nil {
			return err
		}
		product, movement = p, m
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return product, movement, nil
}

// EntryNewItem crea un producto nuevo y su movimiento IN inicial en la misma
// unidad atómica. El servidor asigna id, código secuencial y fecha/hora de
// inclusión a partir del inicio de la transacción. A diferencia del alta por
// catálogo, este camino siempre produce stock y rastro de auditoría juntos.
func (uc *RegisterMovementUseCase) EntryNewItem(ctx context.Context, userID string, in dto.EntryNewItemRequest) (*entity.Product, *entity.Movement, error) {
	if in.Name == "" || in.Quantity < 1 {
		return nil, nil, domain.ErrInvalidInput
	}
	dtNFE, err := parseOptionalDate(in.DtNFE)
	if err != nil {
		return nil, nil, domain.ErrInvalidInput
	}

	var (
		product  *entity.Product
		movement *entity.Movement
	)
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
		_ repository.UnitRepository,
	) error {
		now := time.Now()
		hora := now.Format("15:04")
		p := &entity.Product{
			Name:         in.Name,
			Manufacturer: in.Manufacturer,
			Model:        in.Model,
			NFE:          in.NFE,
			DtNFE:        dtNFE,
			DtInclu:      &now,
			HoraInclu:    &hora,
			Nchagpc:      in.Nchagpc,
			Sector:       in.Sector,
			Unit:         in.Unit,
			Quantity:     in.Quantity,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := productRepo.Create(ctx, p); err != nil {
			return err
		}
		m := &entity.Movement{
			ProductID: p.ID,
			UserID:    userID,
			Type:      entity.MovementTypeIN,
			Quantity:  in.Quantity,
			CreatedAt: now,
		}
		if err := movementRepo.Create(ctx, m); err != nil {
			return err
		}
		product, movement = p, m
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return product, movement, nil
}

// Exit registra una salida. Precondiciones, en orden y cada una con su modo de
// fallo propio:
//
//  1. el producto existe                      → ErrProductNotFound
//  2. 1 ≤ cantidad ≤ MaxExitQuantity          → ErrInvalidInput / ErrMaxExitQuantity
//  3. unitId y sectorId presentes             → ErrInvalidInput
//  4. la unidad existe                        → ErrUnitNotFound
//  5. el sector pertenece a esa unidad        → ErrSectorNotFound
//  6. stock suficiente                        → ErrInsufficientStock
//
// Solo si todo pasa: resta la cantidad, copia los nombres de sector/unidad
// resueltos sobre el producto (snapshot histórico), aplica el override de
// nchagpc si vino, y crea el movimiento OUT con el proveedor opcional.
func (uc *RegisterMovementUseCase) Exit(ctx context.Context, userID string, in dto.ExitRequest) (*entity.Product, *entity.Movement, error) {
	if in.ProductID == "" {
		return nil, nil, domain.ErrInvalidInput
	}

	var (
		product  *entity.Product
		movement *entity.Movement
	)
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
		unitRepo repository.UnitRepository,
	) error {
		p, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrProductNotFound
		}
		if in.Quantity < 1 {
			return domain.ErrInvalidInput
		}
		if in.Quantity > MaxExitQuantity {
			return domain.ErrMaxExitQuantity
		}
		if in.UnitID == "" || in.SectorID == "" {
			return domain.ErrInvalidInput
		}
		unit, err := unitRepo.GetUnitByID(ctx, in.UnitID)
		if err != nil {
			return err
		}
		if unit == nil {
			return domain.ErrUnitNotFound
		}
		sector, err := unitRepo.GetSectorByIDAndUnit(ctx, in.SectorID, in.UnitID)
		if err != nil {
			return err
		}
		if sector == nil {
			return domain.ErrSectorNotFound
		}
		if p.Quantity < in.Quantity {
			return domain.ErrInsufficientStock
		}

		now := time.Now()
		sectorName, unitName := sector.Name, unit.Name
		p.Quantity -= in.Quantity
		p.Sector = &sectorName
		p.Unit = &unitName
		if in.Nchagpc != nil && *in.Nchagpc != "" {
			p.Nchagpc = in.Nchagpc
		}
		p.UpdatedAt = now
		if err := productRepo.Update(ctx, p); err != nil {
			return err
		}
		m := &entity.Movement{
			ProductID:  p.ID,
			UserID:     userID,
			Type:       entity.MovementTypeOUT,
			Quantity:   in.Quantity,
			SupplierID: in.SupplierID,
			CreatedAt:  now,
		}
		if err := movementRepo.Create(ctx, m); err != nil {
			return err
		}
		product, movement = p, m
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return product, movement, nil
}

// parseOptionalDate acepta fecha ISO ("2006-01-02") o timestamp RFC 3339.
func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, *s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
