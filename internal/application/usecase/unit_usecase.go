package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// UnitUseCase CRUD de unidades y sectores (datos de referencia de las
// salidas). Los nombres son únicos: por catálogo para unidades y por unidad
// para sectores.
type UnitUseCase struct {
	repo repository.UnitRepository
}

// NewUnitUseCase construye el caso de uso.
func NewUnitUseCase(repo repository.UnitRepository) *UnitUseCase {
	return &UnitUseCase{repo: repo}
}

// List lista unidades con sus sectores.
func (uc *UnitUseCase) List(ctx context.Context) ([]dto.UnitDTO, error) {
	units, err := uc.repo.ListUnits(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UnitDTO, 0, len(units))
	for _, u := range units {
		items = append(items, dto.FromUnit(u))
	}
	return items, nil
}

// CreateUnit crea una unidad; nombre duplicado es conflicto.
func (uc *UnitUseCase) CreateUnit(ctx context.Context, in dto.CreateUnitRequest) (*dto.UnitDTO, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetUnitByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	unit := &entity.Unit{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.CreateUnit(ctx, unit); err != nil {
		return nil, err
	}
	out := dto.FromUnit(unit)
	return &out, nil
}

// UpdateUnit renombra una unidad. No reescribe los nombres ya copiados en
// productos: el histórico conserva el nombre vigente en cada salida.
func (uc *UnitUseCase) UpdateUnit(ctx context.Context, id string, in dto.CreateUnitRequest) (*dto.UnitDTO, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	unit, err := uc.repo.GetUnitByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrUnitNotFound
	}
	existing, err := uc.repo.GetUnitByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, domain.ErrDuplicate
	}
	unit.Name = in.Name
	if err := uc.repo.UpdateUnit(ctx, unit); err != nil {
		return nil, err
	}
	out := dto.FromUnit(unit)
	return &out, nil
}

// DeleteUnit elimina una unidad sin sectores asociados.
func (uc *UnitUseCase) DeleteUnit(ctx context.Context, id string) error {
	unit, err := uc.repo.GetUnitByID(ctx, id)
	if err != nil {
		return err
	}
	if unit == nil {
		return domain.ErrUnitNotFound
	}
	count, err := uc.repo.CountSectors(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrUnitHasSectors
	}
	return uc.repo.DeleteUnit(ctx, id)
}

// CreateSector crea un sector dentro de una unidad existente.
func (uc *UnitUseCase) CreateSector(ctx context.Context, unitID string, in dto.CreateSectorRequest) (*dto.SectorDTO, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	unit, err := uc.repo.GetUnitByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrUnitNotFound
	}
	existing, err := uc.repo.GetSectorByName(ctx, unitID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	sector := &entity.Sector{
		ID:        uuid.New().String(),
		UnitID:    unitID,
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.CreateSector(ctx, sector); err != nil {
		return nil, err
	}
	out := dto.FromSector(sector)
	return &out, nil
}

// UpdateSector renombra un sector de la unidad indicada.
func (uc *UnitUseCase) UpdateSector(ctx context.Context, unitID, sectorID string, in dto.CreateSectorRequest) (*dto.SectorDTO, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	sector, err := uc.repo.GetSectorByIDAndUnit(ctx, sectorID, unitID)
	if err != nil {
		return nil, err
	}
	if sector == nil {
		return nil, domain.ErrSectorNotFound
	}
	existing, err := uc.repo.GetSectorByName(ctx, unitID, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != sectorID {
		return nil, domain.ErrDuplicate
	}
	sector.Name = in.Name
	if err := uc.repo.UpdateSector(ctx, sector); err != nil {
		return nil, err
	}
	out := dto.FromSector(sector)
	return &out, nil
}

// DeleteSector elimina un sector de la unidad indicada.
func (uc *UnitUseCase) DeleteSector(ctx context.Context, unitID, sectorID string) error {
	sector, err := uc.repo.GetSectorByIDAndUnit(ctx, sectorID, unitID)
	if err != nil {
		return err
	}
	if sector == nil {
		return domain.ErrSectorNotFound
	}
	return uc.repo.DeleteSector(ctx, sectorID, unitID)
}
