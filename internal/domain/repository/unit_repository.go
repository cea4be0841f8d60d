package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// UnitRepository define el puerto de persistencia para unidades y sectores.
// GetSectorByIDAndUnit resuelve un sector solo si su unidad padre coincide,
// que es la validación exigida en las salidas de stock.
type UnitRepository interface {
	CreateUnit(ctx context.Context, unit *entity.Unit) error
	GetUnitByID(ctx context.Context, id string) (*entity.Unit, error)
	GetUnitByName(ctx context.Context, name string) (*entity.Unit, error)
	UpdateUnit(ctx context.Context, unit *entity.Unit) error
	DeleteUnit(ctx context.Context, id string) error
	ListUnits(ctx context.Context) ([]*entity.Unit, error)

	CreateSector(ctx context.Context, sector *entity.Sector) error
	GetSectorByIDAndUnit(ctx context.Context, sectorID, unitID string) (*entity.Sector, error)
	GetSectorByName(ctx context.Context, unitID, name string) (*entity.Sector, error)
	UpdateSector(ctx context.Context, sector *entity.Sector) error
	DeleteSector(ctx context.Context, sectorID, unitID string) error
	CountSectors(ctx context.Context, unitID string) (int, error)
}
