package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ManufacturerRepository define el puerto de persistencia para fabricantes.
// GetByNameFold busca por nombre sin distinguir mayúsculas: el catálogo no
// admite dos fabricantes cuyo nombre solo difiera en capitalización.
type ManufacturerRepository interface {
	Create(ctx context.Context, manufacturer *entity.Manufacturer) error
	GetByID(ctx context.Context, id string) (*entity.Manufacturer, error)
	GetByNameFold(ctx context.Context, name string) (*entity.Manufacturer, error)
	Update(ctx context.Context, manufacturer *entity.Manufacturer) error
	List(ctx context.Context) ([]*entity.Manufacturer, error)
	Delete(ctx context.Context, id string) error
}
