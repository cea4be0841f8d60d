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

// ManufacturerUseCase CRUD de fabricantes. El nombre es único sin distinguir
// mayúsculas: "Dell" y "DELL" son el mismo fabricante.
type ManufacturerUseCase struct {
	repo repository.ManufacturerRepository
}

// NewManufacturerUseCase construye el caso de uso.
func NewManufacturerUseCase(repo repository.ManufacturerRepository) *ManufacturerUseCase {
	return &ManufacturerUseCase{repo: repo}
}

// Create crea un fabricante; nombre ya registrado (en cualquier
// capitalización) es conflicto.
func (uc *ManufacturerUseCase) Create(ctx context.Context, in dto.CreateManufacturerRequest) (*dto.ManufacturerDTO, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByNameFold(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	manufacturer := &entity.Manufacturer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Contact:   in.Contact,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, manufacturer); err != nil {
		return nil, err
	}
	out := dto.FromManufacturer(manufacturer)
	return &out, nil
}

// GetByID obtiene un fabricante por ID.
func (uc *ManufacturerUseCase) GetByID(ctx context.Context, id string) (*dto.ManufacturerDTO, error) {
	manufacturer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if manufacturer == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromManufacturer(manufacturer)
	return &out, nil
}

// Update edita un fabricante. Cambiar el nombre revalida la unicidad contra
// el resto del catálogo, ignorando al propio registro.
func (uc *ManufacturerUseCase) Update(ctx context.Context, id string, in dto.CreateManufacturerRequest) (*dto.ManufacturerDTO, error) {
	manufacturer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if manufacturer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		existing, err := uc.repo.GetByNameFold(ctx, in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		manufacturer.Name = in.Name
	}
	if in.Contact != nil {
		manufacturer.Contact = in.Contact
	}
	if in.Email != nil {
		manufacturer.Email = in.Email
	}
	if in.Phone != nil {
		manufacturer.Phone = in.Phone
	}
	if in.Address != nil {
		manufacturer.Address = in.Address
	}
	manufacturer.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, manufacturer); err != nil {
		return nil, err
	}
	out := dto.FromManufacturer(manufacturer)
	return &out, nil
}

// List lista fabricantes por nombre.
func (uc *ManufacturerUseCase) List(ctx context.Context) ([]dto.ManufacturerDTO, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ManufacturerDTO, 0, len(list))
	for _, m := range list {
		items = append(items, dto.FromManufacturer(m))
	}
	return items, nil
}

// Delete elimina un fabricante por ID.
func (uc *ManufacturerUseCase) Delete(ctx context.Context, id string) error {
	manufacturer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if manufacturer == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}
