package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo de productos. La cantidad en mano nunca se
// edita por aquí una vez creado el producto: ese campo es propiedad del motor
// de stock.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create alta por catálogo. Quantity es opcional (0 por defecto) y no genera
// movimiento; el alta con rastro de auditoría es la entrada de ítem nuevo.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductDTO, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	dtNFE, err := parseOptionalDate(in.DtNFE)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	dtInclu, err := parseOptionalDate(in.DtInclu)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	quantity := 0
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		quantity = *in.Quantity
	}
	now := time.Now()
	product := &entity.Product{
		Name:         in.Name,
		Manufacturer: in.Manufacturer,
		Model:        in.Model,
		NFE:          in.NFE,
		DtNFE:        dtNFE,
		DtInclu:      dtInclu,
		HoraInclu:    in.HoraInclu,
		Nchagpc:      in.Nchagpc,
		Sector:       in.Sector,
		Unit:         in.Unit,
		Quantity:     quantity,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductDTO, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// Update edita los campos descriptivos. DtInclu, una vez asignada, no se
// reescribe; Quantity no se toca.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductDTO, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Manufacturer != nil {
		product.Manufacturer = in.Manufacturer
	}
	if in.Model != nil {
		product.Model = in.Model
	}
	if in.NFE != nil {
		product.NFE = in.NFE
	}
	if in.DtNFE != nil {
		dtNFE, err := parseOptionalDate(in.DtNFE)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		product.DtNFE = dtNFE
	}
	if in.DtInclu != nil && product.DtInclu == nil {
		dtInclu, err := parseOptionalDate(in.DtInclu)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		product.DtInclu = dtInclu
	}
	if in.HoraInclu != nil {
		product.HoraInclu = in.HoraInclu
	}
	if in.Nchagpc != nil {
		product.Nchagpc = in.Nchagpc
	}
	if in.Sector != nil {
		product.Sector = in.Sector
	}
	if in.Unit != nil {
		product.Unit = in.Unit
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// List lista productos del más reciente al más antiguo.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) ([]dto.ProductDTO, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductDTO, 0, len(list))
	for _, p := range list {
		items = append(items, dto.FromProduct(p))
	}
	return items, nil
}

// Delete elimina un producto por ID. La base rechaza el borrado mientras
// existan movimientos que lo referencien.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	return uc.repo.Delete(ctx, id)
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
