package dto

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// CreateProductRequest alta por catálogo (sin movimiento; quantity opcional,
// por defecto 0). El alta con rastro de auditoría es /stock/entry/new.
type CreateProductRequest struct {
	Name         string  `json:"name"`
	Manufacturer *string `json:"manufacturer"`
	Model        *string `json:"model"`
	NFE          *string `json:"nfe"`
	DtNFE        *string `json:"dtNfe"`
	DtInclu      *string `json:"dtInclu"`
	HoraInclu    *string `json:"horaInclu"`
	Quantity     *int    `json:"quantity"`
	Nchagpc      *string `json:"nchagpc"`
	Sector       *string `json:"sector"`
	Unit         *string `json:"unit"`
}

// UpdateProductRequest edición de campos descriptivos. Quantity no aparece:
// la cantidad solo cambia a través del motor de stock.
type UpdateProductRequest struct {
	Name         *string `json:"name"`
	Manufacturer *string `json:"manufacturer"`
	Model        *string `json:"model"`
	NFE          *string `json:"nfe"`
	DtNFE        *string `json:"dtNfe"`
	DtInclu      *string `json:"dtInclu"`
	HoraInclu    *string `json:"horaInclu"`
	Nchagpc      *string `json:"nchagpc"`
	Sector       *string `json:"sector"`
	Unit         *string `json:"unit"`
}

// ProductDTO representación JSON de un producto.
type ProductDTO struct {
	ID           string     `json:"id"`
	Code         int        `json:"code"`
	Name         string     `json:"name"`
	Manufacturer *string    `json:"manufacturer"`
	Model        *string    `json:"model"`
	NFE          *string    `json:"nfe"`
	DtNFE        *time.Time `json:"dtNfe"`
	DtInclu      *time.Time `json:"dtInclu"`
	HoraInclu    *string    `json:"horaInclu"`
	Nchagpc      *string    `json:"nchagpc"`
	Sector       *string    `json:"sector"`
	Unit         *string    `json:"unit"`
	Quantity     int        `json:"quantity"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// FromProduct mapea la entidad al DTO.
func FromProduct(p *entity.Product) ProductDTO {
	return ProductDTO{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		Manufacturer: p.Manufacturer,
		Model:        p.Model,
		NFE:          p.NFE,
		DtNFE:        p.DtNFE,
		DtInclu:      p.DtInclu,
		HoraInclu:    p.HoraInclu,
		Nchagpc:      p.Nchagpc,
		Sector:       p.Sector,
		Unit:         p.Unit,
		Quantity:     p.Quantity,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
