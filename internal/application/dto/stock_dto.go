package dto

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// Los nombres JSON siguen el contrato camelCase que consume el dashboard.

// EntryRequest entrada sobre un producto existente.
type EntryRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// EntryNewItemRequest alta de producto nuevo con su entrada inicial.
type EntryNewItemRequest struct {
	Name         string  `json:"name"`
	Manufacturer *string `json:"manufacturer"`
	Model        *string `json:"model"`
	NFE          *string `json:"nfe"`
	DtNFE        *string `json:"dtNfe"` // ISO "2006-01-02" o RFC 3339
	Quantity     int     `json:"quantity"`
	Nchagpc      *string `json:"nchagpc"`
	Sector       *string `json:"sector"`
	Unit         *string `json:"unit"`
}

// ExitRequest salida de stock hacia una unidad/sector.
type ExitRequest struct {
	ProductID  string  `json:"productId"`
	Quantity   int     `json:"quantity"`
	Nchagpc    *string `json:"nchagpc"` // override opcional; vacío = conservar
	UnitID     string  `json:"unitId"`
	SectorID   string  `json:"sectorId"`
	SupplierID *string `json:"supplierId"`
}

// ListMovementsQuery filtros del listado (parseados por el handler).
type ListMovementsQuery struct {
	Limit int
	Type  string
	From  *time.Time
	To    *time.Time
}

// MovementDTO representación JSON de un movimiento.
type MovementDTO struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"productId"`
	UserID     string    `json:"userId"`
	Type       string    `json:"type"`
	Quantity   int       `json:"quantity"`
	SupplierID *string   `json:"supplierId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MovementResponse par {product, movement} que devuelve cada Register*.
type MovementResponse struct {
	Product  ProductDTO  `json:"product"`
	Movement MovementDTO `json:"movement"`
}

// MovementListItemDTO movimiento con snapshot de producto y usuario.
type MovementListItemDTO struct {
	MovementDTO
	Product MovementProductDTO `json:"product"`
	User    MovementUserDTO    `json:"user"`
}

// MovementProductDTO snapshot desnormalizado del producto en el listado.
type MovementProductDTO struct {
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
}

// MovementUserDTO usuario actuante en el listado.
type MovementUserDTO struct {
	Name      string  `json:"name"`
	Matricula *string `json:"matricula"`
}

// SummaryBucket cubo de agregación {bucket, inQty, outQty}.
type SummaryBucket struct {
	Bucket time.Time `json:"bucket"`
	InQty  int       `json:"inQty"`
	OutQty int       `json:"outQty"`
}

// FromMovement mapea la entidad al DTO.
func FromMovement(m *entity.Movement) MovementDTO {
	return MovementDTO{
		ID:         m.ID,
		ProductID:  m.ProductID,
		UserID:     m.UserID,
		Type:       m.Type,
		Quantity:   m.Quantity,
		SupplierID: m.SupplierID,
		CreatedAt:  m.CreatedAt,
	}
}

// FromMovementWithRefs mapea un ítem del listado.
func FromMovementWithRefs(m *entity.MovementWithRefs) MovementListItemDTO {
	return MovementListItemDTO{
		MovementDTO: FromMovement(&m.Movement),
		Product: MovementProductDTO{
			Code:         m.Product.Code,
			Name:         m.Product.Name,
			Manufacturer: m.Product.Manufacturer,
			Model:        m.Product.Model,
			NFE:          m.Product.NFE,
			DtNFE:        m.Product.DtNFE,
			DtInclu:      m.Product.DtInclu,
			HoraInclu:    m.Product.HoraInclu,
			Nchagpc:      m.Product.Nchagpc,
			Sector:       m.Product.Sector,
			Unit:         m.Product.Unit,
		},
		User: MovementUserDTO{
			Name:      m.User.Name,
			Matricula: m.User.Matricula,
		},
	}
}
