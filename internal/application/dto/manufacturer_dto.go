package dto

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// CreateManufacturerRequest alta/edición de fabricante.
type CreateManufacturerRequest struct {
	Name    string  `json:"name"`
	Contact *string `json:"contact"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// ManufacturerDTO fabricante en respuestas.
type ManufacturerDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   *string   `json:"contact"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromManufacturer mapea la entidad al DTO.
func FromManufacturer(m *entity.Manufacturer) ManufacturerDTO {
	return ManufacturerDTO{
		ID:        m.ID,
		Name:      m.Name,
		Contact:   m.Contact,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
