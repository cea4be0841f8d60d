package dto

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// CreateSupplierRequest alta/edición de proveedor.
type CreateSupplierRequest struct {
	Name  string  `json:"name"`
	CNPJ  *string `json:"cnpj"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// SupplierDTO proveedor en respuestas.
type SupplierDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CNPJ      *string   `json:"cnpj"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromSupplier mapea la entidad al DTO.
func FromSupplier(s *entity.Supplier) SupplierDTO {
	return SupplierDTO{
		ID:        s.ID,
		Name:      s.Name,
		CNPJ:      s.CNPJ,
		Email:     s.Email,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
