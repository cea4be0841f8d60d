package entity

import "time"

// Supplier proveedor opcionalmente asociado a una salida de stock.
type Supplier struct {
	ID        string
	Name      string
	CNPJ      *string
	Email     *string
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
