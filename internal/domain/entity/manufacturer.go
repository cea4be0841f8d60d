package entity

import "time"

// Manufacturer fabricante del catálogo. El nombre es único sin distinguir
// mayúsculas; los productos lo referencian por nombre (texto libre copiado),
// no por FK, igual que el resto de campos descriptivos.
type Manufacturer struct {
	ID        string
	Name      string
	Contact   *string
	Email     *string
	Phone     *string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
