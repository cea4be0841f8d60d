package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// Movement es el registro de auditoría de un cambio de cantidad.
// Una vez creado nunca se actualiza ni se borra; Quantity es siempre > 0 y el
// signo lo da Type.
type Movement struct {
	ID         string
	ProductID  string
	UserID     string
	Type       string
	Quantity   int
	SupplierID *string
	CreatedAt  time.Time
}

// MovementProductSnapshot campos del producto que acompañan cada movimiento
// en los listados (copia de lectura, no una segunda fuente de verdad).
type MovementProductSnapshot struct {
	Code         int
	Name         string
	Manufacturer *string
	Model        *string
	NFE          *string
	DtNFE        *time.Time
	DtInclu      *time.Time
	HoraInclu    *string
	Nchagpc      *string
	Sector       *string
	Unit         *string
}

// MovementUserRef identificación del usuario que registró el movimiento.
type MovementUserRef struct {
	Name      string
	Matricula *string
}

// MovementWithRefs movimiento con el snapshot del producto y el usuario,
// tal como lo consume el listado del dashboard.
type MovementWithRefs struct {
	Movement
	Product MovementProductSnapshot
	User    MovementUserRef
}
