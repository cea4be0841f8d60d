package entity

import "time"

// Unit unidad física de destino (edificio, campus, dependencia).
type Unit struct {
	ID        string
	Name      string
	Sectors   []*Sector
	CreatedAt time.Time
}

// Sector pertenece exactamente a una unidad. Un sectorId solo es válido en
// una salida si su UnitID coincide con la unidad enviada.
type Sector struct {
	ID        string
	UnitID    string
	Name      string
	CreatedAt time.Time
}
