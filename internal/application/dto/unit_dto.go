package dto

import (
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// CreateUnitRequest alta/edición de unidad.
type CreateUnitRequest struct {
	Name string `json:"name"`
}

// CreateSectorRequest alta/edición de sector dentro de una unidad.
type CreateSectorRequest struct {
	Name string `json:"name"`
}

// SectorDTO sector en respuestas.
type SectorDTO struct {
	ID        string    `json:"id"`
	UnitID    string    `json:"unitId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// UnitDTO unidad con sus sectores.
type UnitDTO struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Sectors   []SectorDTO `json:"sectors"`
	CreatedAt time.Time   `json:"createdAt"`
}

// FromUnit mapea la entidad al DTO.
func FromUnit(u *entity.Unit) UnitDTO {
	sectors := make([]SectorDTO, 0, len(u.Sectors))
	for _, s := range u.Sectors {
		sectors = append(sectors, FromSector(s))
	}
	return UnitDTO{ID: u.ID, Name: u.Name, Sectors: sectors, CreatedAt: u.CreatedAt}
}

// FromSector mapea la entidad al DTO.
func FromSector(s *entity.Sector) SectorDTO {
	return SectorDTO{ID: s.ID, UnitID: s.UnitID, Name: s.Name, CreatedAt: s.CreatedAt}
}
