package entity

import "time"

// Product representa un ítem físico del almacén.
//
// Code es el código secuencial visible al usuario: lo asigna la base de datos
// al crear el producto (secuencia) y nunca se reutiliza. Quantity solo se
// modifica a través del motor de stock; la edición de catálogo toca únicamente
// los campos descriptivos.
//
// Sector y Unit son copias desnormalizadas del nombre del sector/unidad de la
// última salida registrada: reflejan la ubicación en ese momento, no el nombre
// actual de la fila de referencia (renombrar una unidad no reescribe el
// histórico).
type Product struct {
	ID           string
	Code         int
	Name         string
	Manufacturer *string
	Model        *string
	NFE          *string    // referencia de nota fiscal
	DtNFE        *time.Time // fecha de la nota fiscal
	DtInclu      *time.Time // fecha de inclusión, inmutable una vez asignada
	HoraInclu    *string    // hora de inclusión "HH:MM"
	Nchagpc      *string    // clave de seguimiento libre
	Sector       *string
	Unit         *string
	Quantity     int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
