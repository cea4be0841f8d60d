package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El motor de stock los detecta de forma síncrona, antes de cualquier escritura:
// una operación fallida nunca deja estado parcial.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrUnitNotFound      = errors.New("unidad no encontrada")
	ErrSectorNotFound    = errors.New("sector no encontrado para esa unidad")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrMaxExitQuantity   = errors.New("la cantidad supera el máximo por salida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrUnitHasSectors    = errors.New("la unidad tiene sectores asociados")
	ErrUnauthorized      = errors.New("no autorizado")
)
