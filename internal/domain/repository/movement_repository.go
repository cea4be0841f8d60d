package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// MovementFilter filtros del listado de movimientos.
type MovementFilter struct {
	Limit int
	Type  string // "IN" | "OUT" | "" (todos)
	From  *time.Time
	To    *time.Time
}

// MovementRepository define el puerto de persistencia para movimientos.
// Create solo se invoca dentro de la transacción del motor de stock; List y
// ListBetween son consultas de solo lectura sobre el pool.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	List(ctx context.Context, filter MovementFilter) ([]*entity.MovementWithRefs, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Movement, error)
}
