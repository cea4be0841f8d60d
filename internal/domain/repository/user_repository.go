package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// UserRepository puerto mínimo sobre la tabla de usuarios: la gestión de
// cuentas vive en otro servicio, aquí solo se provisiona (seed) y se consulta.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
