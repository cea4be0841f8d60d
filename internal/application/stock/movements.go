package stock

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// defaultMovementsLimit tope por defecto del listado cuando el caller no
// envía limit. No hay cursor de paginación: el caller reconsulta ajustando
// los filtros.
const defaultMovementsLimit = 20

// ListMovementsUseCase listado de movimientos (solo lectura), del más
// reciente al más antiguo, con snapshot del producto y usuario actuante.
type ListMovementsUseCase struct {
	movementRepo repository.MovementRepository
}

// NewListMovementsUseCase construye el caso de uso.
func NewListMovementsUseCase(movementRepo repository.MovementRepository) *ListMovementsUseCase {
	return &ListMovementsUseCase{movementRepo: movementRepo}
}

// List aplica los valores por defecto y delega en el repositorio.
func (uc *ListMovementsUseCase) List(ctx context.Context, q dto.ListMovementsQuery) ([]*entity.MovementWithRefs, error) {
	if q.Type != "" && q.Type != entity.MovementTypeIN && q.Type != entity.MovementTypeOUT {
		return nil, domain.ErrInvalidInput
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultMovementsLimit
	}
	return uc.movementRepo.List(ctx, repository.MovementFilter{
		Limit: limit,
		Type:  q.Type,
		From:  q.From,
		To:    q.To,
	})
}
