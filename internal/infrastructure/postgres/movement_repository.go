package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable
// con pool o tx). La tabla movements es append-only: aquí no hay UPDATE ni
// DELETE.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento. Solo se invoca dentro de la transacción del
// motor de stock, junto con la actualización del producto.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, product_id, user_id, type, quantity, supplier_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	userID := (*string)(nil)
	if movement.UserID != "" {
		userID = &movement.UserID
	}
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProductID, userID, movement.Type,
		movement.Quantity, movement.SupplierID, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List movimientos del más reciente al más antiguo, con snapshot del producto
// y nombre/matrícula del usuario actuante.
func (r *MovementRepo) List(ctx context.Context, filter repository.MovementFilter) ([]*entity.MovementWithRefs, error) {
	query := `
		SELECT m.id, m.product_id, m.user_id, m.type, m.quantity, m.supplier_id, m.created_at,
		       p.code, p.name, p.manufacturer, p.model, p.nfe, p.dt_nfe, p.dt_inclu, p.hora_inclu, p.nchagpc, p.sector, p.unit,
		       COALESCE(u.name, ''), u.matricula
		FROM movements m
		JOIN products p ON p.id = m.product_id
		LEFT JOIN users u ON u.id = m.user_id
		WHERE 1=1`
	var args []any
	pos := 1
	if filter.Type != "" {
		query += fmt.Sprintf(" AND m.type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND m.created_at >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND m.created_at <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY m.created_at DESC LIMIT $%d", pos)
	args = append(args, filter.Limit)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.MovementWithRefs
	for rows.Next() {
		var m entity.MovementWithRefs
		var userID *string
		if err := rows.Scan(
			&m.ID, &m.ProductID, &userID, &m.Type, &m.Quantity, &m.SupplierID, &m.CreatedAt,
			&m.Product.Code, &m.Product.Name, &m.Product.Manufacturer, &m.Product.Model,
			&m.Product.NFE, &m.Product.DtNFE, &m.Product.DtInclu, &m.Product.HoraInclu,
			&m.Product.Nchagpc, &m.Product.Sector, &m.Product.Unit,
			&m.User.Name, &m.User.Matricula,
		); err != nil {
			return nil, fmt.Errorf("list movements scan: %w", err)
		}
		if userID != nil {
			m.UserID = *userID
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListBetween movimientos del rango [from, to], ascendente por fecha. Lo
// consume el agregador de resúmenes (solo lectura).
func (r *MovementRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Movement, error) {
	query := `
		SELECT id, product_id, COALESCE(user_id::text, ''), type, quantity, supplier_id, created_at
		FROM movements
		WHERE created_at BETWEEN $1 AND $2
		ORDER BY created_at ASC`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list movements between: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.UserID, &m.Type, &m.Quantity, &m.SupplierID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("list movements between scan: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
