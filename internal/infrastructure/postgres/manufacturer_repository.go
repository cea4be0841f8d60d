package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ManufacturerRepository = (*ManufacturerRepo)(nil)

// ManufacturerRepo implementación de ManufacturerRepository sobre PostgreSQL.
type ManufacturerRepo struct {
	q Querier
}

// NewManufacturerRepository construye el adaptador de fabricantes. Pasar pool o tx (Querier).
func NewManufacturerRepository(q Querier) *ManufacturerRepo {
	return &ManufacturerRepo{q: q}
}

// Create persiste un fabricante.
func (r *ManufacturerRepo) Create(ctx context.Context, m *entity.Manufacturer) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO manufacturers (id, name, contact, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Name, m.Contact, m.Email, m.Phone, m.Address, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert manufacturer: %w", err)
	}
	return nil
}

// GetByID obtiene un fabricante por ID. Devuelve nil, nil si no existe.
func (r *ManufacturerRepo) GetByID(ctx context.Context, id string) (*entity.Manufacturer, error) {
	return r.getOne(ctx,
		`SELECT id, name, contact, email, phone, address, created_at, updated_at
		 FROM manufacturers WHERE id = $1`, id)
}

// GetByNameFold busca por nombre sin distinguir mayúsculas.
func (r *ManufacturerRepo) GetByNameFold(ctx context.Context, name string) (*entity.Manufacturer, error) {
	return r.getOne(ctx,
		`SELECT id, name, contact, email, phone, address, created_at, updated_at
		 FROM manufacturers WHERE LOWER(name) = LOWER($1)`, name)
}

// Update edita un fabricante.
func (r *ManufacturerRepo) Update(ctx context.Context, m *entity.Manufacturer) error {
	query := `
		UPDATE manufacturers
		SET name = $2, contact = $3, email = $4, phone = $5, address = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Name, m.Contact, m.Email, m.Phone, m.Address, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update manufacturer: %w", err)
	}
	return nil
}

// List lista fabricantes por nombre.
func (r *ManufacturerRepo) List(ctx context.Context) ([]*entity.Manufacturer, error) {
	query := `SELECT id, name, contact, email, phone, address, created_at, updated_at
		FROM manufacturers ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list manufacturers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Manufacturer
	for rows.Next() {
		var m entity.Manufacturer
		if err := rows.Scan(&m.ID, &m.Name, &m.Contact, &m.Email, &m.Phone, &m.Address, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list manufacturers scan: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina un fabricante.
func (r *ManufacturerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM manufacturers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete manufacturer: %w", err)
	}
	return nil
}

func (r *ManufacturerRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Manufacturer, error) {
	var m entity.Manufacturer
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&m.ID, &m.Name, &m.Contact, &m.Email, &m.Phone, &m.Address, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get manufacturer: %w", err)
	}
	return &m, nil
}
