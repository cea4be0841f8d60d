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

var _ repository.UnitRepository = (*UnitRepo)(nil)

// UnitRepo implementación de UnitRepository sobre PostgreSQL (usable con pool o tx).
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador de unidades/sectores. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

// CreateUnit persiste una unidad.
func (r *UnitRepo) CreateUnit(ctx context.Context, unit *entity.Unit) error {
	if unit.ID == "" {
		unit.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx,
		`INSERT INTO units (id, name, created_at) VALUES ($1, $2, $3)`,
		unit.ID, unit.Name, unit.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// GetUnitByID obtiene una unidad por ID. Devuelve nil, nil si no existe.
func (r *UnitRepo) GetUnitByID(ctx context.Context, id string) (*entity.Unit, error) {
	return r.getUnit(ctx, `SELECT id, name, created_at FROM units WHERE id = $1`, id)
}

// GetUnitByName obtiene una unidad por nombre exacto.
func (r *UnitRepo) GetUnitByName(ctx context.Context, name string) (*entity.Unit, error) {
	return r.getUnit(ctx, `SELECT id, name, created_at FROM units WHERE name = $1`, name)
}

// UpdateUnit renombra una unidad.
func (r *UnitRepo) UpdateUnit(ctx context.Context, unit *entity.Unit) error {
	_, err := r.q.Exec(ctx,
		`UPDATE units SET name = $2 WHERE id = $1`, unit.ID, unit.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update unit: %w", err)
	}
	return nil
}

// DeleteUnit elimina una unidad.
func (r *UnitRepo) DeleteUnit(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM units WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete unit: %w", err)
	}
	return nil
}

// ListUnits unidades del más reciente al más antiguo, cada una con sus
// sectores ordenados por nombre.
func (r *UnitRepo) ListUnits(ctx context.Context) ([]*entity.Unit, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, created_at FROM units ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var units []*entity.Unit
	byID := make(map[string]*entity.Unit)
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.Name, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("list units scan: %w", err)
		}
		u.Sectors = []*entity.Sector{}
		units = append(units, &u)
		byID[u.ID] = &u
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sectorRows, err := r.q.Query(ctx, `SELECT id, unit_id, name, created_at FROM sectors ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list sectors: %w", err)
	}
	defer sectorRows.Close()
	for sectorRows.Next() {
		var s entity.Sector
		if err := sectorRows.Scan(&s.ID, &s.UnitID, &s.Name, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("list sectors scan: %w", err)
		}
		if u, ok := byID[s.UnitID]; ok {
			u.Sectors = append(u.Sectors, &s)
		}
	}
	return units, sectorRows.Err()
}

// CreateSector persiste un sector de una unidad.
func (r *UnitRepo) CreateSector(ctx context.Context, sector *entity.Sector) error {
	if sector.ID == "" {
		sector.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx,
		`INSERT INTO sectors (id, unit_id, name, created_at) VALUES ($1, $2, $3, $4)`,
		sector.ID, sector.UnitID, sector.Name, sector.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sector: %w", err)
	}
	return nil
}

// GetSectorByIDAndUnit resuelve un sector solo si pertenece a la unidad
// indicada. Devuelve nil, nil si no existe ese par.
func (r *UnitRepo) GetSectorByIDAndUnit(ctx context.Context, sectorID, unitID string) (*entity.Sector, error) {
	return r.getSector(ctx,
		`SELECT id, unit_id, name, created_at FROM sectors WHERE id = $1 AND unit_id = $2`,
		sectorID, unitID,
	)
}

// GetSectorByName obtiene un sector por nombre dentro de una unidad.
func (r *UnitRepo) GetSectorByName(ctx context.Context, unitID, name string) (*entity.Sector, error) {
	return r.getSector(ctx,
		`SELECT id, unit_id, name, created_at FROM sectors WHERE unit_id = $1 AND name = $2`,
		unitID, name,
	)
}

// UpdateSector renombra un sector.
func (r *UnitRepo) UpdateSector(ctx context.Context, sector *entity.Sector) error {
	_, err := r.q.Exec(ctx,
		`UPDATE sectors SET name = $3 WHERE id = $1 AND unit_id = $2`,
		sector.ID, sector.UnitID, sector.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update sector: %w", err)
	}
	return nil
}

// DeleteSector elimina un sector de la unidad indicada.
func (r *UnitRepo) DeleteSector(ctx context.Context, sectorID, unitID string) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM sectors WHERE id = $1 AND unit_id = $2`, sectorID, unitID)
	if err != nil {
		return fmt.Errorf("delete sector: %w", err)
	}
	return nil
}

// CountSectors cantidad de sectores de una unidad.
func (r *UnitRepo) CountSectors(ctx context.Context, unitID string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM sectors WHERE unit_id = $1`, unitID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count sectors: %w", err)
	}
	return count, nil
}

func (r *UnitRepo) getUnit(ctx context.Context, query string, args ...any) (*entity.Unit, error) {
	var u entity.Unit
	err := r.q.QueryRow(ctx, query, args...).Scan(&u.ID, &u.Name, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}

func (r *UnitRepo) getSector(ctx context.Context, query string, args ...any) (*entity.Sector, error) {
	var s entity.Sector
	err := r.q.QueryRow(ctx, query, args...).Scan(&s.ID, &s.UnitID, &s.Name, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sector: %w", err)
	}
	return &s, nil
}
