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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, code, name, manufacturer, model, nfe, dt_nfe, dt_inclu, hora_inclu, nchagpc, sector, unit, quantity, created_at, updated_at`

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo. El código secuencial lo asigna la
// secuencia products_code_seq dentro de la misma transacción, así dos altas
// concurrentes nunca comparten código.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	query := `
		INSERT INTO products (id, code, name, manufacturer, model, nfe, dt_nfe, dt_inclu, hora_inclu, nchagpc, sector, unit, quantity, created_at, updated_at)
		VALUES ($1, nextval('products_code_seq'), $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING code`
	err := r.q.QueryRow(ctx, query,
		product.ID, product.Name, product.Manufacturer, product.Model, product.NFE,
		product.DtNFE, product.DtInclu, product.HoraInclu, product.Nchagpc,
		product.Sector, product.Unit, product.Quantity, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.Code)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Es la lectura obligatoria dentro de toda transacción del motor de stock.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// Update persiste cantidad y campos descriptivos del producto.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, manufacturer = $3, model = $4, nfe = $5, dt_nfe = $6,
		    dt_inclu = $7, hora_inclu = $8, nchagpc = $9, sector = $10, unit = $11,
		    quantity = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Manufacturer, product.Model, product.NFE,
		product.DtNFE, product.DtInclu, product.HoraInclu, product.Nchagpc,
		product.Sector, product.Unit, product.Quantity, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos del más reciente al más antiguo.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("list products scan: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto. La FK de movimientos protege el histórico.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := scanProduct(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func scanProduct(row pgx.Row, p *entity.Product) error {
	return row.Scan(
		&p.ID, &p.Code, &p.Name, &p.Manufacturer, &p.Model, &p.NFE,
		&p.DtNFE, &p.DtInclu, &p.HoraInclu, &p.Nchagpc, &p.Sector, &p.Unit,
		&p.Quantity, &p.CreatedAt, &p.UpdatedAt,
	)
}
