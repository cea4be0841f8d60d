package stock_test

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs en memoria
//
// memStore emula la base: mapas protegidos por mutex. stubTxRunner serializa
// las "transacciones" con ese mutex y restaura un snapshot si el callback
// falla, igual que un Rollback real. Los repos devuelven copias, así el
// callback no toca el estado compartido hasta su Update/Create.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	products  map[string]entity.Product
	movements []entity.Movement
	units     map[string]entity.Unit
	sectors   map[string]entity.Sector
	nextCode  int
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[string]entity.Product),
		units:    make(map[string]entity.Unit),
		sectors:  make(map[string]entity.Sector),
		nextCode: 1,
	}
}

// seedProduct agrega un producto directamente, asignando el código secuencial.
func (s *memStore) seedProduct(p entity.Product) entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.Code = s.nextCode
	s.nextCode++
	s.products[p.ID] = p
	return p
}

func (s *memStore) seedUnit(name string) entity.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := entity.Unit{ID: uuid.New().String(), Name: name, CreatedAt: time.Now()}
	s.units[u.ID] = u
	return u
}

func (s *memStore) seedSector(unitID, name string) entity.Sector {
	s.mu.Lock()
	defer s.mu.Unlock()
	sec := entity.Sector{ID: uuid.New().String(), UnitID: unitID, Name: name, CreatedAt: time.Now()}
	s.sectors[sec.ID] = sec
	return sec
}

// seedMovement agrega un movimiento directamente (para tests de consulta).
func (s *memStore) seedMovement(m entity.Movement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	s.movements = append(s.movements, m)
}

func (s *memStore) productByID(id string) (entity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	return p, ok
}

func (s *memStore) movementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movements)
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

type stubTxRunner struct {
	store *memStore
}

func (r *stubTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	unitRepo repository.UnitRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Snapshot para el rollback.
	products := make(map[string]entity.Product, len(r.store.products))
	for k, v := range r.store.products {
		products[k] = v
	}
	movements := make([]entity.Movement, len(r.store.movements))
	copy(movements, r.store.movements)
	nextCode := r.store.nextCode

	err := fn(
		&memProductRepo{store: r.store},
		&memMovementRepo{store: r.store},
		&memUnitRepo{store: r.store},
	)
	if err != nil {
		r.store.products = products
		r.store.movements = movements
		r.store.nextCode = nextCode
		return err
	}
	return nil
}

// ── Product repo ──────────────────────────────────────────────────────────────

// memProductRepo opera sin tomar el mutex: siempre corre dentro de Run o de
// un test single-goroutine.
type memProductRepo struct {
	store *memStore
}

var _ repository.ProductRepository = (*memProductRepo)(nil)

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.Code = r.store.nextCode
	r.store.nextCode++
	r.store.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

// GetForUpdate respeta la cancelación del contexto, como haría una consulta
// pgx real dentro de la transacción.
func (r *memProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.store.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.store.products {
		cp := p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	if offset > len(list) {
		offset = len(list)
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	delete(r.store.products, id)
	return nil
}

// ── Movement repo ─────────────────────────────────────────────────────────────

type memMovementRepo struct {
	store *memStore
}

var _ repository.MovementRepository = (*memMovementRepo)(nil)

func (r *memMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	r.store.movements = append(r.store.movements, *m)
	return nil
}

func (r *memMovementRepo) List(_ context.Context, filter repository.MovementFilter) ([]*entity.MovementWithRefs, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var list []*entity.MovementWithRefs
	for _, m := range r.store.movements {
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		if filter.From != nil && m.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.CreatedAt.After(*filter.To) {
			continue
		}
		item := &entity.MovementWithRefs{Movement: m}
		if p, ok := r.store.products[m.ProductID]; ok {
			item.Product = entity.MovementProductSnapshot{
				Code:         p.Code,
				Name:         p.Name,
				Manufacturer: p.Manufacturer,
				Model:        p.Model,
				NFE:          p.NFE,
				DtNFE:        p.DtNFE,
				DtInclu:      p.DtInclu,
				HoraInclu:    p.HoraInclu,
				Nchagpc:      p.Nchagpc,
				Sector:       p.Sector,
				Unit:         p.Unit,
			}
		}
		list = append(list, item)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	if filter.Limit > 0 && filter.Limit < len(list) {
		list = list[:filter.Limit]
	}
	return list, nil
}

func (r *memMovementRepo) ListBetween(_ context.Context, from, to time.Time) ([]*entity.Movement, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var list []*entity.Movement
	for _, m := range r.store.movements {
		if m.CreatedAt.Before(from) || m.CreatedAt.After(to) {
			continue
		}
		cp := m
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

// ── Unit repo ─────────────────────────────────────────────────────────────────

type memUnitRepo struct {
	store *memStore
}

var _ repository.UnitRepository = (*memUnitRepo)(nil)

func (r *memUnitRepo) CreateUnit(_ context.Context, u *entity.Unit) error {
	r.store.units[u.ID] = *u
	return nil
}

func (r *memUnitRepo) GetUnitByID(_ context.Context, id string) (*entity.Unit, error) {
	u, ok := r.store.units[id]
	if !ok {
		return nil, nil
	}
	cp := u
	return &cp, nil
}

func (r *memUnitRepo) GetUnitByName(_ context.Context, name string) (*entity.Unit, error) {
	for _, u := range r.store.units {
		if u.Name == name {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUnitRepo) UpdateUnit(_ context.Context, u *entity.Unit) error {
	r.store.units[u.ID] = *u
	return nil
}

func (r *memUnitRepo) DeleteUnit(_ context.Context, id string) error {
	delete(r.store.units, id)
	return nil
}

func (r *memUnitRepo) ListUnits(_ context.Context) ([]*entity.Unit, error) {
	var list []*entity.Unit
	for _, u := range r.store.units {
		cp := u
		list = append(list, &cp)
	}
	return list, nil
}

func (r *memUnitRepo) CreateSector(_ context.Context, s *entity.Sector) error {
	r.store.sectors[s.ID] = *s
	return nil
}

func (r *memUnitRepo) GetSectorByIDAndUnit(_ context.Context, sectorID, unitID string) (*entity.Sector, error) {
	s, ok := r.store.sectors[sectorID]
	if !ok || s.UnitID != unitID {
		return nil, nil
	}
	cp := s
	return &cp, nil
}

func (r *memUnitRepo) GetSectorByName(_ context.Context, unitID, name string) (*entity.Sector, error) {
	for _, s := range r.store.sectors {
		if s.UnitID == unitID && s.Name == name {
			cp := s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUnitRepo) UpdateSector(_ context.Context, s *entity.Sector) error {
	r.store.sectors[s.ID] = *s
	return nil
}

func (r *memUnitRepo) DeleteSector(_ context.Context, sectorID, _ string) error {
	delete(r.store.sectors, sectorID)
	return nil
}

func (r *memUnitRepo) CountSectors(_ context.Context, unitID string) (int, error) {
	n := 0
	for _, s := range r.store.sectors {
		if s.UnitID == unitID {
			n++
		}
	}
	return n, nil
}

// strptr helper para campos opcionales.
func strptr(s string) *string { return &s }

// mustTime parsea un RFC 3339 o falla el test.
func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse time %q: %v", s, err)
	}
	return ts
}

// seedNamedProduct producto mínimo con nombre y cantidad.
func seedNamedProduct(store *memStore, i, qty int) entity.Product {
	return store.seedProduct(entity.Product{
		Name:      "Producto " + strconv.Itoa(i),
		Quantity:  qty,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	})
}
