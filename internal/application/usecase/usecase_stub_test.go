package usecase_test

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// Fakes en memoria, sin concurrencia: los casos de uso de catálogo se
// ejercitan en una sola goroutine.

type fakeProductRepo struct {
	products map[string]entity.Product
	nextCode int
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]entity.Product), nextCode: 1}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.Code = r.nextCode
	r.nextCode++
	r.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		cp := p
		list = append(list, &cp)
	}
	if offset > len(list) {
		offset = len(list)
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

type fakeUnitRepo struct {
	units   map[string]entity.Unit
	sectors map[string]entity.Sector
}

var _ repository.UnitRepository = (*fakeUnitRepo)(nil)

func newFakeUnitRepo() *fakeUnitRepo {
	return &fakeUnitRepo{units: make(map[string]entity.Unit), sectors: make(map[string]entity.Sector)}
}

func (r *fakeUnitRepo) CreateUnit(_ context.Context, u *entity.Unit) error {
	r.units[u.ID] = *u
	return nil
}

func (r *fakeUnitRepo) GetUnitByID(_ context.Context, id string) (*entity.Unit, error) {
	u, ok := r.units[id]
	if !ok {
		return nil, nil
	}
	cp := u
	return &cp, nil
}

func (r *fakeUnitRepo) GetUnitByName(_ context.Context, name string) (*entity.Unit, error) {
	for _, u := range r.units {
		if u.Name == name {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUnitRepo) UpdateUnit(_ context.Context, u *entity.Unit) error {
	r.units[u.ID] = *u
	return nil
}

func (r *fakeUnitRepo) DeleteUnit(_ context.Context, id string) error {
	delete(r.units, id)
	return nil
}

func (r *fakeUnitRepo) ListUnits(_ context.Context) ([]*entity.Unit, error) {
	var list []*entity.Unit
	for _, u := range r.units {
		cp := u
		for _, s := range r.sectors {
			if s.UnitID == u.ID {
				sc := s
				cp.Sectors = append(cp.Sectors, &sc)
			}
		}
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeUnitRepo) CreateSector(_ context.Context, s *entity.Sector) error {
	r.sectors[s.ID] = *s
	return nil
}

func (r *fakeUnitRepo) GetSectorByIDAndUnit(_ context.Context, sectorID, unitID string) (*entity.Sector, error) {
	s, ok := r.sectors[sectorID]
	if !ok || s.UnitID != unitID {
		return nil, nil
	}
	cp := s
	return &cp, nil
}

func (r *fakeUnitRepo) GetSectorByName(_ context.Context, unitID, name string) (*entity.Sector, error) {
	for _, s := range r.sectors {
		if s.UnitID == unitID && s.Name == name {
			cp := s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUnitRepo) UpdateSector(_ context.Context, s *entity.Sector) error {
	r.sectors[s.ID] = *s
	return nil
}

func (r *fakeUnitRepo) DeleteSector(_ context.Context, sectorID, _ string) error {
	delete(r.sectors, sectorID)
	return nil
}

func (r *fakeUnitRepo) CountSectors(_ context.Context, unitID string) (int, error) {
	n := 0
	for _, s := range r.sectors {
		if s.UnitID == unitID {
			n++
		}
	}
	return n, nil
}

type fakeManufacturerRepo struct {
	manufacturers map[string]entity.Manufacturer
}

var _ repository.ManufacturerRepository = (*fakeManufacturerRepo)(nil)

func newFakeManufacturerRepo() *fakeManufacturerRepo {
	return &fakeManufacturerRepo{manufacturers: make(map[string]entity.Manufacturer)}
}

func (r *fakeManufacturerRepo) Create(_ context.Context, m *entity.Manufacturer) error {
	r.manufacturers[m.ID] = *m
	return nil
}

func (r *fakeManufacturerRepo) GetByID(_ context.Context, id string) (*entity.Manufacturer, error) {
	m, ok := r.manufacturers[id]
	if !ok {
		return nil, nil
	}
	cp := m
	return &cp, nil
}

func (r *fakeManufacturerRepo) GetByNameFold(_ context.Context, name string) (*entity.Manufacturer, error) {
	for _, m := range r.manufacturers {
		if strings.EqualFold(m.Name, name) {
			cp := m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeManufacturerRepo) Update(_ context.Context, m *entity.Manufacturer) error {
	r.manufacturers[m.ID] = *m
	return nil
}

func (r *fakeManufacturerRepo) List(_ context.Context) ([]*entity.Manufacturer, error) {
	var list []*entity.Manufacturer
	for _, m := range r.manufacturers {
		cp := m
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *fakeManufacturerRepo) Delete(_ context.Context, id string) error {
	delete(r.manufacturers, id)
	return nil
}

func strptr(s string) *string { return &s }

func intptr(n int) *int { return &n }
