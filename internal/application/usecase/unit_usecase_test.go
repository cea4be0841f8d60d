package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

func TestUnit_NombreDuplicado(t *testing.T) {
	uc := usecase.NewUnitUseCase(newFakeUnitRepo())

	_, err := uc.CreateUnit(context.Background(), dto.CreateUnitRequest{Name: "Hospital Central"})
	require.NoError(t, err)

	_, err = uc.CreateUnit(context.Background(), dto.CreateUnitRequest{Name: "Hospital Central"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.CreateUnit(context.Background(), dto.CreateUnitRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUnit_RenombrarPermiteMismoNombrePropio(t *testing.T) {
	uc := usecase.NewUnitUseCase(newFakeUnitRepo())

	a, err := uc.CreateUnit(context.Background(), dto.CreateUnitRequest{Name: "Sede A"})
	require.NoError(t, err)
	_, err = uc.CreateUnit(context.Background(), dto.CreateUnitRequest{Name: "Sede B"})
	require.NoError(t, err)

	// Renombrar a su propio nombre no es conflicto.
	_, err = uc.UpdateUnit(context.Background(), a.ID, dto.CreateUnitRequest{Name: "Sede A"})
	assert.NoError(t, err)

	// Renombrar al nombre de otra unidad sí.
	_, err = uc.UpdateUnit(context.Background(), a.ID, dto.CreateUnitRequest{Name: "Sede B"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUnit_BorradoBloqueadoConSectores(t *testing.T) {
	uc := usecase.NewUnitUseCase(newFakeUnitRepo())

	unit, err := uc.CreateUnit(context.Background(), dto.CreateUnitRequest{Name: "Campus"})
	require.NoError(t, err)
	sector, err := uc.CreateSector(context.Background(), unit.ID, dto.CreateSectorRequest{Name: "Laboratorio"})
	require.NoError(t, err)

	err = uc.DeleteUnit(context.Background(), unit.ID)
	assert.ErrorIs(t, err, domain.ErrUnitHasSectors)

	require.NoError(t, uc.DeleteSector(context.Background(), unit.ID, sector.ID))
	assert.NoError(t, uc.DeleteUnit(context.Background(), unit.ID))
}

func TestSector_DuplicadoPorUnidadYUnidadInexistente(t *testing.T) {
	uc := usecase.NewUnitUseCase(newFakeUnitRepo())

	a, err := uc.CreateUnit(context.Background(), dto.CreateUnitRequest{Name: "Sede A"})
	require.NoError(t, err)
	b, err := uc.CreateUnit(context.Background(), dto.CreateUnitRequest{Name: "Sede B"})
	require.NoError(t, err)

	_, err = uc.CreateSector(context.Background(), a.ID, dto.CreateSectorRequest{Name: "Archivo"})
	require.NoError(t, err)

	// Mismo nombre en la misma unidad: conflicto.
	_, err = uc.CreateSector(context.Background(), a.ID, dto.CreateSectorRequest{Name: "Archivo"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Mismo nombre en otra unidad: permitido.
	_, err = uc.CreateSector(context.Background(), b.ID, dto.CreateSectorRequest{Name: "Archivo"})
	assert.NoError(t, err)

	_, err = uc.CreateSector(context.Background(), "no-existe", dto.CreateSectorRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrUnitNotFound)
}

func TestSector_ActualizarYBorrarExigeUnidadCorrecta(t *testing.T) {
	uc := usecase.NewUnitUseCase(newFakeUnitRepo())

	a, err := uc.CreateUnit(context.Background(), dto.CreateUnitRequest{Name: "Sede A"})
	require.NoError(t, err)
	b, err := uc.CreateUnit(context.Background(), dto.CreateUnitRequest{Name: "Sede B"})
	require.NoError(t, err)
	sector, err := uc.CreateSector(context.Background(), a.ID, dto.CreateSectorRequest{Name: "Despacho"})
	require.NoError(t, err)

	// El sector no pertenece a la unidad B.
	_, err = uc.UpdateSector(context.Background(), b.ID, sector.ID, dto.CreateSectorRequest{Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrSectorNotFound)
	err = uc.DeleteSector(context.Background(), b.ID, sector.ID)
	assert.ErrorIs(t, err, domain.ErrSectorNotFound)

	// Con su unidad correcta sí.
	renamed, err := uc.UpdateSector(context.Background(), a.ID, sector.ID, dto.CreateSectorRequest{Name: "Despacho 2"})
	require.NoError(t, err)
	assert.Equal(t, "Despacho 2", renamed.Name)
}

func TestUnit_ListIncluyeSectores(t *testing.T) {
	uc := usecase.NewUnitUseCase(newFakeUnitRepo())

	unit, err := uc.CreateUnit(context.Background(), dto.CreateUnitRequest{Name: "Sede"})
	require.NoError(t, err)
	_, err = uc.CreateSector(context.Background(), unit.ID, dto.CreateSectorRequest{Name: "S1"})
	require.NoError(t, err)
	_, err = uc.CreateSector(context.Background(), unit.ID, dto.CreateSectorRequest{Name: "S2"})
	require.NoError(t, err)

	units, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Len(t, units[0].Sectors, 2)
}
