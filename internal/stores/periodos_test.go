package stores

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udistrital/academico_mid/internal/dto"
	"github.com/udistrital/academico_mid/internal/ords"
	"github.com/udistrital/academico_mid/models"
)

// fakePeriodos mantiene el catálogo en memoria con a lo sumo un período ACTIVO,
// igual que el backend.
type fakePeriodos struct {
	mu         sync.Mutex
	periodos   []models.Periodo
	errListar  error
	errActivar error
	stats      map[string]interface{}
}

func (f *fakePeriodos) Listar(_ context.Context) (*models.ListaPaginada[models.Periodo], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.errListar != nil {
		return nil, f.errListar
	}
	return &models.ListaPaginada[models.Periodo]{
		Items: append([]models.Periodo(nil), f.periodos...),
		Count: len(f.periodos),
	}, nil
}

func (f *fakePeriodos) Activo(_ context.Context) (*models.Periodo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.periodos {
		if p.Estado == models.PeriodoActivo {
			copia := p
			return &copia, nil
		}
	}
	return nil, &ords.Error{Status: 404, Mensaje: ords.MensajeNoEncontrado}
}

func (f *fakePeriodos) Obtener(_ context.Context, cod string) (*models.Periodo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.periodos {
		if p.CodPeriodo == cod {
			copia := p
			return &copia, nil
		}
	}
	return nil, &ords.Error{Status: 404, Mensaje: ords.MensajeNoEncontrado}
}

func (f *fakePeriodos) Crear(_ context.Context, payload dto.PeriodoReq) (map[string]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.periodos = append(f.periodos, models.Periodo{CodPeriodo: payload.CodPeriodo, Estado: models.PeriodoProximo})
	return map[string]interface{}{"success": true}, nil
}

func (f *fakePeriodos) Actualizar(_ context.Context, cod string, payload dto.PeriodoReq) (map[string]interface{}, error) {
	return map[string]interface{}{"success": true}, nil
}

func (f *fakePeriodos) Eliminar(_ context.Context, cod string) (map[string]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	filtrado := f.periodos[:0]
	for _, p := range f.periodos {
		if p.CodPeriodo != cod {
			filtrado = append(filtrado, p)
		}
	}
	f.periodos = filtrado
	return map[string]interface{}{"success": true}, nil
}

func (f *fakePeriodos) Activar(_ context.Context, cod string) (map[string]interface{}, error) {
	if f.errActivar != nil {
		return nil, f.errActivar
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.periodos {
		switch {
		case f.periodos[i].CodPeriodo == cod:
			f.periodos[i].Estado = models.PeriodoActivo
		case f.periodos[i].Estado == models.PeriodoActivo:
			// el backend cierra el período activo anterior
			f.periodos[i].Estado = models.PeriodoCerrado
		}
	}
	return map[string]interface{}{"success": true}, nil
}

func (f *fakePeriodos) Cerrar(_ context.Context, cod string) (map[string]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.periodos {
		if f.periodos[i].CodPeriodo == cod {
			f.periodos[i].Estado = models.PeriodoCerrado
		}
	}
	return map[string]interface{}{"success": true}, nil
}

func (f *fakePeriodos) Estadisticas(_ context.Context, cod string) (map[string]interface{}, error) {
	return f.stats, nil
}

func catalogoBase() []models.Periodo {
	return []models.Periodo{
		{CodPeriodo: "2024-2", Estado: models.PeriodoCerrado},
		{CodPeriodo: "2025-1", Estado: models.PeriodoActivo},
		{CodPeriodo: "2025-2", Estado: models.PeriodoProximo},
	}
}

func TestPeriodosCargarListadoYActivo(t *testing.T) {
	store := NuevoPeriodosStore(&fakePeriodos{periodos: catalogoBase()})

	res := store.Cargar(context.Background())

	assert.True(t, res.Exito)
	assert.Len(t, store.Items(), 3)
	assert.Equal(t, "2025-1", store.Activo().CodPeriodo)
	assert.False(t, store.Cargando())
	assert.Empty(t, store.Error())
}

func TestPeriodosCargarSinActivoNoEsFallo(t *testing.T) {
	store := NuevoPeriodosStore(&fakePeriodos{periodos: []models.Periodo{
		{CodPeriodo: "2024-2", Estado: models.PeriodoCerrado},
	}})

	res := store.Cargar(context.Background())

	assert.True(t, res.Exito)
	assert.Nil(t, store.Activo())
	assert.Empty(t, store.Error())
}

func TestPeriodosCargarFalloDelListado(t *testing.T) {
	fake := &fakePeriodos{periodos: catalogoBase()}
	store := NuevoPeriodosStore(fake)
	store.Cargar(context.Background())

	fake.errListar = &ords.Error{Status: 500, Mensaje: ords.MensajeServidor}
	res := store.Cargar(context.Background())

	assert.False(t, res.Exito)
	assert.Equal(t, ords.MensajeServidor, store.Error())
	assert.Len(t, store.Items(), 3) // estado previo intacto
}

func TestPeriodosActivarRecargaListadoYActivo(t *testing.T) {
	fake := &fakePeriodos{periodos: catalogoBase()}
	store := NuevoPeriodosStore(fake)
	ctx := context.Background()
	store.Cargar(ctx)
	assert.Equal(t, "2025-1", store.Activo().CodPeriodo)

	res := store.Activar(ctx, "2025-2")

	assert.True(t, res.Exito)
	assert.Equal(t, "2025-2", store.Activo().CodPeriodo)
	porCerrado := store.PorEstado(models.PeriodoCerrado)
	assert.Len(t, porCerrado, 2)
	assert.Empty(t, store.Error())
}

func TestPeriodosActivarFalloNoTocaEstado(t *testing.T) {
	fake := &fakePeriodos{periodos: catalogoBase()}
	store := NuevoPeriodosStore(fake)
	ctx := context.Background()
	store.Cargar(ctx)

	fake.errActivar = &ords.Error{Status: 409, Mensaje: "el período aún no inicia"}
	res := store.Activar(ctx, "2025-2")

	assert.False(t, res.Exito)
	assert.Equal(t, "el período aún no inicia", res.Error)
	assert.Equal(t, "2025-1", store.Activo().CodPeriodo)
}

func TestPeriodosPorEstado(t *testing.T) {
	store := NuevoPeriodosStore(&fakePeriodos{periodos: catalogoBase()})
	store.Cargar(context.Background())

	assert.Len(t, store.PorEstado(models.PeriodoActivo), 1)
	assert.Len(t, store.PorEstado(models.PeriodoCerrado), 1)
	assert.Empty(t, store.PorEstado("INEXISTENTE"))
}

func TestPeriodosCargarEstadisticas(t *testing.T) {
	fake := &fakePeriodos{
		periodos: catalogoBase(),
		stats:    map[string]interface{}{"matriculados": float64(1200)},
	}
	store := NuevoPeriodosStore(fake)

	res := store.CargarEstadisticas(context.Background(), "2025-1")

	assert.True(t, res.Exito)
	assert.Equal(t, float64(1200), store.Estadisticas()["matriculados"])
}
