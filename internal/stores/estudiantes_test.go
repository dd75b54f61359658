package stores

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udistrital/academico_mid/internal/dto"
	"github.com/udistrital/academico_mid/internal/ords"
	"github.com/udistrital/academico_mid/internal/services"
	"github.com/udistrital/academico_mid/models"
)

// fakeEstudiantes simula el servicio con un roster fijo paginado en memoria.
type fakeEstudiantes struct {
	mu            sync.Mutex
	roster        []models.Estudiante
	errListar     error
	errObtener    error
	errCrear      error
	errHistorial  error
	listadas      int
	ultimoFiltro  services.FiltroEstudiantes
	historialResp []map[string]interface{}
}

func (f *fakeEstudiantes) Listar(_ context.Context, filtro services.FiltroEstudiantes) (*models.ListaPaginada[models.Estudiante], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listadas++
	f.ultimoFiltro = filtro
	if f.errListar != nil {
		return nil, f.errListar
	}
	limit := filtro.Limit
	if limit <= 0 {
		limit = services.LimiteDefecto
	}
	inicio := filtro.Offset
	if inicio > len(f.roster) {
		inicio = len(f.roster)
	}
	fin := inicio + limit
	if fin > len(f.roster) {
		fin = len(f.roster)
	}
	return &models.ListaPaginada[models.Estudiante]{
		Items:   append([]models.Estudiante(nil), f.roster[inicio:fin]...),
		HasMore: fin < len(f.roster),
		Count:   len(f.roster),
	}, nil
}

func (f *fakeEstudiantes) Obtener(_ context.Context, cod string) (*models.Estudiante, error) {
	if f.errObtener != nil {
		return nil, f.errObtener
	}
	for _, est := range f.roster {
		if est.CodEstudiante == cod {
			copia := est
			return &copia, nil
		}
	}
	return nil, &ords.Error{Status: 404, Mensaje: ords.MensajeNoEncontrado}
}

func (f *fakeEstudiantes) Crear(_ context.Context, payload dto.EstudianteReq) (map[string]interface{}, error) {
	if f.errCrear != nil {
		return nil, f.errCrear
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roster = append(f.roster, models.Estudiante{CodEstudiante: payload.CodEstudiante, Nombres: payload.Nombres})
	return map[string]interface{}{"success": true}, nil
}

func (f *fakeEstudiantes) Actualizar(_ context.Context, cod string, payload dto.EstudianteReq) (map[string]interface{}, error) {
	return map[string]interface{}{"success": true}, nil
}

func (f *fakeEstudiantes) Eliminar(_ context.Context, cod string) (map[string]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	filtrado := f.roster[:0]
	for _, est := range f.roster {
		if est.CodEstudiante != cod {
			filtrado = append(filtrado, est)
		}
	}
	f.roster = filtrado
	return map[string]interface{}{"success": true}, nil
}

func (f *fakeEstudiantes) Historial(_ context.Context, cod string) ([]map[string]interface{}, error) {
	if f.errHistorial != nil {
		return nil, f.errHistorial
	}
	return f.historialResp, nil
}

func rosterDe(n int) []models.Estudiante {
	roster := make([]models.Estudiante, n)
	for i := range roster {
		roster[i] = models.Estudiante{
			CodEstudiante: "2025" + string(rune('A'+i/26)) + string(rune('A'+i%26)),
			Nombres:       "Estudiante",
			Estado:        models.EstudianteActivo,
		}
	}
	return roster
}

func TestEstudiantesCargarExito(t *testing.T) {
	fake := &fakeEstudiantes{roster: rosterDe(3)}
	store := NuevoEstudiantesStore(fake)

	res := store.Cargar(context.Background())

	assert.True(t, res.Exito)
	assert.Len(t, store.Items(), 3)
	assert.False(t, store.Cargando())
	assert.Empty(t, store.Error())
	assert.Equal(t, 3, store.Paginacion().Count)
	assert.False(t, store.Paginacion().HasMore)
}

func TestEstudiantesCargarFalloConservaItems(t *testing.T) {
	fake := &fakeEstudiantes{roster: rosterDe(3)}
	store := NuevoEstudiantesStore(fake)
	store.Cargar(context.Background())

	fake.errListar = &ords.Error{Status: 500, Mensaje: ords.MensajeServidor}
	res := store.Cargar(context.Background())

	assert.False(t, res.Exito)
	assert.Equal(t, ords.MensajeServidor, res.Error)
	assert.Equal(t, ords.MensajeServidor, store.Error())
	assert.False(t, store.Cargando())
	// los items previos no se tocan ante el fallo
	assert.Len(t, store.Items(), 3)
}

func TestEstudiantesPaginacionCompleta(t *testing.T) {
	fake := &fakeEstudiantes{roster: rosterDe(60)}
	store := NuevoEstudiantesStore(fake)
	ctx := context.Background()

	res := store.Cargar(ctx)
	assert.True(t, res.Exito)
	assert.Len(t, store.Items(), 25)
	assert.True(t, store.Paginacion().HasMore)
	assert.Equal(t, 0, store.Paginacion().Offset)

	store.SiguientePagina(ctx)
	assert.Equal(t, 25, store.Paginacion().Offset)
	assert.Len(t, store.Items(), 25)

	store.SiguientePagina(ctx)
	assert.Equal(t, 50, store.Paginacion().Offset)
	assert.Len(t, store.Items(), 10)
	assert.False(t, store.Paginacion().HasMore)

	// sin más páginas: no avanza ni dispara red
	llamadas := fake.listadas
	res = store.SiguientePagina(ctx)
	assert.True(t, res.Exito)
	assert.Equal(t, 50, store.Paginacion().Offset)
	assert.Equal(t, llamadas, fake.listadas)

	store.PaginaAnterior(ctx)
	assert.Equal(t, 25, store.Paginacion().Offset)
	store.PaginaAnterior(ctx)
	assert.Equal(t, 0, store.Paginacion().Offset)

	// en la primera página: no retrocede ni dispara red
	llamadas = fake.listadas
	res = store.PaginaAnterior(ctx)
	assert.True(t, res.Exito)
	assert.Equal(t, 0, store.Paginacion().Offset)
	assert.Equal(t, llamadas, fake.listadas)
}

func TestEstudiantesFiltrarReiniciaElCursor(t *testing.T) {
	fake := &fakeEstudiantes{roster: rosterDe(60)}
	store := NuevoEstudiantesStore(fake)
	ctx := context.Background()

	store.Cargar(ctx)
	store.SiguientePagina(ctx)
	assert.Equal(t, 25, store.Paginacion().Offset)

	store.Filtrar(ctx, models.EstudianteActivo, "ISIS", "garcía")
	assert.Equal(t, 0, store.Paginacion().Offset)
	assert.Equal(t, models.EstudianteActivo, fake.ultimoFiltro.Estado)
	assert.Equal(t, "ISIS", fake.ultimoFiltro.CodPrograma)
	assert.Equal(t, "garcía", fake.ultimoFiltro.Busqueda)
}

func TestEstudiantesCambiarLimite(t *testing.T) {
	fake := &fakeEstudiantes{roster: rosterDe(60)}
	store := NuevoEstudiantesStore(fake)
	ctx := context.Background()

	store.Cargar(ctx)
	store.SiguientePagina(ctx)

	store.CambiarLimite(ctx, 50)
	assert.Equal(t, 0, store.Paginacion().Offset)
	assert.Equal(t, 50, store.Paginacion().Limit)
	assert.Len(t, store.Items(), 50)
}

func TestEstudiantesCrearRecargaElListado(t *testing.T) {
	fake := &fakeEstudiantes{roster: rosterDe(3)}
	store := NuevoEstudiantesStore(fake)
	ctx := context.Background()
	store.Cargar(ctx)

	res := store.Crear(ctx, dto.EstudianteReq{CodEstudiante: "20259999", Nombres: "Nuevo"})

	assert.True(t, res.Exito)
	assert.Len(t, store.Items(), 4)
	assert.Empty(t, store.Error())
}

func TestEstudiantesCrearFalloNoRecarga(t *testing.T) {
	fake := &fakeEstudiantes{roster: rosterDe(3)}
	store := NuevoEstudiantesStore(fake)
	ctx := context.Background()
	store.Cargar(ctx)

	llamadas := fake.listadas
	fake.errCrear = &ords.Error{Status: 400, Mensaje: "documento duplicado"}
	res := store.Crear(ctx, dto.EstudianteReq{})

	assert.False(t, res.Exito)
	assert.Equal(t, "documento duplicado", res.Error)
	assert.Equal(t, llamadas, fake.listadas)
	assert.Len(t, store.Items(), 3)
}

func TestEstudiantesCargarDetalle(t *testing.T) {
	fake := &fakeEstudiantes{
		roster:        rosterDe(3),
		historialResp: []map[string]interface{}{{"cod_periodo": "2025-1"}},
	}
	store := NuevoEstudiantesStore(fake)
	cod := fake.roster[0].CodEstudiante

	res := store.CargarDetalle(context.Background(), cod)

	assert.True(t, res.Exito)
	assert.Equal(t, cod, store.Seleccionado().CodEstudiante)
	assert.Len(t, store.Historial(), 1)
}

func TestEstudiantesCargarDetalleFalloDeHistorial(t *testing.T) {
	fake := &fakeEstudiantes{
		roster:       rosterDe(3),
		errHistorial: &ords.Error{Status: 500, Mensaje: ords.MensajeServidor},
	}
	store := NuevoEstudiantesStore(fake)

	res := store.CargarDetalle(context.Background(), fake.roster[0].CodEstudiante)

	assert.False(t, res.Exito)
	assert.Equal(t, ords.MensajeServidor, store.Error())
	assert.Nil(t, store.Seleccionado())
}
