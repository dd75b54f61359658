package stores

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/udistrital/academico_mid/internal/dto"
	"github.com/udistrital/academico_mid/internal/ords"
	"github.com/udistrital/academico_mid/models"
)

type fakeGrupos struct {
	mu         sync.Mutex
	grupo      models.Grupo
	inscritos  []models.Estudiante
	errAsignar error
	asignados  [][]string
	retirados  []string
}

func (f *fakeGrupos) Estudiantes(_ context.Context, codGrupo string) (*models.ListaPaginada[models.Estudiante], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &models.ListaPaginada[models.Estudiante]{
		Items: append([]models.Estudiante(nil), f.inscritos...),
		Count: len(f.inscritos),
	}, nil
}

func (f *fakeGrupos) Estadisticas(_ context.Context, codGrupo string) (*models.Grupo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copia := f.grupo
	copia.Inscritos = len(f.inscritos)
	return &copia, nil
}

func (f *fakeGrupos) Asignar(_ context.Context, payload dto.AsignacionReq) (map[string]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.errAsignar != nil {
		return nil, f.errAsignar
	}
	f.asignados = append(f.asignados, payload.Estudiantes)
	for _, cod := range payload.Estudiantes {
		f.inscritos = append(f.inscritos, models.Estudiante{CodEstudiante: cod})
	}
	return map[string]interface{}{"success": true}, nil
}

func (f *fakeGrupos) Retirar(_ context.Context, codGrupo, codEstudiante string) (map[string]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.retirados = append(f.retirados, codEstudiante)
	filtrado := f.inscritos[:0]
	for _, est := range f.inscritos {
		if est.CodEstudiante != codEstudiante {
			filtrado = append(filtrado, est)
		}
	}
	f.inscritos = filtrado
	return map[string]interface{}{"success": true}, nil
}

func estudiantesDe(codigos ...string) []models.Estudiante {
	result := make([]models.Estudiante, len(codigos))
	for i, cod := range codigos {
		result[i] = models.Estudiante{CodEstudiante: cod, Nombres: "Nombre " + cod, Apellidos: "Apellido"}
	}
	return result
}

func nuevaPantalla(t *testing.T, grupos *fakeGrupos, roster []models.Estudiante) *GrupoAsignacionStore {
	t.Helper()
	estudiantes := &fakeEstudiantes{roster: roster}
	store := NuevoGrupoAsignacionStore(grupos, estudiantes, grupos.grupo.CodGrupo)
	res := store.Cargar(context.Background())
	assert.True(t, res.Exito)
	return store
}

func TestAsignacionCargarDerivaDisponibles(t *testing.T) {
	grupos := &fakeGrupos{
		grupo:     models.Grupo{CodGrupo: "G1", CupoMaximo: 30},
		inscritos: estudiantesDe("E1", "E2"),
	}
	store := nuevaPantalla(t, grupos, estudiantesDe("E1", "E2", "E3", "E4", "E5"))

	assert.Equal(t, FaseLista, store.Fase())
	assert.Len(t, store.Inscritos(), 2)
	assert.Len(t, store.Disponibles(), 3)
	assert.Equal(t, 2, store.Grupo().Inscritos)
	assert.Equal(t, 30, store.Grupo().CupoMaximo)
}

func TestAsignacionValidacionDeCupo(t *testing.T) {
	// cupo 30 con 28 inscritos: seleccionar 3 excede, 2 no
	inscritos := make([]models.Estudiante, 28)
	roster := make([]models.Estudiante, 0, 33)
	for i := 0; i < 28; i++ {
		cod := "I" + string(rune('A'+i/26)) + string(rune('A'+i%26))
		inscritos[i] = models.Estudiante{CodEstudiante: cod}
		roster = append(roster, inscritos[i])
	}
	roster = append(roster, estudiantesDe("N1", "N2", "N3", "N4", "N5")...)

	grupos := &fakeGrupos{grupo: models.Grupo{CodGrupo: "G1", CupoMaximo: 30}, inscritos: inscritos}
	store := nuevaPantalla(t, grupos, roster)

	store.ToggleSeleccion("N1")
	store.ToggleSeleccion("N2")
	store.ToggleSeleccion("N3")
	assert.True(t, store.CupoExcedido())
	assert.False(t, store.PuedeEnviar())

	store.ToggleSeleccion("N3")
	assert.False(t, store.CupoExcedido())
	assert.True(t, store.PuedeEnviar())
}

func TestAsignacionEnviarCortaEnLocalPorCupo(t *testing.T) {
	grupos := &fakeGrupos{
		grupo:     models.Grupo{CodGrupo: "G1", CupoMaximo: 3},
		inscritos: estudiantesDe("E1", "E2"),
	}
	store := nuevaPantalla(t, grupos, estudiantesDe("E1", "E2", "E3", "E4", "E5"))

	store.ToggleSeleccion("E3")
	store.ToggleSeleccion("E4")
	res := store.Enviar(context.Background())

	assert.False(t, res.Exito)
	assert.Empty(t, grupos.asignados) // la validación local nunca llega a la red
	banner := store.Banner()
	assert.NotNil(t, banner)
	assert.True(t, banner.EsError)
}

func TestAsignacionEnviarSinSeleccion(t *testing.T) {
	grupos := &fakeGrupos{grupo: models.Grupo{CodGrupo: "G1", CupoMaximo: 30}}
	store := nuevaPantalla(t, grupos, estudiantesDe("E1"))

	res := store.Enviar(context.Background())
	assert.False(t, res.Exito)
	assert.Empty(t, grupos.asignados)
}

func TestAsignacionEnviarExito(t *testing.T) {
	grupos := &fakeGrupos{
		grupo:     models.Grupo{CodGrupo: "G1", CupoMaximo: 30},
		inscritos: estudiantesDe("E1"),
	}
	store := nuevaPantalla(t, grupos, estudiantesDe("E1", "E2", "E3", "E4"))
	store.retardoBanner = 50 * time.Millisecond

	store.ToggleSeleccion("E2")
	store.ToggleSeleccion("E3")
	res := store.Enviar(context.Background())

	assert.True(t, res.Exito)
	assert.Len(t, grupos.asignados, 1)
	assert.ElementsMatch(t, []string{"E2", "E3"}, grupos.asignados[0])

	// tras el éxito: selección limpia, pantalla recargada y banner de éxito
	assert.Empty(t, store.Seleccionados())
	assert.Equal(t, FaseLista, store.Fase())
	assert.Len(t, store.Inscritos(), 3)
	assert.Len(t, store.Disponibles(), 1)
	banner := store.Banner()
	assert.NotNil(t, banner)
	assert.False(t, banner.EsError)

	// el banner se autodescarta pasado el retardo
	assert.Eventually(t, func() bool { return store.Banner() == nil }, time.Second, 10*time.Millisecond)
}

func TestAsignacionRechazoDelServidor(t *testing.T) {
	grupos := &fakeGrupos{
		grupo:      models.Grupo{CodGrupo: "G1", CupoMaximo: 30},
		inscritos:  estudiantesDe("E1"),
		errAsignar: &ords.Error{Status: 409, Mensaje: "el grupo fue cerrado por el docente"},
	}
	store := nuevaPantalla(t, grupos, estudiantesDe("E1", "E2"))

	store.ToggleSeleccion("E2")
	res := store.Enviar(context.Background())

	// el mensaje del servidor se muestra sin modificar y la pantalla vuelve a lista
	assert.False(t, res.Exito)
	assert.Equal(t, "el grupo fue cerrado por el docente", res.Error)
	assert.Equal(t, FaseLista, store.Fase())
	banner := store.Banner()
	assert.NotNil(t, banner)
	assert.Equal(t, "el grupo fue cerrado por el docente", banner.Texto)
	assert.True(t, banner.EsError)
	// la selección se conserva para reintentar
	assert.ElementsMatch(t, []string{"E2"}, store.Seleccionados())
}

func TestAsignacionFiltroYSeleccionarTodos(t *testing.T) {
	grupos := &fakeGrupos{grupo: models.Grupo{CodGrupo: "G1", CupoMaximo: 30}}
	roster := []models.Estudiante{
		{CodEstudiante: "E1", Nombres: "Ana María", Apellidos: "García"},
		{CodEstudiante: "E2", Nombres: "Carlos", Apellidos: "García"},
		{CodEstudiante: "E3", Nombres: "Luisa", Apellidos: "Pérez"},
	}
	store := nuevaPantalla(t, grupos, roster)

	store.EstablecerFiltro("garcía")
	assert.Len(t, store.Filtrados(), 2)

	// seleccionar-todos opera sobre la lista filtrada, no el roster completo
	store.SeleccionarTodos()
	assert.ElementsMatch(t, []string{"E1", "E2"}, store.Seleccionados())

	store.EstablecerFiltro("")
	assert.Len(t, store.Filtrados(), 3)

	store.LimpiarSeleccion()
	assert.Empty(t, store.Seleccionados())
}

func TestAsignacionRetiroConConfirmacion(t *testing.T) {
	grupos := &fakeGrupos{
		grupo:     models.Grupo{CodGrupo: "G1", CupoMaximo: 30},
		inscritos: estudiantesDe("E1", "E2"),
	}
	store := nuevaPantalla(t, grupos, estudiantesDe("E1", "E2", "E3"))

	store.PrepararRetiro("E1")
	assert.Equal(t, "E1", store.CandidatoRetiro())

	store.CancelarRetiro()
	assert.Empty(t, store.CandidatoRetiro())
	assert.Empty(t, grupos.retirados)

	store.PrepararRetiro("E1")
	res := store.ConfirmarRetiro(context.Background())

	assert.True(t, res.Exito)
	assert.Equal(t, []string{"E1"}, grupos.retirados)
	assert.Len(t, store.Inscritos(), 1)
	assert.Empty(t, store.CandidatoRetiro())
}

func TestAsignacionConfirmarRetiroSinCandidato(t *testing.T) {
	grupos := &fakeGrupos{grupo: models.Grupo{CodGrupo: "G1", CupoMaximo: 30}}
	store := nuevaPantalla(t, grupos, estudiantesDe("E1"))

	res := store.ConfirmarRetiro(context.Background())
	assert.False(t, res.Exito)
	assert.Empty(t, grupos.retirados)
}
