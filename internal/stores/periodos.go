package stores

import (
	"context"
	"sync"

	"github.com/udistrital/academico_mid/internal/dto"
	"github.com/udistrital/academico_mid/internal/ords"
	"github.com/udistrital/academico_mid/models"
)

// APIPeriodos es la porción del servicio de períodos que el store usa.
type APIPeriodos interface {
	Listar(ctx context.Context) (*models.ListaPaginada[models.Periodo], error)
	Activo(ctx context.Context) (*models.Periodo, error)
	Obtener(ctx context.Context, cod string) (*models.Periodo, error)
	Crear(ctx context.Context, payload dto.PeriodoReq) (map[string]interface{}, error)
	Actualizar(ctx context.Context, cod string, payload dto.PeriodoReq) (map[string]interface{}, error)
	Eliminar(ctx context.Context, cod string) (map[string]interface{}, error)
	Activar(ctx context.Context, cod string) (map[string]interface{}, error)
	Cerrar(ctx context.Context, cod string) (map[string]interface{}, error)
	Estadisticas(ctx context.Context, cod string) (map[string]interface{}, error)
}

// PeriodosStore sincroniza el listado de períodos y el período activo.
// El backend garantiza a lo sumo un período ACTIVO; el store lo asume.
type PeriodosStore struct {
	estadoBase
	api          APIPeriodos
	items        []models.Periodo
	activo       *models.Periodo
	seleccionado *models.Periodo
	estadisticas map[string]interface{}
}

// NuevoPeriodosStore crea el store sobre el servicio recibido.
func NuevoPeriodosStore(api APIPeriodos) *PeriodosStore {
	return &PeriodosStore{api: api}
}

// Items devuelve una copia del listado vigente.
func (s *PeriodosStore) Items() []models.Periodo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Periodo(nil), s.items...)
}

// Activo devuelve el período vigente, nil si no hay ninguno.
func (s *PeriodosStore) Activo() *models.Periodo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activo
}

// Seleccionado devuelve el período del detalle cargado.
func (s *PeriodosStore) Seleccionado() *models.Periodo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seleccionado
}

// Estadisticas devuelve los agregados del último período consultado.
func (s *PeriodosStore) Estadisticas() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.estadisticas
}

// PorEstado filtra el listado en memoria; no dispara red y se recalcula en
// cada llamada.
func (s *PeriodosStore) PorEstado(estado string) []models.Periodo {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]models.Periodo, 0, len(s.items))
	for _, p := range s.items {
		if p.Estado == estado {
			result = append(result, p)
		}
	}
	return result
}

// Cargar trae el listado y el período activo. Las dos llamadas son
// independientes: se emiten concurrentes y se espera a ambas sin asumir orden
// de terminación. Un 404 del activo significa que no hay período vigente.
func (s *PeriodosStore) Cargar(ctx context.Context) Resultado[[]models.Periodo] {
	gen := s.iniciar()
	return s.recargar(ctx, gen)
}

// CargarDetalle trae un período puntual.
func (s *PeriodosStore) CargarDetalle(ctx context.Context, cod string) Resultado[*models.Periodo] {
	gen := s.iniciar()
	p, err := s.api.Obtener(ctx, cod)
	if err != nil {
		mensaje := ords.MensajeDe(err, "Error cargando el período")
		s.terminar(gen, mensaje)
		return fallo[*models.Periodo](mensaje)
	}
	s.mu.Lock()
	if s.vigente(gen) {
		s.cargando = false
		s.errorMsg = ""
		s.seleccionado = p
	}
	s.mu.Unlock()
	return exito(p)
}

// CargarEstadisticas trae los agregados del período indicado.
func (s *PeriodosStore) CargarEstadisticas(ctx context.Context, cod string) Resultado[map[string]interface{}] {
	gen := s.iniciar()
	stats, err := s.api.Estadisticas(ctx, cod)
	if err != nil {
		mensaje := ords.MensajeDe(err, "Error cargando estadísticas del período")
		s.terminar(gen, mensaje)
		return fallo[map[string]interface{}](mensaje)
	}
	s.mu.Lock()
	if s.vigente(gen) {
		s.cargando = false
		s.errorMsg = ""
		s.estadisticas = stats
	}
	s.mu.Unlock()
	return exito(stats)
}

// Crear registra un período y recarga listado y activo.
func (s *PeriodosStore) Crear(ctx context.Context, payload dto.PeriodoReq) Resultado[map[string]interface{}] {
	return s.mutar(ctx, "Error creando el período", func(ctx context.Context) (map[string]interface{}, error) {
		return s.api.Crear(ctx, payload)
	})
}

// Actualizar modifica un período y recarga listado y activo.
func (s *PeriodosStore) Actualizar(ctx context.Context, cod string, payload dto.PeriodoReq) Resultado[map[string]interface{}] {
	return s.mutar(ctx, "Error actualizando el período", func(ctx context.Context) (map[string]interface{}, error) {
		return s.api.Actualizar(ctx, cod, payload)
	})
}

// Eliminar borra un período y recarga listado y activo.
func (s *PeriodosStore) Eliminar(ctx context.Context, cod string) Resultado[map[string]interface{}] {
	return s.mutar(ctx, "Error eliminando el período", func(ctx context.Context) (map[string]interface{}, error) {
		return s.api.Eliminar(ctx, cod)
	})
}

// Activar marca el período como vigente. El backend cierra el anterior por su
// cuenta; el store no parcha nada localmente, solo recarga.
func (s *PeriodosStore) Activar(ctx context.Context, cod string) Resultado[map[string]interface{}] {
	return s.mutar(ctx, "Error activando el período", func(ctx context.Context) (map[string]interface{}, error) {
		return s.api.Activar(ctx, cod)
	})
}

// Cerrar marca el período como cerrado y recarga.
func (s *PeriodosStore) Cerrar(ctx context.Context, cod string) Resultado[map[string]interface{}] {
	return s.mutar(ctx, "Error cerrando el período", func(ctx context.Context) (map[string]interface{}, error) {
		return s.api.Cerrar(ctx, cod)
	})
}

// mutar ejecuta la mutación y, en éxito, la recarga completa de listado y
// activo. La recarga corre dentro de la misma acción, después de la mutación.
func (s *PeriodosStore) mutar(ctx context.Context, fallback string, op func(context.Context) (map[string]interface{}, error)) Resultado[map[string]interface{}] {
	gen := s.iniciar()
	resp, err := op(ctx)
	if err != nil {
		mensaje := ords.MensajeDe(err, fallback)
		s.terminar(gen, mensaje)
		return fallo[map[string]interface{}](mensaje)
	}
	s.recargar(ctx, gen)
	return exito(resp)
}

// recargar emite listado y activo en paralelo, espera ambos y vuelca el
// resultado si la generación sigue vigente.
func (s *PeriodosStore) recargar(ctx context.Context, gen uint64) Resultado[[]models.Periodo] {
	var (
		wg        sync.WaitGroup
		lista     *models.ListaPaginada[models.Periodo]
		errLista  error
		activo    *models.Periodo
		errActivo error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		lista, errLista = s.api.Listar(ctx)
	}()
	go func() {
		defer wg.Done()
		activo, errActivo = s.api.Activo(ctx)
	}()
	wg.Wait()

	if errActivo != nil && ords.EsStatus(errActivo, 404) {
		// Sin período vigente; no es un fallo de la acción.
		activo, errActivo = nil, nil
	}

	if errLista != nil || errActivo != nil {
		err := errLista
		if err == nil {
			err = errActivo
		}
		mensaje := ords.MensajeDe(err, "Error cargando períodos")
		s.terminar(gen, mensaje)
		return fallo[[]models.Periodo](mensaje)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.vigente(gen) {
		s.cargando = false
		s.errorMsg = ""
		s.items = lista.Items
		s.activo = activo
	}
	return exito(append([]models.Periodo(nil), lista.Items...))
}
