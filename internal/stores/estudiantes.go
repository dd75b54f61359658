package stores

import (
	"context"

	"github.com/udistrital/academico_mid/internal/dto"
	"github.com/udistrital/academico_mid/internal/ords"
	"github.com/udistrital/academico_mid/internal/services"
	"github.com/udistrital/academico_mid/models"
)

// APIEstudiantes es la porción del servicio de estudiantes que el store usa.
type APIEstudiantes interface {
	Listar(ctx context.Context, filtro services.FiltroEstudiantes) (*models.ListaPaginada[models.Estudiante], error)
	Obtener(ctx context.Context, cod string) (*models.Estudiante, error)
	Crear(ctx context.Context, payload dto.EstudianteReq) (map[string]interface{}, error)
	Actualizar(ctx context.Context, cod string, payload dto.EstudianteReq) (map[string]interface{}, error)
	Eliminar(ctx context.Context, cod string) (map[string]interface{}, error)
	Historial(ctx context.Context, cod string) ([]map[string]interface{}, error)
}

// Paginacion es el cursor de listado de estudiantes.
type Paginacion struct {
	Offset  int
	Limit   int
	HasMore bool
	Count   int
}

// EstudiantesStore sincroniza el listado paginado de estudiantes, el detalle
// seleccionado y las mutaciones CRUD. Es el único store con paginación.
type EstudiantesStore struct {
	estadoBase
	api          APIEstudiantes
	items        []models.Estudiante
	seleccionado *models.Estudiante
	historial    []map[string]interface{}
	pag          Paginacion
	estado       string
	codPrograma  string
	busqueda     string
}

// NuevoEstudiantesStore crea el store con la paginación por defecto.
func NuevoEstudiantesStore(api APIEstudiantes) *EstudiantesStore {
	return &EstudiantesStore{
		api: api,
		pag: Paginacion{Offset: services.OffsetDefecto, Limit: services.LimiteDefecto},
	}
}

// Items devuelve una copia del listado vigente.
func (s *EstudiantesStore) Items() []models.Estudiante {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Estudiante(nil), s.items...)
}

// Seleccionado devuelve el estudiante del detalle cargado, nil si no hay.
func (s *EstudiantesStore) Seleccionado() *models.Estudiante {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seleccionado
}

// Historial devuelve el histórico académico del detalle cargado.
func (s *EstudiantesStore) Historial() []map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]interface{}(nil), s.historial...)
}

// Paginacion devuelve el cursor vigente.
func (s *EstudiantesStore) Paginacion() Paginacion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pag
}

// Cargar trae la página vigente del listado aplicando los filtros activos.
func (s *EstudiantesStore) Cargar(ctx context.Context) Resultado[[]models.Estudiante] {
	gen := s.iniciar()
	return s.recargar(ctx, gen)
}

// Filtrar fija los criterios de búsqueda, reinicia el cursor y recarga.
func (s *EstudiantesStore) Filtrar(ctx context.Context, estado, codPrograma, busqueda string) Resultado[[]models.Estudiante] {
	s.mu.Lock()
	s.estado = estado
	s.codPrograma = codPrograma
	s.busqueda = busqueda
	s.pag.Offset = 0
	s.mu.Unlock()
	return s.Cargar(ctx)
}

// SiguientePagina avanza el cursor. Sin más páginas es un no-op: no cambia el
// offset ni dispara red.
func (s *EstudiantesStore) SiguientePagina(ctx context.Context) Resultado[[]models.Estudiante] {
	s.mu.Lock()
	if !s.pag.HasMore {
		items := append([]models.Estudiante(nil), s.items...)
		s.mu.Unlock()
		return exito(items)
	}
	s.pag.Offset += s.pag.Limit
	s.mu.Unlock()
	return s.Cargar(ctx)
}

// PaginaAnterior retrocede el cursor con piso en cero; en la primera página es
// un no-op sin red.
func (s *EstudiantesStore) PaginaAnterior(ctx context.Context) Resultado[[]models.Estudiante] {
	s.mu.Lock()
	if s.pag.Offset <= 0 {
		s.pag.Offset = 0
		items := append([]models.Estudiante(nil), s.items...)
		s.mu.Unlock()
		return exito(items)
	}
	s.pag.Offset -= s.pag.Limit
	if s.pag.Offset < 0 {
		s.pag.Offset = 0
	}
	s.mu.Unlock()
	return s.Cargar(ctx)
}

// CambiarLimite fija el tamaño de página, reinicia el offset y recarga.
func (s *EstudiantesStore) CambiarLimite(ctx context.Context, limit int) Resultado[[]models.Estudiante] {
	if limit <= 0 {
		limit = services.LimiteDefecto
	}
	s.mu.Lock()
	s.pag.Limit = limit
	s.pag.Offset = 0
	s.mu.Unlock()
	return s.Cargar(ctx)
}

// CargarDetalle trae el estudiante indicado junto con su historial. Las dos
// llamadas dependen entre sí solo en presentación, pero se ejecutan en orden
// estricto dentro de la acción.
func (s *EstudiantesStore) CargarDetalle(ctx context.Context, cod string) Resultado[*models.Estudiante] {
	gen := s.iniciar()

	est, err := s.api.Obtener(ctx, cod)
	if err != nil {
		mensaje := ords.MensajeDe(err, "Error cargando el estudiante")
		s.terminar(gen, mensaje)
		return fallo[*models.Estudiante](mensaje)
	}

	historial, err := s.api.Historial(ctx, cod)
	if err != nil {
		mensaje := ords.MensajeDe(err, "Error cargando el historial")
		s.terminar(gen, mensaje)
		return fallo[*models.Estudiante](mensaje)
	}

	s.mu.Lock()
	if s.vigente(gen) {
		s.cargando = false
		s.errorMsg = ""
		s.seleccionado = est
		s.historial = historial
	}
	s.mu.Unlock()
	return exito(est)
}

// Crear registra un estudiante y recarga el listado completo.
func (s *EstudiantesStore) Crear(ctx context.Context, payload dto.EstudianteReq) Resultado[map[string]interface{}] {
	gen := s.iniciar()
	resp, err := s.api.Crear(ctx, payload)
	if err != nil {
		mensaje := ords.MensajeDe(err, "Error creando el estudiante")
		s.terminar(gen, mensaje)
		return fallo[map[string]interface{}](mensaje)
	}
	s.recargar(ctx, gen)
	return exito(resp)
}

// Actualizar modifica un estudiante y recarga el listado completo.
func (s *EstudiantesStore) Actualizar(ctx context.Context, cod string, payload dto.EstudianteReq) Resultado[map[string]interface{}] {
	gen := s.iniciar()
	resp, err := s.api.Actualizar(ctx, cod, payload)
	if err != nil {
		mensaje := ords.MensajeDe(err, "Error actualizando el estudiante")
		s.terminar(gen, mensaje)
		return fallo[map[string]interface{}](mensaje)
	}
	s.recargar(ctx, gen)
	return exito(resp)
}

// Eliminar borra un estudiante y recarga el listado completo.
func (s *EstudiantesStore) Eliminar(ctx context.Context, cod string) Resultado[map[string]interface{}] {
	gen := s.iniciar()
	resp, err := s.api.Eliminar(ctx, cod)
	if err != nil {
		mensaje := ords.MensajeDe(err, "Error eliminando el estudiante")
		s.terminar(gen, mensaje)
		return fallo[map[string]interface{}](mensaje)
	}
	s.recargar(ctx, gen)
	return exito(resp)
}

// recargar trae la página vigente y vuelca el resultado si la generación
// sigue siendo la actual; una respuesta tardía se descarta sin tocar estado.
func (s *EstudiantesStore) recargar(ctx context.Context, gen uint64) Resultado[[]models.Estudiante] {
	s.mu.Lock()
	filtro := services.FiltroEstudiantes{
		Limit:       s.pag.Limit,
		Offset:      s.pag.Offset,
		Estado:      s.estado,
		CodPrograma: s.codPrograma,
		Busqueda:    s.busqueda,
	}
	s.mu.Unlock()

	lista, err := s.api.Listar(ctx, filtro)
	if err != nil {
		mensaje := ords.MensajeDe(err, "Error cargando estudiantes")
		s.terminar(gen, mensaje)
		return fallo[[]models.Estudiante](mensaje)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.vigente(gen) {
		s.cargando = false
		s.errorMsg = ""
		s.items = lista.Items
		s.pag.HasMore = lista.HasMore
		s.pag.Count = lista.Count
	}
	return exito(append([]models.Estudiante(nil), lista.Items...))
}
