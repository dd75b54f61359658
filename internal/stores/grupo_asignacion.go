package stores

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/udistrital/academico_mid/internal/dto"
	"github.com/udistrital/academico_mid/internal/ords"
	"github.com/udistrital/academico_mid/internal/services"
	"github.com/udistrital/academico_mid/models"
)

// APIGrupos es la porción del servicio de grupos que el store usa.
type APIGrupos interface {
	Estudiantes(ctx context.Context, codGrupo string) (*models.ListaPaginada[models.Estudiante], error)
	Estadisticas(ctx context.Context, codGrupo string) (*models.Grupo, error)
	Asignar(ctx context.Context, payload dto.AsignacionReq) (map[string]interface{}, error)
	Retirar(ctx context.Context, codGrupo, codEstudiante string) (map[string]interface{}, error)
}

// Fase es la etapa principal de la pantalla de asignación.
type Fase string

const (
	FaseCargando Fase = "CARGANDO"
	FaseLista    Fase = "LISTA"
	FaseEnviando Fase = "ENVIANDO"
)

// duracionBanner es cuánto permanece visible el banner transitorio.
const duracionBanner = 3 * time.Second

// limiteRoster cubre el listado completo de estudiantes para derivar los
// disponibles; la pantalla no pagina este conjunto.
const limiteRoster = 1000

// Banner es el mensaje transitorio de la pantalla; se autodescarta a los 3s.
type Banner struct {
	Texto   string
	EsError bool
}

// GrupoAsignacionStore maneja la pantalla de asignación de estudiantes a un
// grupo: carga concurrente de estadísticas, inscritos y roster; selección
// pendiente validada contra el cupo; envío por lote y retiro con confirmación
// explícita de un único candidato a la vez.
type GrupoAsignacionStore struct {
	estadoBase
	grupos      APIGrupos
	estudiantes APIEstudiantes

	codGrupo        string
	fase            Fase
	grupo           *models.Grupo
	inscritos       []models.Estudiante
	disponibles     []models.Estudiante
	seleccion       map[string]struct{}
	filtro          string
	candidatoRetiro string
	banner          *Banner
	temporizador    *time.Timer

	// retardoBanner es configurable solo para pruebas.
	retardoBanner time.Duration
}

// NuevoGrupoAsignacionStore crea el store para el grupo indicado.
func NuevoGrupoAsignacionStore(grupos APIGrupos, estudiantes APIEstudiantes, codGrupo string) *GrupoAsignacionStore {
	return &GrupoAsignacionStore{
		grupos:        grupos,
		estudiantes:   estudiantes,
		codGrupo:      codGrupo,
		fase:          FaseCargando,
		seleccion:     map[string]struct{}{},
		retardoBanner: duracionBanner,
	}
}

// Fase devuelve la etapa principal vigente.
func (s *GrupoAsignacionStore) Fase() Fase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fase
}

// Grupo devuelve las estadísticas del grupo (cupo y ocupación).
func (s *GrupoAsignacionStore) Grupo() *models.Grupo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grupo
}

// Inscritos devuelve una copia de los estudiantes ya inscritos.
func (s *GrupoAsignacionStore) Inscritos() []models.Estudiante {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Estudiante(nil), s.inscritos...)
}

// Disponibles devuelve una copia del roster menos los inscritos.
func (s *GrupoAsignacionStore) Disponibles() []models.Estudiante {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Estudiante(nil), s.disponibles...)
}

// Seleccionados devuelve los códigos pendientes de asignación.
func (s *GrupoAsignacionStore) Seleccionados() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	codes := make([]string, 0, len(s.seleccion))
	for cod := range s.seleccion {
		codes = append(codes, cod)
	}
	return codes
}

// Banner devuelve el mensaje transitorio vigente, nil si no hay.
func (s *GrupoAsignacionStore) Banner() *Banner {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.banner
}

// CandidatoRetiro devuelve el estudiante pendiente de confirmación de retiro;
// vacío cuando el overlay no está activo.
func (s *GrupoAsignacionStore) CandidatoRetiro() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.candidatoRetiro
}

// Cargar trae en paralelo estadísticas, inscritos y roster, espera los tres
// desenlaces sin asumir orden y deriva los disponibles restando inscritos por
// código.
func (s *GrupoAsignacionStore) Cargar(ctx context.Context) Resultado[[]models.Estudiante] {
	gen := s.iniciar()
	s.mu.Lock()
	s.fase = FaseCargando
	s.mu.Unlock()

	var (
		wg           sync.WaitGroup
		grupo        *models.Grupo
		errGrupo     error
		inscritos    *models.ListaPaginada[models.Estudiante]
		errInscritos error
		roster       *models.ListaPaginada[models.Estudiante]
		errRoster    error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		grupo, errGrupo = s.grupos.Estadisticas(ctx, s.codGrupo)
	}()
	go func() {
		defer wg.Done()
		inscritos, errInscritos = s.grupos.Estudiantes(ctx, s.codGrupo)
	}()
	go func() {
		defer wg.Done()
		roster, errRoster = s.estudiantes.Listar(ctx, services.FiltroEstudiantes{Limit: limiteRoster})
	}()
	wg.Wait()

	for _, err := range []error{errGrupo, errInscritos, errRoster} {
		if err != nil {
			mensaje := ords.MensajeDe(err, "Error cargando la información del grupo")
			s.terminar(gen, mensaje)
			return fallo[[]models.Estudiante](mensaje)
		}
	}

	enGrupo := make(map[string]struct{}, len(inscritos.Items))
	for _, est := range inscritos.Items {
		enGrupo[est.CodEstudiante] = struct{}{}
	}
	disponibles := make([]models.Estudiante, 0, len(roster.Items))
	for _, est := range roster.Items {
		if _, ok := enGrupo[est.CodEstudiante]; !ok {
			disponibles = append(disponibles, est)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.vigente(gen) {
		s.cargando = false
		s.errorMsg = ""
		s.fase = FaseLista
		s.grupo = grupo
		s.inscritos = inscritos.Items
		s.disponibles = disponibles
	}
	return exito(append([]models.Estudiante(nil), disponibles...))
}

// EstablecerFiltro fija la búsqueda local sobre los disponibles; no hay red.
func (s *GrupoAsignacionStore) EstablecerFiltro(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filtro = strings.TrimSpace(q)
}

// Filtrados devuelve los disponibles que coinciden con la búsqueda vigente.
func (s *GrupoAsignacionStore) Filtrados() []models.Estudiante {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filtradosLocked()
}

func (s *GrupoAsignacionStore) filtradosLocked() []models.Estudiante {
	if s.filtro == "" {
		return append([]models.Estudiante(nil), s.disponibles...)
	}
	q := strings.ToLower(s.filtro)
	result := make([]models.Estudiante, 0, len(s.disponibles))
	for _, est := range s.disponibles {
		if strings.Contains(strings.ToLower(est.Nombres), q) ||
			strings.Contains(strings.ToLower(est.Apellidos), q) ||
			strings.Contains(strings.ToLower(est.CodEstudiante), q) {
			result = append(result, est)
		}
	}
	return result
}

// ToggleSeleccion agrega o quita un código del conjunto pendiente.
func (s *GrupoAsignacionStore) ToggleSeleccion(cod string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seleccion[cod]; ok {
		delete(s.seleccion, cod)
		return
	}
	s.seleccion[cod] = struct{}{}
}

// SeleccionarTodos selecciona la lista filtrada vigente, no el roster entero.
func (s *GrupoAsignacionStore) SeleccionarTodos() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, est := range s.filtradosLocked() {
		s.seleccion[est.CodEstudiante] = struct{}{}
	}
}

// LimpiarSeleccion descarta el conjunto pendiente.
func (s *GrupoAsignacionStore) LimpiarSeleccion() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seleccion = map[string]struct{}{}
}

// CupoExcedido aplica la validación consultiva inscritos+seleccionados<=cupo.
// La validación autoritativa sigue siendo del servidor.
func (s *GrupoAsignacionStore) CupoExcedido() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cupoExcedidoLocked()
}

func (s *GrupoAsignacionStore) cupoExcedidoLocked() bool {
	if s.grupo == nil {
		return false
	}
	return s.grupo.Inscritos+len(s.seleccion) > s.grupo.CupoMaximo
}

// PuedeEnviar indica si el botón de envío debe estar habilitado.
func (s *GrupoAsignacionStore) PuedeEnviar() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fase == FaseLista && len(s.seleccion) > 0 && !s.cupoExcedidoLocked()
}

// Enviar somete la selección pendiente. El exceso de cupo se corta en local
// sin tocar la red, pero un rechazo del servidor sigue siendo posible (p.ej.
// carrera con otra inscripción) y su mensaje se muestra sin modificar.
func (s *GrupoAsignacionStore) Enviar(ctx context.Context) Resultado[map[string]interface{}] {
	s.mu.Lock()
	if len(s.seleccion) == 0 {
		s.mu.Unlock()
		return fallo[map[string]interface{}]("No hay estudiantes seleccionados")
	}
	if s.cupoExcedidoLocked() {
		s.mu.Unlock()
		mensaje := "La selección excede el cupo máximo del grupo"
		s.mostrarBanner(mensaje, true)
		return fallo[map[string]interface{}](mensaje)
	}
	codes := make([]string, 0, len(s.seleccion))
	for cod := range s.seleccion {
		codes = append(codes, cod)
	}
	s.fase = FaseEnviando
	s.mu.Unlock()

	gen := s.iniciar()
	resp, err := s.grupos.Asignar(ctx, dto.AsignacionReq{CodGrupo: s.codGrupo, Estudiantes: codes})
	if err != nil {
		mensaje := ords.MensajeDe(err, "Error asignando estudiantes al grupo")
		s.terminar(gen, mensaje)
		s.mu.Lock()
		s.fase = FaseLista
		s.mu.Unlock()
		s.mostrarBanner(mensaje, true)
		return fallo[map[string]interface{}](mensaje)
	}

	s.LimpiarSeleccion()
	s.Cargar(ctx)
	s.mostrarBanner("Estudiantes asignados correctamente", false)
	return exito(resp)
}

// PrepararRetiro activa el overlay de confirmación con un único candidato.
func (s *GrupoAsignacionStore) PrepararRetiro(codEstudiante string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidatoRetiro = codEstudiante
}

// CancelarRetiro descarta el overlay sin tocar el servidor.
func (s *GrupoAsignacionStore) CancelarRetiro() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidatoRetiro = ""
}

// ConfirmarRetiro llama el retiro individual del candidato y recarga.
func (s *GrupoAsignacionStore) ConfirmarRetiro(ctx context.Context) Resultado[map[string]interface{}] {
	s.mu.Lock()
	candidato := s.candidatoRetiro
	s.candidatoRetiro = ""
	s.mu.Unlock()

	if candidato == "" {
		return fallo[map[string]interface{}]("No hay estudiante pendiente de retiro")
	}

	gen := s.iniciar()
	resp, err := s.grupos.Retirar(ctx, s.codGrupo, candidato)
	if err != nil {
		mensaje := ords.MensajeDe(err, "Error retirando el estudiante del grupo")
		s.terminar(gen, mensaje)
		s.mostrarBanner(mensaje, true)
		return fallo[map[string]interface{}](mensaje)
	}

	s.Cargar(ctx)
	s.mostrarBanner("Estudiante retirado del grupo", false)
	return exito(resp)
}

// mostrarBanner publica el mensaje transitorio y programa su autodescarte,
// independiente de cualquier acción posterior del usuario.
func (s *GrupoAsignacionStore) mostrarBanner(texto string, esError bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.temporizador != nil {
		s.temporizador.Stop()
	}
	s.banner = &Banner{Texto: texto, EsError: esError}
	s.temporizador = time.AfterFunc(s.retardoBanner, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.banner = nil
	})
}
