package stores

import (
	"context"
	"sync"

	"github.com/udistrital/academico_mid/internal/ords"
	"github.com/udistrital/academico_mid/models"
)

// APIAlertas es la porción del servicio de alertas que el store usa.
type APIAlertas interface {
	ReporteGeneral(ctx context.Context) (*models.ListaPaginada[models.Alerta], error)
	AsistenciaBaja(ctx context.Context, codPeriodo string) (*models.ListaPaginada[models.Alerta], error)
	VentanasCalendario(ctx context.Context) (*models.ListaPaginada[models.Ventana], error)
	MarcarLeida(ctx context.Context, id int64) (map[string]interface{}, error)
}

// ResumenMarcado reporta el desenlace de marcar-todas-como-leídas. Un fallo
// parcial se ve en los conteos, no como error duro.
type ResumenMarcado struct {
	Total    int `json:"total"`
	Exitosas int `json:"exitosas"`
}

// AlertasStore sincroniza las alertas del sistema y las ventanas de calendario.
type AlertasStore struct {
	estadoBase
	api      APIAlertas
	items    []models.Alerta
	ventanas []models.Ventana
}

// NuevoAlertasStore crea el store sobre el servicio recibido.
func NuevoAlertasStore(api APIAlertas) *AlertasStore {
	return &AlertasStore{api: api}
}

// Items devuelve una copia de las alertas cargadas.
func (s *AlertasStore) Items() []models.Alerta {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Alerta(nil), s.items...)
}

// Ventanas devuelve una copia de las ventanas cargadas.
func (s *AlertasStore) Ventanas() []models.Ventana {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Ventana(nil), s.ventanas...)
}

// ConteoNoLeidas cuenta las alertas sin fecha_lectura y con leida falso.
// Se recalcula en cada llamada sobre los items en memoria.
func (s *AlertasStore) ConteoNoLeidas() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, a := range s.items {
		if !a.Leida() {
			count++
		}
	}
	return count
}

// PorPrioridad filtra en memoria; no dispara red.
func (s *AlertasStore) PorPrioridad(prioridad string) []models.Alerta {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]models.Alerta, 0, len(s.items))
	for _, a := range s.items {
		if a.Prioridad == prioridad {
			result = append(result, a)
		}
	}
	return result
}

// PorTipo filtra en memoria; no dispara red.
func (s *AlertasStore) PorTipo(tipo string) []models.Alerta {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]models.Alerta, 0, len(s.items))
	for _, a := range s.items {
		if a.TipoAlerta == tipo {
			result = append(result, a)
		}
	}
	return result
}

// Cargar trae el reporte general de alertas.
func (s *AlertasStore) Cargar(ctx context.Context) Resultado[[]models.Alerta] {
	gen := s.iniciar()
	lista, err := s.api.ReporteGeneral(ctx)
	if err != nil {
		mensaje := ords.MensajeDe(err, "Error cargando alertas")
		s.terminar(gen, mensaje)
		return fallo[[]models.Alerta](mensaje)
	}
	s.volcarItems(gen, lista.Items)
	return exito(append([]models.Alerta(nil), lista.Items...))
}

// CargarAsistenciaBaja trae las alertas de inasistencia del período.
func (s *AlertasStore) CargarAsistenciaBaja(ctx context.Context, codPeriodo string) Resultado[[]models.Alerta] {
	gen := s.iniciar()
	lista, err := s.api.AsistenciaBaja(ctx, codPeriodo)
	if err != nil {
		mensaje := ords.MensajeDe(err, "Error cargando alertas de asistencia")
		s.terminar(gen, mensaje)
		return fallo[[]models.Alerta](mensaje)
	}
	s.volcarItems(gen, lista.Items)
	return exito(append([]models.Alerta(nil), lista.Items...))
}

// CargarVentanas trae las ventanas del calendario académico.
func (s *AlertasStore) CargarVentanas(ctx context.Context) Resultado[[]models.Ventana] {
	gen := s.iniciar()
	lista, err := s.api.VentanasCalendario(ctx)
	if err != nil {
		mensaje := ords.MensajeDe(err, "Error cargando ventanas de calendario")
		s.terminar(gen, mensaje)
		return fallo[[]models.Ventana](mensaje)
	}
	s.mu.Lock()
	if s.vigente(gen) {
		s.cargando = false
		s.errorMsg = ""
		s.ventanas = lista.Items
	}
	s.mu.Unlock()
	return exito(append([]models.Ventana(nil), lista.Items...))
}

// MarcarLeida confirma la lectura en el servidor y solo entonces recarga; el
// estado local nunca se adelanta a la confirmación.
func (s *AlertasStore) MarcarLeida(ctx context.Context, id int64) Resultado[map[string]interface{}] {
	gen := s.iniciar()
	resp, err := s.api.MarcarLeida(ctx, id)
	if err != nil {
		mensaje := ords.MensajeDe(err, "Error marcando la alerta como leída")
		s.terminar(gen, mensaje)
		return fallo[map[string]interface{}](mensaje)
	}
	s.recargarGeneral(ctx, gen)
	return exito(resp)
}

// MarcarTodasLeidas dispara una llamada por cada alerta no leída, todas en
// paralelo, y espera todos los desenlaces aunque alguno falle. El resultado
// agrega éxito solo si todas las llamadas lo tuvieron.
func (s *AlertasStore) MarcarTodasLeidas(ctx context.Context) Resultado[ResumenMarcado] {
	s.mu.Lock()
	pendientes := make([]int64, 0, len(s.items))
	for _, a := range s.items {
		if !a.Leida() {
			pendientes = append(pendientes, a.Id)
		}
	}
	s.mu.Unlock()

	resumen := ResumenMarcado{Total: len(pendientes)}
	if resumen.Total == 0 {
		return exito(resumen)
	}

	gen := s.iniciar()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		exitosas int
	)
	for _, id := range pendientes {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			if _, err := s.api.MarcarLeida(ctx, id); err == nil {
				mu.Lock()
				exitosas++
				mu.Unlock()
			}
		}(id)
	}
	wg.Wait()
	resumen.Exitosas = exitosas

	s.recargarGeneral(ctx, gen)

	if resumen.Exitosas < resumen.Total {
		return Resultado[ResumenMarcado]{Exito: false, Datos: resumen}
	}
	return exito(resumen)
}

func (s *AlertasStore) volcarItems(gen uint64, items []models.Alerta) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.vigente(gen) {
		return
	}
	s.cargando = false
	s.errorMsg = ""
	s.items = items
}

func (s *AlertasStore) recargarGeneral(ctx context.Context, gen uint64) {
	lista, err := s.api.ReporteGeneral(ctx)
	if err != nil {
		s.terminar(gen, ords.MensajeDe(err, "Error cargando alertas"))
		return
	}
	s.volcarItems(gen, lista.Items)
}
