package services

import (
	"context"
	"net/url"

	"github.com/beego/beego/v2/core/logs"

	"github.com/udistrital/academico_mid/internal/dto"
	"github.com/udistrital/academico_mid/internal/ords"
	"github.com/udistrital/academico_mid/models"
)

// PeriodosService es la superficie 1:1 sobre /periodos de ORDS.
type PeriodosService struct {
	c *ords.Cliente
}

// NuevosPeriodos crea el servicio sobre el cliente recibido.
func NuevosPeriodos(c *ords.Cliente) *PeriodosService {
	return &PeriodosService{c: c}
}

// Listar consulta todos los períodos.
func (s *PeriodosService) Listar(ctx context.Context) (*models.ListaPaginada[models.Periodo], error) {
	var lista models.ListaPaginada[models.Periodo]
	if err := s.c.Peticion(ctx, "GET", "/periodos/", nil, nil, &lista); err != nil {
		return nil, err
	}
	return &lista, nil
}

// Activo trae el período vigente. El backend garantiza que hay a lo sumo uno;
// si no hay ninguno responde 404 y el error sube normalizado.
func (s *PeriodosService) Activo(ctx context.Context) (*models.Periodo, error) {
	var p models.Periodo
	if err := s.c.Peticion(ctx, "GET", "/periodos/activo", nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Obtener trae un período por su código compuesto, ej. "2025-1".
func (s *PeriodosService) Obtener(ctx context.Context, cod string) (*models.Periodo, error) {
	var p models.Periodo
	if err := s.c.Peticion(ctx, "GET", "/periodos/"+url.PathEscape(cod), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Crear registra un período nuevo.
func (s *PeriodosService) Crear(ctx context.Context, payload dto.PeriodoReq) (map[string]interface{}, error) {
	var resp map[string]interface{}
	if err := s.c.Peticion(ctx, "POST", "/periodos/", nil, payload, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Actualizar modifica las fechas o el estado del período.
func (s *PeriodosService) Actualizar(ctx context.Context, cod string, payload dto.PeriodoReq) (map[string]interface{}, error) {
	var resp map[string]interface{}
	if err := s.c.Peticion(ctx, "PUT", "/periodos/"+url.PathEscape(cod), nil, payload, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Eliminar borra el período indicado.
func (s *PeriodosService) Eliminar(ctx context.Context, cod string) (map[string]interface{}, error) {
	var resp map[string]interface{}
	if err := s.c.Peticion(ctx, "DELETE", "/periodos/"+url.PathEscape(cod), nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Activar marca el período como ACTIVO; el backend cierra el anterior.
func (s *PeriodosService) Activar(ctx context.Context, cod string) (map[string]interface{}, error) {
	var resp map[string]interface{}
	if err := s.c.Peticion(ctx, "POST", "/periodos/"+url.PathEscape(cod)+"/activar", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Cerrar marca el período como CERRADO.
func (s *PeriodosService) Cerrar(ctx context.Context, cod string) (map[string]interface{}, error) {
	var resp map[string]interface{}
	if err := s.c.Peticion(ctx, "POST", "/periodos/"+url.PathEscape(cod)+"/cerrar", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Estadisticas trae los agregados del período (matrículas, promedios, etc.).
func (s *PeriodosService) Estadisticas(ctx context.Context, cod string) (map[string]interface{}, error) {
	var resp map[string]interface{}
	if err := s.c.Peticion(ctx, "GET", "/periodos/"+url.PathEscape(cod)+"/estadisticas", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// EsPeriodoActivo es un predicado de conveniencia para render condicional:
// ante cualquier fallo registra el error y degrada a false en vez de propagarlo.
func (s *PeriodosService) EsPeriodoActivo(ctx context.Context, cod string) bool {
	p, err := s.Obtener(ctx, cod)
	if err != nil {
		logs.Warn("periodos: no se pudo verificar si", cod, "está activo:", err)
		return false
	}
	return p.Estado == models.PeriodoActivo
}
