package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/beego/beego/v2/core/logs"

	"github.com/udistrital/academico_mid/internal/ords"
	"github.com/udistrital/academico_mid/models"
)

// AlertasService es la superficie 1:1 sobre /alertas de ORDS.
type AlertasService struct {
	c *ords.Cliente
}

// NuevasAlertas crea el servicio sobre el cliente recibido.
func NuevasAlertas(c *ords.Cliente) *AlertasService {
	return &AlertasService{c: c}
}

// AsistenciaBaja trae las alertas de inasistencia del período indicado.
func (s *AlertasService) AsistenciaBaja(ctx context.Context, codPeriodo string) (*models.ListaPaginada[models.Alerta], error) {
	var lista models.ListaPaginada[models.Alerta]
	if err := s.c.Peticion(ctx, "GET", "/alertas/asistencia-baja/"+url.PathEscape(codPeriodo), nil, nil, &lista); err != nil {
		return nil, err
	}
	return &lista, nil
}

// ReporteGeneral trae todas las alertas vigentes del sistema.
func (s *AlertasService) ReporteGeneral(ctx context.Context) (*models.ListaPaginada[models.Alerta], error) {
	var lista models.ListaPaginada[models.Alerta]
	if err := s.c.Peticion(ctx, "GET", "/alertas/reporte-general", nil, nil, &lista); err != nil {
		return nil, err
	}
	return &lista, nil
}

// VentanasCalendario trae todas las ventanas del calendario académico.
func (s *AlertasService) VentanasCalendario(ctx context.Context) (*models.ListaPaginada[models.Ventana], error) {
	var lista models.ListaPaginada[models.Ventana]
	if err := s.c.Peticion(ctx, "GET", "/alertas/ventanas-calendario", nil, nil, &lista); err != nil {
		return nil, err
	}
	return &lista, nil
}

// VentanaActiva trae la ventana vigente del tipo dado; 404 si no hay ninguna.
func (s *AlertasService) VentanaActiva(ctx context.Context, tipo string) (*models.Ventana, error) {
	var v models.Ventana
	if err := s.c.Peticion(ctx, "GET", "/alertas/ventana-activa/"+url.PathEscape(tipo), nil, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// MarcarLeida registra la lectura de la alerta en el servidor. El estado local
// solo se refresca después de esta confirmación, nunca antes.
func (s *AlertasService) MarcarLeida(ctx context.Context, id int64) (map[string]interface{}, error) {
	var resp map[string]interface{}
	if err := s.c.Peticion(ctx, "PUT", "/alertas/"+strconv.FormatInt(id, 10)+"/leida", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// HayVentanaActiva es un predicado de conveniencia para render condicional:
// cualquier fallo (incluido 404) se registra y degrada a nil sin propagarse.
func (s *AlertasService) HayVentanaActiva(ctx context.Context, tipo string) *models.Ventana {
	v, err := s.VentanaActiva(ctx, tipo)
	if err != nil {
		if !ords.EsStatus(err, 404) {
			logs.Warn("alertas: no se pudo consultar ventana", tipo, ":", err)
		}
		return nil
	}
	return v
}
