package services

import (
	"context"
	"net/url"
	"strings"

	"github.com/udistrital/academico_mid/internal/ords"
	"github.com/udistrital/academico_mid/models"
)

// ReportesService es la superficie 1:1 sobre /reportes de ORDS. Los 18 tipos
// comparten la misma convención de parámetros.
type ReportesService struct {
	c *ords.Cliente
}

// NuevosReportes crea el servicio sobre el cliente recibido.
func NuevosReportes(c *ords.Cliente) *ReportesService {
	return &ReportesService{c: c}
}

// ParamsReporte agrupa los parámetros de la convención compartida: periodo
// obligatorio y los demás según el tipo de reporte.
type ParamsReporte struct {
	Periodo       string
	CodPrograma   string
	CodAsignatura string
	Cohorte       string
}

func (p ParamsReporte) values() url.Values {
	v := url.Values{}
	if s := strings.TrimSpace(p.Periodo); s != "" {
		v.Set("periodo", s)
	}
	if s := strings.TrimSpace(p.CodPrograma); s != "" {
		v.Set("cod_programa", s)
	}
	if s := strings.TrimSpace(p.CodAsignatura); s != "" {
		v.Set("cod_asignatura", s)
	}
	if s := strings.TrimSpace(p.Cohorte); s != "" {
		v.Set("cohorte", s)
	}
	return v
}

// Generar trae el dataset del reporte indicado. El payload es opaco y se
// entrega sin interpretar; solo la metadata de generación está tipada.
func (s *ReportesService) Generar(ctx context.Context, tipo string, params ParamsReporte) (*models.Reporte, error) {
	var rep models.Reporte
	if err := s.c.Peticion(ctx, "GET", "/reportes/"+url.PathEscape(tipo), params.values(), nil, &rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

// DescargarPDF trae el reporte renderizado como blob PDF.
func (s *ReportesService) DescargarPDF(ctx context.Context, tipo string, params ParamsReporte) ([]byte, error) {
	return s.c.PeticionCruda(ctx, "GET", "/reportes/"+url.PathEscape(tipo)+"/pdf", params.values())
}

// DescargarExcel trae el reporte renderizado como blob Excel.
func (s *ReportesService) DescargarExcel(ctx context.Context, tipo string, params ParamsReporte) ([]byte, error) {
	return s.c.PeticionCruda(ctx, "GET", "/reportes/"+url.PathEscape(tipo)+"/excel", params.values())
}
