package stores

import (
	"context"

	"github.com/udistrital/academico_mid/internal/ords"
	"github.com/udistrital/academico_mid/internal/services"
	"github.com/udistrital/academico_mid/models"
)

// APIReportes es la porción del servicio de reportes que el store usa.
type APIReportes interface {
	Generar(ctx context.Context, tipo string, params services.ParamsReporte) (*models.Reporte, error)
	DescargarPDF(ctx context.Context, tipo string, params services.ParamsReporte) ([]byte, error)
	DescargarExcel(ctx context.Context, tipo string, params services.ParamsReporte) ([]byte, error)
}

// ReportesStore sincroniza el dataset del reporte en pantalla y sus descargas.
type ReportesStore struct {
	estadoBase
	api        APIReportes
	datos      *models.Reporte
	tipoActual string
}

// NuevoReportesStore crea el store sobre el servicio recibido.
func NuevoReportesStore(api APIReportes) *ReportesStore {
	return &ReportesStore{api: api}
}

// Datos devuelve el último reporte generado, nil si no hay.
func (s *ReportesStore) Datos() *models.Reporte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.datos
}

// TipoActual devuelve el tipo del reporte en pantalla.
func (s *ReportesStore) TipoActual() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tipoActual
}

// Generar trae el dataset del reporte. Un tipo fuera del catálogo es un error
// de validación local y nunca llega a la red.
func (s *ReportesStore) Generar(ctx context.Context, tipo string, params services.ParamsReporte) Resultado[*models.Reporte] {
	if !models.EsTipoReporte(tipo) {
		mensaje := "Tipo de reporte desconocido: " + tipo
		s.mu.Lock()
		s.errorMsg = mensaje
		s.mu.Unlock()
		return fallo[*models.Reporte](mensaje)
	}

	gen := s.iniciar()
	rep, err := s.api.Generar(ctx, tipo, params)
	if err != nil {
		mensaje := ords.MensajeDe(err, "Error generando el reporte")
		s.terminar(gen, mensaje)
		return fallo[*models.Reporte](mensaje)
	}
	s.mu.Lock()
	if s.vigente(gen) {
		s.cargando = false
		s.errorMsg = ""
		s.datos = rep
		s.tipoActual = tipo
	}
	s.mu.Unlock()
	return exito(rep)
}

// ExportarPDF descarga el blob PDF del reporte indicado.
func (s *ReportesStore) ExportarPDF(ctx context.Context, tipo string, params services.ParamsReporte) Resultado[[]byte] {
	return s.exportar(ctx, tipo, params, s.api.DescargarPDF, "Error exportando el reporte a PDF")
}

// ExportarExcel descarga el blob Excel del reporte indicado.
func (s *ReportesStore) ExportarExcel(ctx context.Context, tipo string, params services.ParamsReporte) Resultado[[]byte] {
	return s.exportar(ctx, tipo, params, s.api.DescargarExcel, "Error exportando el reporte a Excel")
}

func (s *ReportesStore) exportar(ctx context.Context, tipo string, params services.ParamsReporte, descargar func(context.Context, string, services.ParamsReporte) ([]byte, error), fallback string) Resultado[[]byte] {
	if !models.EsTipoReporte(tipo) {
		mensaje := "Tipo de reporte desconocido: " + tipo
		s.mu.Lock()
		s.errorMsg = mensaje
		s.mu.Unlock()
		return fallo[[]byte](mensaje)
	}

	gen := s.iniciar()
	blob, err := descargar(ctx, tipo, params)
	if err != nil {
		mensaje := ords.MensajeDe(err, fallback)
		s.terminar(gen, mensaje)
		return fallo[[]byte](mensaje)
	}
	s.terminar(gen, "")
	return exito(blob)
}
