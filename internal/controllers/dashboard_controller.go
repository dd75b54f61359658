package controllers

import (
	"net/http"
	"sync"

	rootcontrollers "github.com/udistrital/academico_mid/controllers"
	internalservices "github.com/udistrital/academico_mid/internal/services"
	"github.com/udistrital/academico_mid/internal/stores"
	"github.com/udistrital/academico_mid/models"
)

// DashboardController arma el resumen de entrada del dashboard administrativo.
type DashboardController struct {
	rootcontrollers.BaseController
}

// GetResumen agrega período activo, conteo de alertas y ventanas vigentes.
// Las consultas son independientes: se emiten en paralelo y el resumen tolera
// la degradación parcial de los predicados de ventana.
// @router /v1/dashboard [get]
func (c *DashboardController) GetResumen() {
	ctx := requestContext(c.Ctx)

	periodos := stores.NuevoPeriodosStore(internalservices.Periodos())
	alertas := stores.NuevoAlertasStore(internalservices.Alertas())

	var wg sync.WaitGroup
	var resPeriodos stores.Resultado[[]models.Periodo]
	var resAlertas stores.Resultado[[]models.Alerta]
	var ventanaMatricula *models.Ventana

	wg.Add(3)
	go func() {
		defer wg.Done()
		resPeriodos = periodos.Cargar(ctx)
	}()
	go func() {
		defer wg.Done()
		resAlertas = alertas.Cargar(ctx)
	}()
	go func() {
		defer wg.Done()
		// Predicado tolerante: degrada a nil sin romper el resumen.
		ventanaMatricula = internalservices.Alertas().HayVentanaActiva(ctx, models.VentanaMatricula)
	}()
	wg.Wait()

	resumen := map[string]interface{}{
		"periodo_activo":    periodos.Activo(),
		"total_periodos":    len(periodos.Items()),
		"alertas_no_leidas": alertas.ConteoNoLeidas(),
		"total_alertas":     len(alertas.Items()),
		"ventana_matricula": ventanaMatricula,
		"periodos_cargados": resPeriodos.Exito,
		"alertas_cargadas":  resAlertas.Exito,
	}
	c.RespondSuccess(http.StatusOK, "", resumen)
}
