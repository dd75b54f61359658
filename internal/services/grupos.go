package services

import (
	"context"
	"net/url"

	"github.com/udistrital/academico_mid/internal/dto"
	"github.com/udistrital/academico_mid/internal/ords"
	"github.com/udistrital/academico_mid/models"
)

// GruposService es la superficie 1:1 sobre /grupos de ORDS.
type GruposService struct {
	c *ords.Cliente
}

// NuevosGrupos crea el servicio sobre el cliente recibido.
func NuevosGrupos(c *ords.Cliente) *GruposService {
	return &GruposService{c: c}
}

// Estudiantes trae los estudiantes inscritos en el grupo.
func (s *GruposService) Estudiantes(ctx context.Context, codGrupo string) (*models.ListaPaginada[models.Estudiante], error) {
	var lista models.ListaPaginada[models.Estudiante]
	if err := s.c.Peticion(ctx, "GET", "/grupos/"+url.PathEscape(codGrupo)+"/estudiantes", nil, nil, &lista); err != nil {
		return nil, err
	}
	return &lista, nil
}

// Estadisticas trae el cupo y la ocupación actual del grupo.
func (s *GruposService) Estadisticas(ctx context.Context, codGrupo string) (*models.Grupo, error) {
	var g models.Grupo
	if err := s.c.Peticion(ctx, "GET", "/grupos/"+url.PathEscape(codGrupo)+"/estadisticas", nil, nil, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// Asignar inscribe el lote de estudiantes al grupo. La validación de cupo del
// cliente es solo consultiva; la autoritativa ocurre en el servidor y su
// rechazo llega como error normalizado con el mensaje remoto intacto.
func (s *GruposService) Asignar(ctx context.Context, payload dto.AsignacionReq) (map[string]interface{}, error) {
	var resp map[string]interface{}
	ruta := "/grupos/" + url.PathEscape(payload.CodGrupo) + "/estudiantes"
	if err := s.c.Peticion(ctx, "POST", ruta, nil, payload, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Retirar desinscribe un único estudiante del grupo.
func (s *GruposService) Retirar(ctx context.Context, codGrupo, codEstudiante string) (map[string]interface{}, error) {
	var resp map[string]interface{}
	ruta := "/grupos/" + url.PathEscape(codGrupo) + "/estudiantes/" + url.PathEscape(codEstudiante)
	if err := s.c.Peticion(ctx, "DELETE", ruta, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
