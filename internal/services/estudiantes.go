package services

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/udistrital/academico_mid/internal/dto"
	"github.com/udistrital/academico_mid/internal/ords"
	"github.com/udistrital/academico_mid/models"
)

// Defaults de paginación del cliente; nunca mutan estado del servidor.
const (
	LimiteDefecto = 25
	OffsetDefecto = 0
)

// EstudiantesService es la superficie 1:1 sobre /estudiantes de ORDS.
// No transforma ni valida payloads; los errores suben tal como los
// normalizó el adaptador.
type EstudiantesService struct {
	c *ords.Cliente
}

// NuevosEstudiantes crea el servicio sobre el cliente recibido.
func NuevosEstudiantes(c *ords.Cliente) *EstudiantesService {
	return &EstudiantesService{c: c}
}

// FiltroEstudiantes agrupa los parámetros de consulta del listado.
type FiltroEstudiantes struct {
	Limit       int
	Offset      int
	Estado      string
	CodPrograma string
	Busqueda    string
}

func (f FiltroEstudiantes) values() url.Values {
	limit := f.Limit
	if limit <= 0 {
		limit = LimiteDefecto
	}
	offset := f.Offset
	if offset < 0 {
		offset = OffsetDefecto
	}
	v := url.Values{}
	v.Set("limit", strconv.Itoa(limit))
	v.Set("offset", strconv.Itoa(offset))
	if s := strings.TrimSpace(f.Estado); s != "" {
		v.Set("estado", s)
	}
	if s := strings.TrimSpace(f.CodPrograma); s != "" {
		v.Set("cod_programa", s)
	}
	if s := strings.TrimSpace(f.Busqueda); s != "" {
		v.Set("q", s)
	}
	return v
}

// Listar consulta el listado paginado de estudiantes.
func (s *EstudiantesService) Listar(ctx context.Context, filtro FiltroEstudiantes) (*models.ListaPaginada[models.Estudiante], error) {
	var lista models.ListaPaginada[models.Estudiante]
	if err := s.c.Peticion(ctx, "GET", "/estudiantes/", filtro.values(), nil, &lista); err != nil {
		return nil, err
	}
	return &lista, nil
}

// Obtener trae un estudiante por su código.
func (s *EstudiantesService) Obtener(ctx context.Context, cod string) (*models.Estudiante, error) {
	var est models.Estudiante
	if err := s.c.Peticion(ctx, "GET", "/estudiantes/"+url.PathEscape(cod), nil, nil, &est); err != nil {
		return nil, err
	}
	return &est, nil
}

// Crear registra un estudiante nuevo. La respuesta de mutación no tiene un
// esquema unificado, así que se entrega sin interpretar.
func (s *EstudiantesService) Crear(ctx context.Context, payload dto.EstudianteReq) (map[string]interface{}, error) {
	var resp map[string]interface{}
	if err := s.c.Peticion(ctx, "POST", "/estudiantes/", nil, payload, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Actualizar reemplaza los datos del estudiante indicado.
func (s *EstudiantesService) Actualizar(ctx context.Context, cod string, payload dto.EstudianteReq) (map[string]interface{}, error) {
	var resp map[string]interface{}
	if err := s.c.Peticion(ctx, "PUT", "/estudiantes/"+url.PathEscape(cod), nil, payload, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Eliminar borra el registro del estudiante.
func (s *EstudiantesService) Eliminar(ctx context.Context, cod string) (map[string]interface{}, error) {
	var resp map[string]interface{}
	if err := s.c.Peticion(ctx, "DELETE", "/estudiantes/"+url.PathEscape(cod), nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Historial trae el histórico académico del estudiante por período.
func (s *EstudiantesService) Historial(ctx context.Context, cod string) ([]map[string]interface{}, error) {
	var lista models.ListaPaginada[map[string]interface{}]
	if err := s.c.Peticion(ctx, "GET", "/estudiantes/"+url.PathEscape(cod)+"/historial", nil, nil, &lista); err != nil {
		return nil, err
	}
	return lista.Items, nil
}
