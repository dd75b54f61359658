package ords

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/beego/beego/v2/core/logs"
	"github.com/google/uuid"
)

type claveContexto string

// claveCorrelacion transporta el X-Correlation-Id del request entrante.
const claveCorrelacion claveContexto = "correlacion"

// ConCorrelacion propaga un id de correlación hacia las llamadas salientes.
func ConCorrelacion(ctx context.Context, id string) context.Context {
	if strings.TrimSpace(id) == "" {
		return ctx
	}
	return context.WithValue(ctx, claveCorrelacion, strings.TrimSpace(id))
}

// Cliente es el adaptador de transporte hacia ORDS: una sola configuración de
// base URL, timeout e inyección de token, con normalización centralizada de
// errores por código de estado. Hace exactamente un intento por llamada; los
// reintentos, si los hubiera, son responsabilidad del consumidor.
type Cliente struct {
	base   string
	http   *http.Client
	sesion *Sesion
}

// NuevoCliente configura el adaptador. La sesión puede ser nil cuando las
// llamadas no requieren autenticación.
func NuevoCliente(baseURL string, timeout time.Duration, sesion *Sesion) *Cliente {
	return &Cliente{
		base:   strings.TrimSuffix(strings.TrimSpace(baseURL), "/"),
		http:   &http.Client{Timeout: timeout},
		sesion: sesion,
	}
}

// Sesion expone la sesión asociada al cliente.
func (c *Cliente) Sesion() *Sesion { return c.sesion }

// Peticion ejecuta una llamada JSON y decodifica la respuesta en out (puede ser
// nil). Los errores llegan siempre como *Error normalizado.
func (c *Cliente) Peticion(ctx context.Context, metodo, ruta string, params url.Values, body any, out any) error {
	raw, err := c.ejecutar(ctx, metodo, ruta, params, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Status: 0, Mensaje: "respuesta del servidor ilegible", Err: err}
	}
	return nil
}

// PeticionCruda ejecuta una llamada y devuelve el cuerpo sin decodificar;
// se usa para los blobs PDF/Excel de reportes.
func (c *Cliente) PeticionCruda(ctx context.Context, metodo, ruta string, params url.Values) ([]byte, error) {
	return c.ejecutar(ctx, metodo, ruta, params, nil)
}

func (c *Cliente) ejecutar(ctx context.Context, metodo, ruta string, params url.Values, body any) ([]byte, error) {
	endpoint := c.base + "/" + strings.TrimPrefix(ruta, "/")
	if params != nil {
		if encoded := params.Encode(); encoded != "" {
			endpoint = endpoint + "?" + encoded
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &Error{Status: 0, Mensaje: "cuerpo de la petición no serializable", Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, metodo, endpoint, reader)
	if err != nil {
		return nil, &Error{Status: 0, Mensaje: MensajeConexion, Err: err}
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.sesion != nil {
		if token := c.sesion.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	req.Header.Set("X-Correlation-Id", correlacionDe(ctx))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Status: 0, Mensaje: MensajeConexion, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Status: 0, Mensaje: MensajeConexion, Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Cierre de sesión forzado, independiente de quién hizo la llamada.
		if c.sesion != nil {
			logs.Warn("ords: 401 en", metodo, ruta, "- cerrando sesión")
			c.sesion.CerrarForzado()
		}
		return nil, c.normalizar(resp.StatusCode, raw)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.normalizar(resp.StatusCode, raw)
	}
	return raw, nil
}

// normalizar arma el *Error del status recibido: el detalle del servidor, si
// viene, sobreescribe el mensaje por defecto pero el error siempre se propaga.
func (c *Cliente) normalizar(status int, raw []byte) *Error {
	detalle := extraerDetalle(raw)
	mensaje := mensajePorStatus(status)
	if detalle != "" {
		mensaje = detalle
	}
	return &Error{Status: status, Mensaje: mensaje, Detalle: detalle}
}

// extraerDetalle busca el campo error del cuerpo de fallo de ORDS.
func extraerDetalle(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	var cuerpo struct {
		Error   string `json:"error"`
		Mensaje string `json:"mensaje"`
	}
	if err := json.Unmarshal(raw, &cuerpo); err != nil {
		return ""
	}
	if strings.TrimSpace(cuerpo.Error) != "" {
		return strings.TrimSpace(cuerpo.Error)
	}
	return strings.TrimSpace(cuerpo.Mensaje)
}

func correlacionDe(ctx context.Context) string {
	if id, ok := ctx.Value(claveCorrelacion).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}
