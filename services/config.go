package services

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	beego "github.com/beego/beego/v2/server/web"
)

// DefaultORDSBaseURL es el endpoint local de desarrollo del esquema académico.
const DefaultORDSBaseURL = "http://localhost:8080/ords/academico"

// Config centraliza la configuración del MID académico.
type Config struct {
	AppName        string
	HTTPPort       int
	RunMode        string
	ORDSBaseURL    string
	RequestTimeout time.Duration
	SesionArchivo  string
	CORSOrigins    []string
}

var (
	cfg  Config
	once sync.Once
)

// GetConfig devuelve la configuración cargada desde variables de entorno o app.conf.
func GetConfig() Config {
	once.Do(func() {
		cfg = Config{
			AppName:        getString("APP_NAME", "appname", "academico_mid"),
			HTTPPort:       getInt("HTTP_PORT", "httpport", 8090),
			RunMode:        getString("RUN_MODE", "runmode", "dev"),
			ORDSBaseURL:    normalizeBase(getString("ORDS_BASE_URL", "ords_base_url", DefaultORDSBaseURL)),
			RequestTimeout: time.Duration(getInt("REQUEST_TIMEOUT_MS", "request_timeout_ms", 10000)) * time.Millisecond,
			SesionArchivo:  getString("SESION_ARCHIVO", "sesion_archivo", ""),
			CORSOrigins:    splitList(getString("CORS_ORIGINS", "cors_origins", "http://localhost:4200")),
		}

		if cfg.ORDSBaseURL == "" {
			panic("ORDS_BASE_URL no configurado")
		}
	})
	return cfg
}

func getString(envKey, confKey, def string) string {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		return val
	}
	if val, err := beego.AppConfig.String(confKey); err == nil && strings.TrimSpace(val) != "" {
		return val
	}
	return def
}

func getInt(envKey, confKey string, def int) int {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	if val, err := beego.AppConfig.Int(confKey); err == nil {
		return val
	}
	return def
}

func normalizeBase(value string) string {
	return strings.TrimSuffix(strings.TrimSpace(value), "/")
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
