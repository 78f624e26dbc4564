package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zapcore"
)

// Config contém as configurações do servidor de chat
type Config struct {
	Host               string        `env:"HOST"`
	Port               int           `env:"PORT,default=3000"`
	GinMode            string        `env:"GIN_MODE,default=release"`
	LogLevel           string        `env:"LOG_LEVEL,default=info"`
	ServiceName        string        `env:"SERVICE_NAME,default=chat-server"`
	LatestLimit        int           `env:"LATEST_LIMIT,default=10"`
	CORSAllowedOrigins string        `env:"CORS_ALLOWED_ORIGINS,default=*"`
	SwaggerEnabled     bool          `env:"SWAGGER_ENABLED,default=true"`
	MetricsEnabled     bool          `env:"METRICS_ENABLED,default=true"`
	ReadTimeout        time.Duration `env:"READ_TIMEOUT,default=5s"`
	WriteTimeout       time.Duration `env:"WRITE_TIMEOUT,default=5s"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s"`
}

// Load lê a configuração das variáveis de ambiente e a valida
func Load() (*Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("erro ao ler variáveis de ambiente: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate verifica valores que o decodificador não consegue checar
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT inválida: %d", c.Port)
	}
	if c.LatestLimit <= 0 {
		return fmt.Errorf("LATEST_LIMIT deve ser positivo: %d", c.LatestLimit)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL inválido: %w", err)
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("GIN_MODE inválido: %q", c.GinMode)
	}
	return nil
}

// Addr retorna o endereço de escuta do servidor HTTP
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// AllowedOrigins retorna a lista de origens aceitas pelo CORS
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// AllowAllOrigins indica se o CORS deve aceitar qualquer origem
func (c *Config) AllowAllOrigins() bool {
	origins := c.AllowedOrigins()
	return len(origins) == 0 || (len(origins) == 1 && origins[0] == "*")
}
