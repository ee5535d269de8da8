package configs

import "time"

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 3000.
	Port         uint16        `env:"PORT" envDefault:"3000"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"60s"`
	// CORSOrigins lists origins allowed to call the API. "*" allows any.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
