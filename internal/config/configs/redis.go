package configs

import "time"

// Redis configures the optional creator cache backend. Addr accepts either
// a redis:// URL or host:port.
type Redis struct {
	Enabled bool          `env:"ENABLED" envDefault:"false"`
	Addr    string        `env:"ADDRESS" envDefault:"localhost:6379"`
	TTL     time.Duration `env:"TTL" envDefault:"24h"`
}
