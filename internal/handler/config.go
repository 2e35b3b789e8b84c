package handler

// Config holds HTTP-facing settings.
type Config struct {
	AllowedOrigin     string `env:"CORS_ALLOWED_ORIGIN" envDefault:"*"`
	TrustedProxyCount int    `env:"TRUSTED_PROXY_COUNT" envDefault:"0"`
	MaxBodyBytes      int64  `env:"MAX_BODY_BYTES" envDefault:"65536"`
	StaticDir         string `env:"STATIC_DIR"`
}
