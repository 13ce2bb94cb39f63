package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the admin routes.
	// An empty key leaves them open.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps the size of request bodies, and therefore uploads.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"10"`
}

const defaultBodyLimitMB = 10

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	mb := c.BodyLimitMB
	if mb <= 0 {
		mb = defaultBodyLimitMB
	}
	return mb * 1024 * 1024
}

// AdminProtected reports whether admin routes require the API key.
func (c Config) AdminProtected() bool {
	return c.ApiKey != ""
}
