package database

// Config holds configuration for the database connection.
type Config struct {
	// Driver is the database driver (mysql, sqlite). Empty disables the database.
	Driver string `mapstructure:"driver" default:""`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name, or the file path for sqlite.
	Name string `mapstructure:"name" default:"imgbase"`
	// TimeoutSeconds is the connect, read and write timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}

// Enabled reports whether a database driver is configured.
func (c Config) Enabled() bool {
	return c.Driver != ""
}
