package config

import "os"

// Config holds runtime settings for the xshare CLI.
type Config struct {
	DatabaseDSN   string `json:"database_dsn"   yaml:"database_dsn"   env:"DATABASE_DSN"`
	LogLevel      string `json:"log_level"      yaml:"log_level"      env:"LOG_LEVEL"`
	LogFormat     string `json:"log_format"     yaml:"log_format"     env:"LOG_FORMAT"`
	AdminUsername string `json:"admin_username" yaml:"admin_username" env:"ADMIN_USERNAME"`
	AdminEmail    string `json:"admin_email"    yaml:"admin_email"    env:"ADMIN_EMAIL"`
	AdminPassword string `json:"admin_password" yaml:"admin_password" env:"ADMIN_PASSWORD"`
}

// LoadDefaults populates c with sensible defaults. No admin is seeded by
// default.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "xshare.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.AdminUsername = "admin"
}

// LoadConfig builds a Config from os.Args and the process environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}

// Load applies defaults, then the config file, environment and flags found in
// args. Later sources take precedence over earlier ones.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseFile(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
