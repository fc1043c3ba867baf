// Package config loads runtime configuration for the xshare CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. A .env file in the working directory, if present, then environment
//     variables prefixed with XSHARE_.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   database DSN (SQLite file path, or memory:// for a throwaway board)
//	-v string   log level: debug, info, warn or error
//	-j          log as JSON instead of text
//	-u string   admin username to seed
//	-e string   admin email to seed; empty disables seeding
//	-p string   admin password to seed
//
// Environment variables
//
//	XSHARE_DATABASE_DSN, XSHARE_LOG_LEVEL, XSHARE_LOG_FORMAT,
//	XSHARE_ADMIN_USERNAME, XSHARE_ADMIN_EMAIL, XSHARE_ADMIN_PASSWORD
//
// # File schema
//
//	{
//	  "database_dsn": "xshare.db",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "admin_username": "admin",
//	  "admin_email": "admin@x.com",
//	  "admin_password": "pw"
//	}
package config
