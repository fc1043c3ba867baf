package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/xshare/internal/flagx"
)

// parseFlags overlays cfg with command-line flags. Only the flags listed here
// are parsed; -c/-config are handled by parseFile.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-v", "-j", "-u", "-e", "-p"})

	fs := flag.NewFlagSet("xshare", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")
	jsonLogs := fs.Bool("j", cfg.LogFormat == "json", "log as JSON")
	fs.StringVar(&cfg.AdminUsername, "u", cfg.AdminUsername, "admin username")
	fs.StringVar(&cfg.AdminEmail, "e", cfg.AdminEmail, "admin email")
	fs.StringVar(&cfg.AdminPassword, "p", cfg.AdminPassword, "admin password")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if *jsonLogs {
		cfg.LogFormat = "json"
	}
	return nil
}
