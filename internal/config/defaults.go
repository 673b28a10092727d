package config

import "github.com/ziadkadry99/folio/internal/site"

// DefaultConfigFile is where commands look for configuration.
const DefaultConfigFile = ".folio.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ContentFile: "portfolio.yml",
		StaticDir:   "public",
		OutputDir:   "dist",
		BasePath:    "/",
		Exclude:     append([]string(nil), site.DefaultExcludes...),
		LogLevel:    LogInfo,
		Serve: ServeConfig{
			Port:           8080,
			LiveReload:     true,
			DebounceMillis: 300,
		},
	}
}
