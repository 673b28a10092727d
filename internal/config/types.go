package config

// LogLevel controls the verbosity of the structured logger.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	ContentFile string      `yaml:"content_file" koanf:"content_file"`
	StaticDir   string      `yaml:"static_dir" koanf:"static_dir"`
	OutputDir   string      `yaml:"output_dir" koanf:"output_dir"`
	BasePath    string      `yaml:"base_path" koanf:"base_path"`
	SiteTitle   string      `yaml:"site_title,omitempty" koanf:"site_title"`
	Exclude     []string    `yaml:"exclude" koanf:"exclude"`
	LogLevel    LogLevel    `yaml:"log_level" koanf:"log_level"`
	Serve       ServeConfig `yaml:"serve" koanf:"serve"`
}

// ServeConfig holds dev-server settings.
type ServeConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	LiveReload      bool `yaml:"live_reload" koanf:"live_reload"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	DebounceMillis  int  `yaml:"debounce_ms" koanf:"debounce_ms"`
}
