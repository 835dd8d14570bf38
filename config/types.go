package config

// InputConfig names the network model to export
type InputConfig struct {
	Model string `yaml:"model" validate:"required"`
}

// CacheConfig contains cache file configuration
type CacheConfig struct {
	// Path of the cache document; empty disables caching.
	Path            string  `yaml:"path"`
	Threshold       float64 `yaml:"threshold" validate:"gte=0"`
	StrictEntrances bool    `yaml:"strictEntrances"`
}

// ExportConfig contains export output configuration
type ExportConfig struct {
	Output  string `yaml:"output"`
	Indent  bool   `yaml:"indent"`
	Workers int    `yaml:"workers" validate:"gte=0,lte=64"`
}

// LoggingConfig contains log output configuration
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=console json"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Input   InputConfig   `yaml:"input"`
	Cache   CacheConfig   `yaml:"cache"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}
