package config

// Config is the full runtime configuration.
type Config struct {
	Logging  Logging  `koanf:"logging"`
	History  History  `koanf:"history"`
	Observer Observer `koanf:"observer"`
}

// Logging controls the zap logger.
type Logging struct {
	Level  string `koanf:"level"`  // debug | info | warn | error
	Format string `koanf:"format"` // json | console
}

// History controls run-record persistence.
type History struct {
	Enabled bool `koanf:"enabled"`
	Limit   int  `koanf:"limit"` // default rows shown by the history command
}

// Observer configures the observer demonstration's subscriber names.
type Observer struct {
	Subscribers []string `koanf:"subscribers"`
}

// Default returns the hardcoded defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  "info",
			Format: "json",
		},
		History: History{
			Enabled: true,
			Limit:   10,
		},
		Observer: Observer{
			Subscribers: []string{"User1", "User2"},
		},
	}
}
