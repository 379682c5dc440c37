package app

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string // state directory, e.g. $HOME/.patternlab
	ConfigPath string // config file path; defaults to <home>/config.yaml
	Debug      bool   // raise log level and mirror logs to stderr
}
