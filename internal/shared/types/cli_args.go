package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	LogLevel   string
	Debug      bool
	NoBanner   bool

	// Overrides holds only the flags that were set explicitly; they win
	// over the config file.
	Overrides Config
}
