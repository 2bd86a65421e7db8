package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithMoves includes legal moves in JSON output.
func (b *ConfigBuilder) WithMoves(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowMoves = enabled
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithAutoReset starts a new game whenever one ends.
func (b *ConfigBuilder) WithAutoReset(enabled bool) *ConfigBuilder {
	b.cfg.AutoReset = enabled
	return b
}

// WithPerft sets the perft depth and divide mode.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Divide = divide
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithVerify enables cross-checking against the oracle.
func (b *ConfigBuilder) WithVerify(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Verify = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
