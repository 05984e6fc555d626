package config

// Config represents the daemon configuration
type Config struct {
	LogLevel   string      `yaml:"log_level"`
	Simulation *Simulation `yaml:"simulation,omitempty"`
}

// Simulation holds engine-level settings shared by all runs
type Simulation struct {
	// Workers is the worker-thread count; 0 means use all hardware threads.
	// The DIFFUSION_NUM_THREADS environment variable takes precedence over
	// a zero value here.
	Workers int `yaml:"workers"`
	// Seed is the root seed used for runs that do not supply one.
	Seed uint64 `yaml:"seed"`
	// MaxSteps is a diagnostic ceiling on random-walk steps per trial;
	// 0 leaves the walk unbounded, which is the faithful model behavior.
	MaxSteps int `yaml:"max_steps"`
}

// DefaultConfig returns the configuration used when no file is supplied
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "info",
		Simulation: &Simulation{},
	}
}
