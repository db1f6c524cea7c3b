package sim

// DefaultDisplayPaths is the number of full trajectories retained for
// inspection when no explicit count is configured.
const DefaultDisplayPaths = 50

// Config defines per-call simulation settings beyond the model parameters.
type Config struct {
	Engine        Engine // engine to run; EngineAuto selects by hardware and workload
	Threads       int    // worker count for parallel engines; 0 uses all hardware threads
	Seed          uint64 // base RNG seed; 0 draws a fresh seed from system entropy
	DisplayPaths  int    // full trajectories to retain
	StepThreshold int    // AUTO selector step-count threshold
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns sensible defaults: automatic engine selection, all
// hardware threads, entropy seeding, and DefaultDisplayPaths trajectories.
func DefaultConfig() Config {
	return Config{
		Engine:        EngineAuto,
		DisplayPaths:  DefaultDisplayPaths,
		StepThreshold: DefaultSIMDStepThreshold,
	}
}

// WithEngine forces a specific engine instead of automatic selection.
func WithEngine(e Engine) Option {
	return func(cfg *Config) {
		cfg.Engine = e
	}
}

// WithThreads sets the worker count for the parallel engines.
func WithThreads(threads int) Option {
	return func(cfg *Config) {
		if threads > 0 {
			cfg.Threads = threads
		}
	}
}

// WithSeed sets the base RNG seed for deterministic testing. Worker seeds
// are derived from the base seed plus the worker index, so forcing a seed
// pins the random streams for a given thread count.
func WithSeed(seed uint64) Option {
	return func(cfg *Config) {
		cfg.Seed = seed
	}
}

// WithDisplayPaths sets how many full trajectories to retain.
func WithDisplayPaths(count int) Option {
	return func(cfg *Config) {
		if count >= 0 {
			cfg.DisplayPaths = count
		}
	}
}

// WithStepThreshold overrides the AUTO selector's step-count threshold.
// The default is machine-tuned; see DefaultSIMDStepThreshold.
func WithStepThreshold(steps int) Option {
	return func(cfg *Config) {
		if steps > 0 {
			cfg.StepThreshold = steps
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
