package configs

// Tracking configures the attribution pipeline.
type Tracking struct {
	// BaseURL is the public origin of this service. It is embedded into
	// rendered tracking scripts and returned postback URLs.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	// StatsFromEvents switches campaign stat reads from the stored
	// counters to an on-demand recount of the event log.
	StatsFromEvents bool `env:"STATS_FROM_EVENTS" envDefault:"false"`

	// RunSeed inserts demo campaigns and events on startup. Only honoured
	// by main.
	RunSeed bool `env:"RUN_SEED" envDefault:"false"`
}
