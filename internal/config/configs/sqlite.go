package configs

// SQLite holds configuration for the embedded database backend. Path is a
// filename or ":memory:" for a throwaway in-memory database.
type SQLite struct {
	Path string `env:"PATH" envDefault:"affitrack.db"`
}
