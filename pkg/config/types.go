package config

// Config is the typed view of recall's persistent configuration.
type Config struct {
	Memory MemoryConfig `toml:"memory" mapstructure:"memory"`
	Git    GitConfig    `toml:"git" mapstructure:"git"`
}

// MemoryConfig tunes the session-memory pipeline.
type MemoryConfig struct {
	// RetentionDays is how long daily logs stay in daily/ before the
	// archiver relocates them.
	RetentionDays int `toml:"retention_days" mapstructure:"retention_days"`

	// MaxDocBytes caps the rendered size of MEMORY.md.
	MaxDocBytes int `toml:"max_doc_bytes" mapstructure:"max_doc_bytes"`

	// SnippetLength bounds detail text recorded per activity entry.
	SnippetLength int `toml:"snippet_length" mapstructure:"snippet_length"`
}

// GitConfig tunes git invocations made by hooks.
type GitConfig struct {
	// TimeoutSeconds bounds each git command; timeouts are non-fatal.
	TimeoutSeconds int `toml:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// NewDefaultConfig returns the defaults applied when no config file or
// environment override is present.
func NewDefaultConfig() Config {
	return Config{
		Memory: MemoryConfig{
			RetentionDays: 14,
			MaxDocBytes:   51200,
			SnippetLength: 60,
		},
		Git: GitConfig{
			TimeoutSeconds: 30,
		},
	}
}
