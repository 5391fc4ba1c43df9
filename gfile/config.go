package gfile

import (
	"os"

	"github.com/BurntSushi/toml"
)

// ConflictPolicy names a conflict-handling choice for when the same
// (state, terminal) cell would receive two different actions. The value is
// read from the config file only: ptable.Build takes no policy and always
// reports a gerrors KindGrammarConflict error on such a cell.
type ConflictPolicy string

const (
	// ConflictFail names reporting a gerrors KindGrammarConflict error,
	// the default.
	ConflictFail ConflictPolicy = "fail"

	// ConflictPreferShift names resolving shift/reduce conflicts in favor
	// of the shift. ptable.Build does not apply it.
	ConflictPreferShift ConflictPolicy = "prefer-shift"
)

// Config is the shape of an ictiobus.toml sidecar file: generator options
// that apply to one grammar source.
type Config struct {
	Format string `toml:"format"`

	Generator struct {
		// Conflicts holds the configured ConflictPolicy. Empty means
		// ConflictFail; no other package reads this field.
		Conflicts ConflictPolicy `toml:"conflicts"`
	} `toml:"generator"`

	Trace struct {
		// Enabled turns on driver trace logging by default, without
		// needing -t/--trace on every invocation.
		Enabled bool `toml:"enabled"`
	} `toml:"trace"`

	Cache struct {
		// Path is where a compiled table is cached, relative to the
		// config file's directory if not absolute. Empty means no
		// caching unless -c/--cache is given on the command line.
		Path string `toml:"path"`
	} `toml:"cache"`
}

// DefaultConfig returns a Config with every option at its zero/default
// value (fail on conflict, tracing off, no cache path).
func DefaultConfig() Config {
	return Config{}
}

// LoadConfig reads and unmarshals a TOML config file at path.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfigIfExists is LoadConfig, except a missing file is not an error:
// it returns DefaultConfig() and ok=false instead.
func LoadConfigIfExists(path string) (cfg Config, ok bool, err error) {
	if _, statErr := os.Stat(path); statErr != nil {
		if os.IsNotExist(statErr) {
			return DefaultConfig(), false, nil
		}
		return DefaultConfig(), false, statErr
	}
	cfg, err = LoadConfig(path)
	return cfg, err == nil, err
}
